package registry

import (
	"fmt"
	"math"

	"github.com/conneroisu/tagdata/internal/errors"
)

// Merge builds a new registry holding the entries of regs in order. No name
// may appear in more than one input. The inputs are left untouched.
//
// The result carries the first non-zero version. An input without a version
// adopts it, and versions that share its major number (1 and 1.1) are
// compatible. Anything else is ErrCodeVersionMismatch.
func Merge(regs ...*Registry) (*Registry, error) {
	var version float64
	for _, r := range regs {
		if r.version != 0 {
			version = r.version
			break
		}
	}

	var tags []Entry
	for i, r := range regs {
		if r.version != 0 && math.Floor(r.version) != math.Floor(version) {
			return nil, errors.NewValidationError(
				errors.ErrCodeVersionMismatch,
				fmt.Sprintf("cannot merge version %v into version %v", r.version, version),
			).WithContext("index", i)
		}
		tags = append(tags, r.entries...)
	}

	return New(version, tags)
}
