// Package customdata loads user supplied HTMLDataV1 files into registries.
//
// Each successful Load returns a new, independent registry. Nothing is cached
// between calls, so reloading a changed file is simply another Load.
package customdata

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/conneroisu/tagdata/internal/errors"
	"github.com/conneroisu/tagdata/internal/htmldata"
	"github.com/conneroisu/tagdata/internal/registry"
)

// Load reads the file at path, infers its format from the extension and
// builds a registry from it.
func Load(path string) (*registry.Registry, error) {
	format, err := htmldata.FormatFromPath(path)
	if err != nil {
		return nil, errors.NewValidationError(errors.ErrCodeUnsupportedFormat, err.Error()).
			WithFile(path)
	}

	return LoadFormat(path, format)
}

// LoadFormat is like Load with an explicit format.
func LoadFormat(path string, format htmldata.Format) (*registry.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		code := errors.ErrCodeReadFailed
		if stderrors.Is(err, fs.ErrNotExist) {
			code = errors.ErrCodeFileNotFound
		}
		return nil, errors.NewIOError(code, "cannot open custom data file", err).WithFile(path)
	}
	defer f.Close()

	doc, err := htmldata.Decode(f, format)
	if err != nil {
		return nil, errors.NewValidationError(errors.ErrCodeDecodeFailed, "cannot decode custom data file").
			WithFile(path).
			WithContext("format", string(format)).
			WithCause(err)
	}

	r, err := registry.FromDocument(doc)
	if err != nil {
		var defects *errors.Collection
		if stderrors.As(err, &defects) {
			return nil, defects.WithFile(path)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return r, nil
}

// LoadAll loads every path and merges the results, in order, with base.
// Name collisions between files, or with base, are errors.
func LoadAll(base *registry.Registry, paths ...string) (*registry.Registry, error) {
	regs := make([]*registry.Registry, 0, len(paths)+1)
	if base != nil {
		regs = append(regs, base)
	}

	for _, path := range paths {
		r, err := Load(path)
		if err != nil {
			return nil, err
		}
		regs = append(regs, r)
	}

	return registry.Merge(regs...)
}
