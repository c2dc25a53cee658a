package errors

import (
	"fmt"
	"strings"
)

// Collection gathers every defect found while constructing a registry so a
// data file can be fixed in one pass.
type Collection struct {
	Errors []*TagDataError
}

// Error implements the error interface.
func (c *Collection) Error() string {
	switch len(c.Errors) {
	case 0:
		return "no validation errors"
	case 1:
		return c.Errors[0].Error()
	}

	messages := make([]string, 0, len(c.Errors))
	for _, err := range c.Errors {
		messages = append(messages, err.Error())
	}

	return fmt.Sprintf("validation failed with %d errors: %s",
		len(c.Errors), strings.Join(messages, "; "))
}

// Add appends err to the collection.
func (c *Collection) Add(err *TagDataError) {
	if err == nil {
		return
	}
	c.Errors = append(c.Errors, err)
}

// HasErrors returns true if there are any errors.
func (c *Collection) HasErrors() bool {
	return len(c.Errors) > 0
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (c *Collection) Unwrap() []error {
	out := make([]error, len(c.Errors))
	for i, err := range c.Errors {
		out[i] = err
	}

	return out
}

// Err returns nil when the collection is empty, so callers can return it
// directly.
func (c *Collection) Err() error {
	if !c.HasErrors() {
		return nil
	}

	return c
}

// WithFile stamps path on every collected error.
func (c *Collection) WithFile(path string) *Collection {
	for _, err := range c.Errors {
		err.WithFile(path)
	}

	return c
}
