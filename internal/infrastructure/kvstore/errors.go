package kvstore

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the key is absent
var ErrNotFound = errors.New("kvstore: key not found")

// CorruptValueError reports a stored value that is not valid JSON for the
// requested type
type CorruptValueError struct {
	Key string
	Err error
}

func (e *CorruptValueError) Error() string {
	return fmt.Sprintf("kvstore: corrupt value at %q: %v", e.Key, e.Err)
}

func (e *CorruptValueError) Unwrap() error {
	return e.Err
}

// IsCorrupt reports whether err is a CorruptValueError
func IsCorrupt(err error) bool {
	var c *CorruptValueError
	return errors.As(err, &c)
}
