package types

import (
	"errors"
	"strings"
)

// Address is an opaque, unique peer identifier. It is cheap to copy and
// carries the total order and equality of its underlying string; nothing
// in this package interprets its contents.
type Address string

// ErrEmptyAddress is returned by Validate for the zero Address.
var ErrEmptyAddress = errors.New("empty address")

func (a Address) Validate() error {
	if len(a) == 0 {
		return ErrEmptyAddress
	}
	return nil
}

// Less reports whether a orders before other.
func (a Address) Less(other Address) bool {
	return strings.Compare(string(a), string(other)) < 0
}

func (a Address) String() string {
	return string(a)
}
