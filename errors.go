package anyvec

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// TypeMismatchError is returned by typed accessors when the slot holds a
// value of a different type than the one requested.
type TypeMismatchError struct {
	// Expected is the type the caller asked for.
	Expected *TypeInfo

	// Actual is the type recorded for the slot at insertion time.
	Actual *TypeInfo
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("invalid type %s, expected %s", e.Expected, e.Actual)
}

func newTypeMismatchError(expected, actual *TypeInfo) error {
	return errors.WithStack(&TypeMismatchError{
		Expected: expected,
		Actual:   actual,
	})
}

// AsTypeMismatch unwraps err into a TypeMismatchError if there is one in
// its chain.
func AsTypeMismatch(err error) (*TypeMismatchError, bool) {
	var mismatch *TypeMismatchError
	ok := errors.As(err, &mismatch)
	return mismatch, ok
}
