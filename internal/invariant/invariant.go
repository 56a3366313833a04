// Package invariant turns must-not-happen conditions into unrecoverable
// panics carrying a typed error.
package invariant

import "fmt"

// ViolationError wraps the cause of a broken internal invariant.
type ViolationError struct {
	Err     error
	Context string
}

func (v ViolationError) Error() string {
	return fmt.Sprintf("invariant violated: %s: %s", v.Context, v.Err.Error())
}

var _ error = ViolationError{}

// Check panics with a ViolationError if err is not nil.
func Check(err error, context string) {
	if err != nil {
		panic(ViolationError{Err: err, Context: context})
	}
}

// Assert panics with a ViolationError if the condition does not hold.
func Assert(condition bool, message string) {
	if !condition {
		panic(ViolationError{Err: fmt.Errorf("%s", message), Context: "assertion failed"})
	}
}

// Recover runs action and converts a ViolationError panic back into an
// ordinary error. Other panics propagate.
func Recover(action func() error) error {
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				if v, ok := r.(ViolationError); ok {
					err = v
				} else {
					panic(r)
				}
			}
		}()
		err = action()
	}()
	return err
}
