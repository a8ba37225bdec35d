package param

import (
	"fmt"
	"reflect"
)

// EmptyValueError reports an extraction attempted on an empty container.
type EmptyValueError struct{}

func (e *EmptyValueError) Error() string {
	return "parameter holds no value"
}

// TypeMismatchError reports an extraction that requested a type different
// from the one the container holds.
type TypeMismatchError struct {
	Requested reflect.Type
	Held      reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("parameter holds %v, not %v", e.Held, e.Requested)
}

// TypeLockViolation reports an assignment to a type-locked container with a
// type different from the one currently held.
type TypeLockViolation struct {
	Assigned reflect.Type
	Held     reflect.Type
}

func (e *TypeLockViolation) Error() string {
	return fmt.Sprintf("parameter is locked to %v, cannot assign %v", e.Held, e.Assigned)
}
