// Package param provides the type-erased value container used for node
// attributes. A Parameter holds at most one value of an arbitrary type (or
// nothing), supports deep cloning, type-checked extraction, and an optional
// type lock that pins the container to the type it currently holds.
package param

import "reflect"

// holder is the erasure boundary. Each concrete value lives in a box keyed
// by its compile-time type.
type holder interface {
	clone() holder
	typeOf() reflect.Type
}

// box holds a single value of type T together with its reflect tag.
type box[T any] struct {
	value T
	typ   reflect.Type
}

func newBox[T any](v T) *box[T] {
	return &box[T]{value: deepCopy(v), typ: reflect.TypeFor[T]()}
}

func (b *box[T]) clone() holder {
	return &box[T]{value: deepCopy(b.value), typ: b.typ}
}

func (b *box[T]) typeOf() reflect.Type { return b.typ }

// Parameter is a container for one value of an erased type. The zero value
// is an empty, unlocked container ready for use.
type Parameter struct {
	h        holder
	typeLock bool
}

// New constructs a Parameter holding an independent deep copy of v: later
// mutations of a passed-in slice or map do not reach the container.
func New[T any](v T) *Parameter {
	return &Parameter{h: newBox(v)}
}

// Assign replaces the held value with an independent deep copy of v. When
// the type lock is enabled and a value is already held, assigning a
// different type fails with *TypeLockViolation and leaves the container
// untouched. Unlocked containers accept any type, including a type change.
func Assign[T any](p *Parameter, v T) error {
	if p.typeLock && p.h != nil {
		if t := reflect.TypeFor[T](); t != p.h.typeOf() {
			return &TypeLockViolation{Assigned: t, Held: p.h.typeOf()}
		}
	}
	p.h = newBox(v)
	return nil
}

// As returns a mutable reference to the held value. It fails with
// *EmptyValueError when the container is empty and with *TypeMismatchError
// when the held type is not exactly T. Mutations through the returned
// pointer are visible to subsequent extractions.
func As[T any](p *Parameter) (*T, error) {
	if p.h == nil {
		return nil, &EmptyValueError{}
	}
	b, ok := p.h.(*box[T])
	if !ok {
		return nil, &TypeMismatchError{Requested: reflect.TypeFor[T](), Held: p.h.typeOf()}
	}
	return &b.value, nil
}

// Clone returns an independent deep copy of the container, including its
// lock flag. Cloning an empty container yields an empty container. Struct
// payloads with unexported fields are copied by value, so reference-type
// fields inside them stay shared with the original.
func (p *Parameter) Clone() *Parameter {
	out := &Parameter{typeLock: p.typeLock}
	if p.h != nil {
		out.h = p.h.clone()
	}
	return out
}

// CopyFrom replaces the container's contents with a deep clone of src's
// contents, unconditionally: an empty source empties the target. The
// target's lock flag is left as-is and is not consulted.
func (p *Parameter) CopyFrom(src *Parameter) {
	if src == nil || src.h == nil {
		p.h = nil
		return
	}
	p.h = src.h.clone()
}

// SetTypeLock toggles lock enforcement for future assignments. Enabling the
// lock does not validate the currently held value.
func (p *Parameter) SetTypeLock(enabled bool) {
	p.typeLock = enabled
}

// IsEmpty reports whether the container holds no value.
func (p *Parameter) IsEmpty() bool { return p.h == nil }

// Type returns the reflect type of the held value, or nil when empty.
func (p *Parameter) Type() reflect.Type {
	if p.h == nil {
		return nil
	}
	return p.h.typeOf()
}
