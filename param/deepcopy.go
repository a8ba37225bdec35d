package param

import "reflect"

// deepCopy copies v recursively, preserving concrete types so a cloned
// []int re-extracts as []int.
func deepCopy[T any](v T) T {
	rv := reflect.ValueOf(&v).Elem()
	// Comma-ok: when T is an interface type holding nil, Interface()
	// yields an untyped nil that a plain assertion would reject.
	out, _ := copyValue(rv).Interface().(T)
	return out
}

// copyValue deep-copies slices, arrays, maps, pointers, interface wrappers,
// and structs whose fields are all exported. Primitives are copied by
// value; channels and functions are inherently reference types and are
// shared.
func copyValue(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(copyValue(v.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(copyValue(v.Index(i)))
		}
		return out
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(copyValue(iter.Key()), copyValue(iter.Value()))
		}
		return out
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(copyValue(v.Elem()))
		return out
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(copyValue(v.Elem()))
		return out
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				// Unexported fields cannot be set through reflection, so
				// the whole struct copies by value and any reference-type
				// fields stay shared.
				return v
			}
		}
		out := reflect.New(t).Elem()
		for i := 0; i < t.NumField(); i++ {
			out.Field(i).Set(copyValue(v.Field(i)))
		}
		return out
	default:
		return v
	}
}
