package store

import "fmt"

// Field is a typed handle to namespace.field.
type Field[T any] struct {
	namespace string
	name      string
}

func NewField[T any](namespace, name string) Field[T] {
	return Field[T]{namespace: namespace, name: name}
}

func (f Field[T]) Namespace() string {
	return f.namespace
}

func (f Field[T]) Name() string {
	return f.name
}

func (f Field[T]) String() string {
	return f.namespace + "." + f.name
}

// Get reads a typed field from a snapshot.
func Get[T any](s Snapshot, f Field[T]) (T, error) {
	var zero T
	raw, err := s.Field(f.namespace, f.name)
	if err != nil {
		return zero, err
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T, want %T", ErrTypeMismatch, f, raw, zero)
	}
	return v, nil
}

// Init replaces the field's namespace with one holding only this field.
func Init[T any](s *Store, f Field[T], value T) {
	s.SetInitialState(f.namespace, Namespace{f.name: value})
}

// Advance is the typed form of Store.Advance.
func Advance[T any](s *Store, f Field[T], fn func(Snapshot) (T, error)) (T, error) {
	var zero T
	if fn == nil {
		return zero, ErrNilUpdate
	}
	v, err := s.Advance(f.namespace, f.name, func(snap Snapshot) (any, error) {
		return fn(snap)
	})
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// Step returns an update function that applies fn to the field's current
// value.
func Step[T any](f Field[T], fn func(T) T) func(Snapshot) (T, error) {
	return func(snap Snapshot) (T, error) {
		cur, err := Get(snap, f)
		if err != nil {
			return cur, err
		}
		return fn(cur), nil
	}
}
