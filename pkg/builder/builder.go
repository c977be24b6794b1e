// Package builder assembles a value from a chain of setters,
// short-circuiting on the first error.
package builder

func New[T any]() *Builder[T] {
	return &Builder[T]{
		Obj: new(T),
	}
}

type Builder[T any] struct {
	Obj *T
	Err error
}

func (b *Builder[T]) Use(setter func(b *T)) *Builder[T] {
	if b.Err == nil {
		setter(b.Obj)
	}
	return b
}

func (b *Builder[T]) MaybeUse(setter func(b *T) error) *Builder[T] {
	if b.Err == nil {
		b.Err = setter(b.Obj)
	}
	return b
}

func (b *Builder[T]) Get() (*T, error) {
	return b.Obj, b.Err
}
