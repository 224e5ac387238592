package client

type resultKind int

const (
	kindEmpty resultKind = iota
	kindOk
	kindFailed
)

// Result is the outcome of a data operation. The zero value is Empty.
type Result[T any] struct {
	kind resultKind
	data T
	err  *RequestError
}

func Ok[T any](data T) Result[T] {
	return Result[T]{kind: kindOk, data: data}
}

func Empty[T any]() Result[T] {
	return Result[T]{kind: kindEmpty}
}

func Failed[T any](err *RequestError) Result[T] {
	return Result[T]{kind: kindFailed, err: err}
}

func (r Result[T]) OK() bool { return r.kind == kindOk }
func (r Result[T]) IsEmpty() bool { return r.kind == kindEmpty }
func (r Result[T]) IsFailed() bool { return r.kind == kindFailed }

// Get returns the data and whether the result is Ok.
func (r Result[T]) Get() (T, bool) {
	return r.data, r.kind == kindOk
}

// Value collapses Empty and Failed into the zero value of T.
func (r Result[T]) Value() T {
	return r.data
}

// Err returns the failure reason, or nil for Ok and Empty.
func (r Result[T]) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// Reason is Err with its concrete type.
func (r Result[T]) Reason() *RequestError {
	return r.err
}
