package models

import "encoding/json"

// Result holds either a value or the error that prevented producing it.
// The zero Result is a success carrying the zero value.
type Result[T any] struct {
	value T
	err   error
}

func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

func (r Result[T]) OK() bool { return r.err == nil }

func (r Result[T]) Err() error { return r.err }

// ValueOr returns the value, or def when r is an error.
func (r Result[T]) ValueOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// MarshalJSON renders the value on success and {"error": msg} on failure.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.err != nil {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{r.err.Error()})
	}
	return json.Marshal(r.value)
}
