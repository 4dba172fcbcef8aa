package models

// Result is the uniform shape every mutation accessor returns. Failures,
// including authorization failures, are reported through this shape rather
// than raised past the accessor boundary.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data"`
	Message string `json:"message,omitempty"`
}

// OK builds a successful result.
func OK[T any](data *T, message string) Result[T] {
	return Result[T]{Success: true, Data: data, Message: message}
}

// Fail builds a failed result with no data.
func Fail[T any](message string) Result[T] {
	return Result[T]{Success: false, Message: message}
}
