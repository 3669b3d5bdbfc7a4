package result

type State string

const (
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Envelope is a point-in-time snapshot of one operation's progress.
type Envelope[T any] struct {
	state   State
	data    T
	hasData bool
	message string
	cause   error
}

func Loading[T any]() Envelope[T] {
	return Envelope[T]{state: StateLoading}
}

func Success[T any](data T) Envelope[T] {
	return Envelope[T]{state: StateSuccess, data: data, hasData: true}
}

func Failure[T any](message string) Envelope[T] {
	return Envelope[T]{state: StateError, message: message}
}

// FailureWithData carries a stale or partial payload alongside the error message.
func FailureWithData[T any](message string, data T) Envelope[T] {
	return Envelope[T]{state: StateError, message: message, data: data, hasData: true}
}

func failureFromError[T any](message string, cause error) Envelope[T] {
	return Envelope[T]{state: StateError, message: message, cause: cause}
}

func (e Envelope[T]) State() State {
	return e.state
}

func (e Envelope[T]) Data() (T, bool) {
	return e.data, e.hasData
}

func (e Envelope[T]) Message() string {
	return e.message
}

// Cause is the producer error behind an Error envelope built by Stream. It is nil for
// envelopes built with Failure.
func (e Envelope[T]) Cause() error {
	return e.cause
}

func (e Envelope[T]) IsLoading() bool {
	return e.state == StateLoading
}

func (e Envelope[T]) IsSuccess() bool {
	return e.state == StateSuccess
}

func (e Envelope[T]) IsError() bool {
	return e.state == StateError
}

// IsTerminal reports whether the envelope can end a stream. Intermediate successes are
// indistinguishable from the final one by value; only stream closure marks the end.
func (e Envelope[T]) IsTerminal() bool {
	return e.state == StateSuccess || e.state == StateError
}
