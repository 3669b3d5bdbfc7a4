package result

import (
	"context"
	"errors"
	"fmt"
)

// ErrPanic wraps a value recovered from a panicking producer.
var ErrPanic = errors.New("producer panicked")

const fallbackMessage = "something went wrong"

// Producer builds the final payload. It may publish intermediate snapshots through the emitter.
type Producer[T any] func(ctx context.Context, emitter *Emitter[T]) (T, error)

// Formatter turns a producer error into the message carried by the terminal Error envelope.
type Formatter func(err error) string

type options struct {
	formatter Formatter
	buffer    int
}

type Option func(*options)

func WithFormatter(formatter Formatter) Option {
	return func(o *options) {
		if formatter != nil {
			o.formatter = formatter
		}
	}
}

// WithBuffer sets the channel capacity. The default is unbuffered, so every send
// completes only once the consumer has received the envelope.
func WithBuffer(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.buffer = size
		}
	}
}

type Emitter[T any] struct {
	ctx context.Context
	out chan<- Envelope[T]
}

// Emit publishes an intermediate Success. It returns false once the stream is cancelled.
func (e *Emitter[T]) Emit(data T) bool {
	return e.send(Success(data))
}

func (e *Emitter[T]) send(envelope Envelope[T]) bool {
	if e.ctx.Err() != nil {
		return false
	}
	select {
	case e.out <- envelope:
		return true
	case <-e.ctx.Done():
		return false
	}
}

// Stream runs produce on its own goroutine and reports its progress as
// Loading, zero or more intermediate Success, then exactly one terminal envelope.
// The channel is closed after the terminal envelope, or as soon as ctx is cancelled.
func Stream[T any](ctx context.Context, produce Producer[T], opts ...Option) <-chan Envelope[T] {
	cfg := options{formatter: defaultFormatter}
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make(chan Envelope[T], cfg.buffer)
	ctx, cancel := context.WithCancel(ctx)

	go func() {
		defer close(out)
		defer cancel()

		emitter := &Emitter[T]{ctx: ctx, out: out}
		if !emitter.send(Loading[T]()) {
			return
		}

		data, err := runProducer(ctx, produce, emitter)
		if err != nil {
			emitter.send(failureFromError[T](cfg.formatter(err), err))
			return
		}
		emitter.send(Success(data))
	}()

	return out
}

func runProducer[T any](ctx context.Context, produce Producer[T], emitter *Emitter[T]) (data T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero T
			data = zero
			err = fmt.Errorf("%w: %v", ErrPanic, rec)
		}
	}()
	return produce(ctx, emitter)
}

func defaultFormatter(err error) string {
	if err == nil || errors.Is(err, ErrPanic) || err.Error() == "" {
		return fallbackMessage
	}
	return err.Error()
}

// Terminal drains the stream and returns its last envelope. ok is false when the stream
// closed without a Success or Error, which only happens after cancellation.
func Terminal[T any](ch <-chan Envelope[T]) (Envelope[T], bool) {
	var last Envelope[T]
	seen := false
	for envelope := range ch {
		last = envelope
		seen = true
	}
	return last, seen && last.IsTerminal()
}

// Collect drains the stream and returns every envelope in emission order.
func Collect[T any](ch <-chan Envelope[T]) []Envelope[T] {
	out := make([]Envelope[T], 0, 3)
	for envelope := range ch {
		out = append(out, envelope)
	}
	return out
}
