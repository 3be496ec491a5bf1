package async

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/abevier/tsk/futures"
	"github.com/google/uuid"
	"github.com/ib-77/twotrack/pkg/rop"
)

// ErrCanceled is reported by Get when the caller's context ends first.
var ErrCanceled = errors.New("promise wait canceled")

// Promise is a single-assignment handle to an asynchronous computation.
// The first call to Complete or Fail wins; later calls are ignored. Get may be
// called from many goroutines and they all observe the same outcome.
type Promise[T any] struct {
	id        uuid.UUID
	createdAt time.Time

	future    *futures.Future[T]
	done      chan struct{}
	closeDone sync.Once
}

func New[T any]() *Promise[T] {
	return &Promise[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		future:    futures.New[T](),
		done:      make(chan struct{}),
	}
}

// Resolved returns an already completed promise.
func Resolved[T any](value T) *Promise[T] {
	p := New[T]()
	p.Complete(value)
	return p
}

// Rejected returns a promise already failed with err.
func Rejected[T any](err error) *Promise[T] {
	p := New[T]()
	p.Fail(err)
	return p
}

// FromFunc runs do on its own goroutine and completes the promise with its outcome.
func FromFunc[T any](do func() (T, error)) *Promise[T] {
	rop.MustNotNil(do == nil, "do")
	p := New[T]()

	go func() {
		v, err := do()
		if err != nil {
			p.Fail(err)
			return
		}
		p.Complete(v)
	}()

	return p
}

func (p *Promise[T]) Complete(value T) {
	p.future.Complete(value)
	p.resolve()
}

// Fail completes the promise with a runtime fault of the executor.
func (p *Promise[T]) Fail(err error) {
	p.future.Fail(err)
	p.resolve()
}

func (p *Promise[T]) resolve() {
	p.closeDone.Do(func() {
		close(p.done)
	})
}

// outcome must only be called once done is closed.
func (p *Promise[T]) outcome() (T, error) {
	return p.future.Get(context.Background())
}

// Get blocks until the promise resolves or ctx ends. Ending ctx does not stop
// the computation behind the promise.
func (p *Promise[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.outcome()
	case <-ctx.Done():
		return *new(T), errors.Join(ErrCanceled, ctx.Err())
	}
}

func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

func (p *Promise[T]) ID() uuid.UUID {
	return p.id
}

func (p *Promise[T]) CreatedAt() time.Time {
	return p.createdAt
}

// Then resumes with fn exactly once, after p resolves. A failed p fails the
// returned promise with the same error and fn is not called.
func Then[T, R any](p *Promise[T], fn func(T) R) *Promise[R] {
	rop.MustNotNil(p == nil, "p")
	rop.MustNotNil(fn == nil, "fn")
	next := New[R]()

	go func() {
		<-p.done
		v, err := p.outcome()
		if err != nil {
			next.Fail(err)
			return
		}
		next.Complete(fn(v))
	}()

	return next
}
