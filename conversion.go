package chromepdf

import (
	"context"
	"sync"
)

// Outcome is the single result of a conversion. Exactly one of Value and Err
// is meaningful: Value holds the success message in file mode and the Base64
// text in Base64 mode.
type Outcome struct {
	Value string
	Err   error
}

// Conversion is a handle to a running external process. Its outcome is
// delivered exactly once on Done, after which the channel is closed.
type Conversion struct {
	done    chan Outcome
	once    sync.Once
	outcome Outcome
}

func newConversion() *Conversion {
	return &Conversion{done: make(chan Outcome, 1)}
}

// finished returns a Conversion that has already completed.
func finished(o Outcome) *Conversion {
	c := newConversion()
	c.deliver(o)
	return c
}

func (c *Conversion) deliver(o Outcome) {
	c.once.Do(func() {
		c.outcome = o
		c.done <- o
		close(c.done)
	})
}

// Done returns a channel that receives the outcome once the process exits or
// fails to start.
func (c *Conversion) Done() <-chan Outcome {
	return c.done
}

// Wait blocks until the conversion finishes or ctx is done. Cancelling ctx
// abandons the wait only; the process is governed by the context passed when
// the conversion was started.
func (c *Conversion) Wait(ctx context.Context) Outcome {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case o, ok := <-c.done:
		if !ok {
			return c.outcome
		}
		return o
	case <-ctx.Done():
		return Outcome{Err: ctx.Err()}
	}
}

// OnDone calls fn with the outcome from a separate goroutine once the
// conversion finishes. fn is called exactly once.
func (c *Conversion) OnDone(fn func(value string, err error)) {
	go func() {
		o := c.Wait(context.Background())
		fn(o.Value, o.Err)
	}()
}
