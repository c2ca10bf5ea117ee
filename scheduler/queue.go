// Package scheduler queues accepted runs and drains them through the dense
// sampler one at a time.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	conq "github.com/enriquebris/goconcurrentqueue"
	"github.com/qrane-team/qrane-engine/circuit"
	"github.com/qrane-team/qrane-engine/core"
)

// runEntry couples a run record with its circuit while it waits in the
// queue. finished is released when the run reaches a terminal status.
type runEntry struct {
	run      *core.RunData
	circ     *circuit.Circuit
	finished *sync.WaitGroup
}

type fifo interface {
	Enqueue(*runEntry) error
	Dequeue() (*runEntry, error)
	DequeueOrWaitForNextElementContext(ctx context.Context) (*runEntry, error)
	GetLen() int
}

type conqFIFO struct {
	conq.FIFO
}

func newConqFIFO() *conqFIFO {
	return &conqFIFO{
		FIFO: *conq.NewFIFO(),
	}
}

func (c *conqFIFO) Enqueue(e *runEntry) error {
	return c.FIFO.Enqueue(e)
}

func (c *conqFIFO) Dequeue() (*runEntry, error) {
	tmp, err := c.FIFO.Dequeue()
	if err != nil {
		return nil, err
	}
	return tmp.(*runEntry), nil
}

func (c *conqFIFO) DequeueOrWaitForNextElementContext(ctx context.Context) (*runEntry, error) {
	tmp, err := c.FIFO.DequeueOrWaitForNextElementContext(ctx)
	if err != nil {
		return nil, err
	}
	return tmp.(*runEntry), nil
}

func (c *conqFIFO) GetLen() int {
	return c.FIFO.GetLen()
}

// RunQueue is a bounded FIFO of accepted runs.
type RunQueue struct {
	fifo    fifo
	maxSize int
}

func (q *RunQueue) Setup(conf *core.Conf) error {
	if conf.QueueMaxSize <= 0 {
		return fmt.Errorf("queue max size(%d) must be greater than 0", conf.QueueMaxSize)
	}
	q.maxSize = conf.QueueMaxSize
	q.fifo = newConqFIFO()
	return nil
}

func (q *RunQueue) Put(e *runEntry) error {
	if q.fifo.GetLen() >= q.maxSize {
		return fmt.Errorf("run queue is full(max size:%d)", q.maxSize)
	}
	return q.fifo.Enqueue(e)
}

// Next blocks until an entry is available or the context is cancelled.
func (q *RunQueue) Next(ctx context.Context) (*runEntry, error) {
	return q.fifo.DequeueOrWaitForNextElementContext(ctx)
}

// TryNext returns the next entry without blocking. ok is false when the
// queue is empty.
func (q *RunQueue) TryNext() (e *runEntry, ok bool) {
	e, err := q.fifo.Dequeue()
	if err != nil {
		return nil, false
	}
	return e, true
}

func (q *RunQueue) Len() int {
	return q.fifo.GetLen()
}
