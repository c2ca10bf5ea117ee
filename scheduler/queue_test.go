//go:build unit
// +build unit

package scheduler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/qrane-team/qrane-engine/core"
	"github.com/stretchr/testify/assert"
)

func TestRunQueueSetup(t *testing.T) {
	q := &RunQueue{}
	err := q.Setup(&core.Conf{QueueMaxSize: 10})
	assert.Nil(t, err)
	assert.Equal(t, 0, q.Len())
}

func TestRunQueueSetupRejectsZeroSize(t *testing.T) {
	q := &RunQueue{}
	err := q.Setup(&core.Conf{})
	assert.Error(t, err)
}

func TestRunQueueFIFOOrder(t *testing.T) {
	q := &RunQueue{}
	assert.Nil(t, q.Setup(&core.Conf{QueueMaxSize: 10}))

	for i := 0; i < 3; i++ {
		rd := core.NewRunData()
		rd.ID = fmt.Sprintf("run-%d", i)
		assert.Nil(t, q.Put(&runEntry{run: rd}))
	}
	assert.Equal(t, 3, q.Len())

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		e, err := q.Next(ctx)
		assert.Nil(t, err)
		assert.Equal(t, fmt.Sprintf("run-%d", i), e.run.ID)
	}
	assert.Equal(t, 0, q.Len())
}

func TestRunQueuePutWhenFull(t *testing.T) {
	q := &RunQueue{}
	assert.Nil(t, q.Setup(&core.Conf{QueueMaxSize: 1}))

	assert.Nil(t, q.Put(&runEntry{run: core.NewRunData()}))
	err := q.Put(&runEntry{run: core.NewRunData()})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "run queue is full")
}

func TestRunQueueTryNext(t *testing.T) {
	q := &RunQueue{}
	assert.Nil(t, q.Setup(&core.Conf{QueueMaxSize: 10}))

	_, ok := q.TryNext()
	assert.False(t, ok)

	rd := core.NewRunData()
	rd.ID = "run-0"
	assert.Nil(t, q.Put(&runEntry{run: rd}))

	e, ok := q.TryNext()
	assert.True(t, ok)
	assert.Equal(t, "run-0", e.run.ID)
	_, ok = q.TryNext()
	assert.False(t, ok)
}

func TestRunQueueNextHonorsContext(t *testing.T) {
	q := &RunQueue{}
	assert.Nil(t, q.Setup(&core.Conf{QueueMaxSize: 1}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := q.Next(ctx)
	assert.Error(t, err)
}
