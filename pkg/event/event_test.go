package event

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFireReachesAllListeners(t *testing.T) {
	t.Cleanup(Flush)
	Flush()

	var got []interface{}
	Listen("order.placed", func(payload interface{}) { got = append(got, payload) })
	Listen("order.placed", func(payload interface{}) { got = append(got, payload) })

	Fire("order.placed", "o1")
	assert.Equal(t, []interface{}{"o1", "o1"}, got)
}

func TestFireUnknownEventIsNoOp(t *testing.T) {
	t.Cleanup(Flush)
	Flush()

	assert.NotPanics(t, func() { Fire("nobody.listens", 42) })
}

func TestFireAsyncDelivers(t *testing.T) {
	t.Cleanup(Flush)
	Flush()

	var wg sync.WaitGroup
	wg.Add(1)

	var mu sync.Mutex
	var got interface{}
	Listen("order.status", func(payload interface{}) {
		mu.Lock()
		got = payload
		mu.Unlock()
		wg.Done()
	})

	FireAsync("order.status", "o2")

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("async handler never ran")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "o2", got)
}

func TestFlushRemovesListeners(t *testing.T) {
	Flush()

	calls := 0
	Listen("order.placed", func(interface{}) { calls++ })
	Flush()

	Fire("order.placed", nil)
	assert.Zero(t, calls)
}
