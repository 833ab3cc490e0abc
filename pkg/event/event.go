// Package event provides a small in-process event dispatcher. The order
// flow fires events ("order.placed", "order.status") that the websocket
// feed subscribes to at boot.
package event

import (
	"sync"

	"github.com/shashiranjanraj/foodcourt/pkg/workerpool"
)

// Handler is a function that receives an event payload.
type Handler func(payload interface{})

var (
	mu       sync.RWMutex
	handlers = map[string][]Handler{}

	// asyncPool bounds the goroutines used by FireAsync so a burst of
	// events cannot spawn unbounded handlers.
	asyncPool = workerpool.New(8)
)

// Listen registers a handler for the given event name.
func Listen(event string, handler Handler) {
	mu.Lock()
	defer mu.Unlock()
	handlers[event] = append(handlers[event], handler)
}

// Fire dispatches an event synchronously to all registered listeners.
func Fire(event string, payload interface{}) {
	for _, h := range snapshot(event) {
		h(payload)
	}
}

// FireAsync dispatches the event to all listeners on the bounded pool and
// returns immediately. If the pool is saturated the handler is dropped;
// event delivery is best-effort.
func FireAsync(event string, payload interface{}) {
	for _, h := range snapshot(event) {
		h := h
		_ = asyncPool.Submit(func() { h(payload) })
	}
}

// Flush removes all listeners (useful in tests).
func Flush() {
	mu.Lock()
	defer mu.Unlock()
	handlers = map[string][]Handler{}
}

func snapshot(event string) []Handler {
	mu.RLock()
	defer mu.RUnlock()
	hs := make([]Handler, len(handlers[event]))
	copy(hs, handlers[event])
	return hs
}
