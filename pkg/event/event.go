// Package event provides a simple synchronous event dispatcher. The shop
// uses it to decouple state changes (cart updated, order placed, user
// registered) from the metrics and log listeners that react to them.
package event

import "sync"

// Handler is a function that receives an event payload.
type Handler func(payload interface{})

var (
	mu       sync.RWMutex
	handlers = map[string][]Handler{}
)

// Listen registers a handler for the given event name.
func Listen(name string, handler Handler) {
	mu.Lock()
	defer mu.Unlock()
	handlers[name] = append(handlers[name], handler)
}

// Fire dispatches an event synchronously to all registered listeners, in
// registration order. Everything in this app is synchronous: the event has
// been fully handled by the time Fire returns.
func Fire(name string, payload interface{}) {
	mu.RLock()
	hs := make([]Handler, len(handlers[name]))
	copy(hs, handlers[name])
	mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
}

// Flush removes all listeners (useful in tests).
func Flush() {
	mu.Lock()
	defer mu.Unlock()
	handlers = map[string][]Handler{}
}
