package event

import (
	"sync"

	"github.com/fieldstock/backend/internal/domain/shared"
)

// HandlerRegistry maps event types to their handlers
type HandlerRegistry struct {
	mu       sync.RWMutex
	handlers map[string][]shared.EventHandler
	wildcard []shared.EventHandler
}

// NewHandlerRegistry creates an empty registry
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		handlers: make(map[string][]shared.EventHandler),
	}
}

// Register adds handler for eventTypes.
// With no event types the handler receives every event.
func (r *HandlerRegistry) Register(handler shared.EventHandler, eventTypes ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(eventTypes) == 0 {
		r.wildcard = append(r.wildcard, handler)
		return
	}
	for _, eventType := range eventTypes {
		r.handlers[eventType] = append(r.handlers[eventType], handler)
	}
}

// Unregister removes handler from every event type
func (r *HandlerRegistry) Unregister(handler shared.EventHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.wildcard = without(r.wildcard, handler)
	for eventType, handlers := range r.handlers {
		remaining := without(handlers, handler)
		if len(remaining) == 0 {
			delete(r.handlers, eventType)
			continue
		}
		r.handlers[eventType] = remaining
	}
}

// HandlersFor returns the type-specific handlers followed by the wildcard handlers
func (r *HandlerRegistry) HandlersFor(eventType string) []shared.EventHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	typed := r.handlers[eventType]
	result := make([]shared.EventHandler, 0, len(typed)+len(r.wildcard))
	result = append(result, typed...)
	return append(result, r.wildcard...)
}

// Len returns the number of distinct registered handlers
func (r *HandlerRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[shared.EventHandler]struct{})
	for _, h := range r.wildcard {
		seen[h] = struct{}{}
	}
	for _, handlers := range r.handlers {
		for _, h := range handlers {
			seen[h] = struct{}{}
		}
	}
	return len(seen)
}

func without(handlers []shared.EventHandler, target shared.EventHandler) []shared.EventHandler {
	result := make([]shared.EventHandler, 0, len(handlers))
	for _, h := range handlers {
		if h != target {
			result = append(result, h)
		}
	}
	return result
}
