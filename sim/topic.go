package sim

// Handle identifies a subscription on a Topic.
type Handle uint64

type subscription[T any] struct {
	id Handle
	fn func(T)
}

// Topic is a synchronous, typed publish/subscribe channel. Handlers run on the
// publishing goroutine in registration order. The zero value is ready to use.
type Topic[T any] struct {
	next     Handle
	handlers []subscription[T]
}

// Subscribe registers fn and returns a handle for Unsubscribe.
func (t *Topic[T]) Subscribe(fn func(T)) Handle {
	t.next++
	t.handlers = append(t.handlers, subscription[T]{id: t.next, fn: fn})
	return t.next
}

// Unsubscribe removes the handler registered under h. It reports whether a
// handler was removed.
func (t *Topic[T]) Unsubscribe(h Handle) bool {
	for i, s := range t.handlers {
		if s.id == h {
			t.handlers = append(t.handlers[:i:i], t.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// Publish delivers v to every handler registered at the time of the call.
// Handlers may subscribe or unsubscribe while being invoked.
func (t *Topic[T]) Publish(v T) {
	if len(t.handlers) == 0 {
		return
	}
	snapshot := t.handlers
	for _, s := range snapshot {
		s.fn(v)
	}
}

// Len returns the number of registered handlers.
func (t *Topic[T]) Len() int {
	return len(t.handlers)
}
