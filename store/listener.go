package store

// Listener is an opaque handle for a registered callback. The pointer is the
// listener's identity: registering the same function twice yields two
// distinct handles, and removal takes the handle back.
type Listener struct {
	fn func()
}

func notify(listeners []*Listener) {
	for _, l := range listeners {
		l.fn()
	}
}

func removeListener(listeners []*Listener, h *Listener) []*Listener {
	for i, l := range listeners {
		if l == h {
			return append(listeners[:i], listeners[i+1:]...)
		}
	}
	return listeners
}
