package listener

// Wrapping delegates every event to a wrapped listener.
// Embed it and override methods to intercept some events only.
// Events are dropped while no listener is wrapped.
type Wrapping struct {
	Func
	wrapped Listener
}

func NewWrapping(l Listener) *Wrapping {
	w := &Wrapping{wrapped: l}
	w.Func = func(e Event) {
		if w.wrapped != nil {
			e.Fire(w.wrapped)
		}
	}
	return w
}

func (w *Wrapping) Wrapped() Listener {
	return w.wrapped
}

func (w *Wrapping) SetWrapped(l Listener) {
	w.wrapped = l
}
