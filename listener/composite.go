package listener

// Composite broadcasts each event to all of its listeners, in the order they were added.
type Composite struct {
	Func
	listeners []Listener
}

func NewComposite(listeners ...Listener) *Composite {
	c := &Composite{listeners: listeners}
	c.Func = func(e Event) {
		for _, l := range c.listeners {
			e.Fire(l)
		}
	}
	return c
}

func (c *Composite) Add(l Listener) {
	c.listeners = append(c.listeners, l)
}

func (c *Composite) Listeners() []Listener {
	return c.listeners
}
