package sledit

// Notification is raised to Config.Notify when the control changes.
type Notification uint8

const (
	// NotifyChange: the text changed.
	NotifyChange Notification = iota + 1
	// NotifyMaxText: inserted text was cut at the hard limit.
	NotifyMaxText
	// NotifySelChange: the caret or the selection moved without a text change.
	NotifySelChange
)

func (n Notification) String() string {
	switch n {
	case NotifyChange:
		return "change"
	case NotifyMaxText:
		return "maxtext"
	case NotifySelChange:
		return "selchange"
	default:
		return "unknown"
	}
}

func (c *Control) raise(n Notification) {
	for _, p := range c.pending {
		if p == n {
			return
		}
	}
	c.pending = append(c.pending, n)
}

// flush delivers pending notifications. It runs with the control idle, so
// the callback may issue further commands.
func (c *Control) flush() {
	if len(c.pending) == 0 {
		return
	}
	pending := c.pending
	c.pending = nil
	if c.notify == nil {
		return
	}
	for _, n := range pending {
		c.notify(n)
	}
}
