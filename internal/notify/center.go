// Package notify keeps the transient notification feed: toasts auto-dismiss
// after their duration via a short fade window, and manual dismissal is safe
// to race against the auto-dismiss timer.
package notify

import (
	"sync"
	"time"
)

// Kind classifies a toast. Each kind carries a fixed icon.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Warning Kind = "warning"
	Info    Kind = "info"
)

// Icon returns the fixed icon for the kind.
func (k Kind) Icon() string {
	switch k {
	case Success:
		return "check-circle"
	case Error:
		return "x-circle"
	case Warning:
		return "alert-triangle"
	default:
		return "info-circle"
	}
}

// Toast is one transient notification. Dismissing is true during the fade
// window between dismissal and removal.
type Toast struct {
	ID         int64     `json:"id"`
	Kind       Kind      `json:"kind"`
	Icon       string    `json:"icon"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Dismissing bool      `json:"dismissing"`
	CreatedAt  time.Time `json:"created_at"`
}

// DefaultDuration is how long a toast stays before auto-dismissing.
const DefaultDuration = 3 * time.Second

// fadeDuration is the fade-out window between dismissal and removal.
const fadeDuration = 350 * time.Millisecond

// Center holds the active toasts. All methods are safe for concurrent use.
type Center struct {
	mu     sync.Mutex
	toasts map[int64]*Toast
	order  []int64
	timers map[int64]*time.Timer
	nextID int64

	fade time.Duration
}

// NewCenter creates an empty notification center.
func NewCenter() *Center {
	return &Center{
		toasts: make(map[int64]*Toast),
		timers: make(map[int64]*time.Timer),
		fade:   fadeDuration,
	}
}

// Push adds a toast that auto-dismisses after DefaultDuration.
func (c *Center) Push(kind Kind, title, message string) *Toast {
	return c.PushFor(kind, title, message, DefaultDuration)
}

// PushFor adds a toast that auto-dismisses after the given duration.
func (c *Center) PushFor(kind Kind, title, message string, duration time.Duration) *Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	t := &Toast{
		ID:        id,
		Kind:      kind,
		Icon:      kind.Icon(),
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}
	c.toasts[id] = t
	c.order = append(c.order, id)
	c.timers[id] = time.AfterFunc(duration, func() { c.Dismiss(id) })
	return t
}

// Dismiss starts the fade-then-remove sequence for the given toast. It is
// idempotent: dismissing an already-fading or already-removed toast is a
// no-op, so the manual close control and the auto-dismiss timer can fire in
// either order.
func (c *Center) Dismiss(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, ok := c.toasts[id]
	if !ok || t.Dismissing {
		return
	}
	t.Dismissing = true
	if timer, ok := c.timers[id]; ok {
		timer.Stop()
	}
	c.timers[id] = time.AfterFunc(c.fade, func() { c.remove(id) })
}

func (c *Center) remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.toasts[id]; !ok {
		return
	}
	delete(c.toasts, id)
	delete(c.timers, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Active returns the live toasts in push order, including ones mid-fade.
func (c *Center) Active() []*Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*Toast, 0, len(c.order))
	for _, id := range c.order {
		if t, ok := c.toasts[id]; ok {
			copy := *t
			out = append(out, &copy)
		}
	}
	return out
}

// Hub keys notification centers by visitor ID. Toasts are visitor-local,
// like the rest of the per-visitor state.
type Hub struct {
	mu      sync.Mutex
	centers map[string]*Center
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{centers: make(map[string]*Center)}
}

// For returns the visitor's center, creating it on first use.
func (h *Hub) For(visitorID string) *Center {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.centers[visitorID]
	if !ok {
		c = NewCenter()
		h.centers[visitorID] = c
	}
	return c
}
