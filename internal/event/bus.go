// Package event carries the one-way notifications the core emits so
// presentation layers can refresh without polling. Dispatch is synchronous
// and fire-and-forget; there is no acknowledgement or delivery guarantee.
package event

import "sync"

type Type string

const (
	UserChanged     Type = "userChanged"     // session established or cleared
	UsersChanged    Type = "usersChanged"    // users collection rewritten
	ProgressUpdated Type = "progressUpdated" // a course record changed
)

type Event struct {
	Type     Type   `json:"type"`
	Action   string `json:"action,omitempty"`   // userChanged: login|logout|register
	Count    int    `json:"count,omitempty"`    // usersChanged: collection size
	Email    string `json:"email,omitempty"`    // owner of the change, when known
	CourseID string `json:"courseId,omitempty"` // progressUpdated
	Progress int    `json:"progress,omitempty"` // progressUpdated: percent 0..100
}

type Handler func(Event)

type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

func NewBus() *Bus { return &Bus{} }

func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	hs := make([]Handler, len(b.handlers))
	copy(hs, b.handlers)
	b.mu.RUnlock()
	for _, h := range hs {
		h(e)
	}
}
