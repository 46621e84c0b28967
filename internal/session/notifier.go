package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Notification is a transient, user-facing message (the console shows it as a toast).
type Notification struct {
	Level   string    `json:"level"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

type Notifier interface {
	Notify(n Notification)
}

// Inbox keeps the latest notifications for one session until the client drains them.
type Inbox struct {
	mu    sync.Mutex
	items []Notification
	limit int
}

func NewInbox(limit int) *Inbox {
	if limit <= 0 {
		limit = 20
	}
	return &Inbox{limit: limit}
}

func (i *Inbox) Notify(n Notification) {
	if n.At.IsZero() {
		n.At = time.Now().UTC()
	}
	log.Debug().Str("level", n.Level).Str("title", n.Title).Msg("[session][notify] queued")

	i.mu.Lock()
	defer i.mu.Unlock()
	i.items = append(i.items, n)
	if over := len(i.items) - i.limit; over > 0 {
		i.items = append([]Notification(nil), i.items[over:]...)
	}
}

// Drain returns pending notifications oldest first and empties the inbox.
func (i *Inbox) Drain() []Notification {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := i.items
	i.items = nil
	return out
}
