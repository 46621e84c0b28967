package auth

import (
	"sync"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase/interfaces"
)

// Broadcaster fans auth events out to in-process listeners.
// Listeners run synchronously on the publishing goroutine, outside the lock.
type Broadcaster struct {
	mu        sync.RWMutex
	listeners map[uint64]interfaces.AuthStateListener
	nextID    uint64
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{listeners: make(map[uint64]interfaces.AuthStateListener)}
}

// Subscribe registers fn and returns its idempotent unsubscribe func.
func (b *Broadcaster) Subscribe(fn interfaces.AuthStateListener) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.listeners, id)
			b.mu.Unlock()
		})
	}
}

func (b *Broadcaster) Publish(ev entities.AuthEvent) {
	b.mu.RLock()
	fns := make([]interfaces.AuthStateListener, 0, len(b.listeners))
	for _, fn := range b.listeners {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func (b *Broadcaster) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners)
}
