package middleware

import (
	"sync"
	"time"
)

// AuthEvent событие отклонённой аутентификации
type AuthEvent struct {
	Path   string
	Reason string
	At     time.Time
}

// AuthEvents явный реестр подписчиков на события аутентификации.
// Слой сессий публикует отказы, заинтересованные компоненты подписываются -
// вместо разделяемого глобального состояния.
type AuthEvents struct {
	mu   sync.RWMutex
	subs map[int]chan AuthEvent
	next int
}

// NewAuthEvents создает новый реестр подписчиков
func NewAuthEvents() *AuthEvents {
	return &AuthEvents{
		subs: make(map[int]chan AuthEvent),
	}
}

// Subscribe возвращает канал событий и функцию отписки.
// Канал буферизован; медленный подписчик теряет события, но не блокирует запросы.
func (e *AuthEvents) Subscribe() (<-chan AuthEvent, func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.next
	e.next++
	ch := make(chan AuthEvent, 16)
	e.subs[id] = ch

	unsubscribe := func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if sub, ok := e.subs[id]; ok {
			delete(e.subs, id)
			close(sub)
		}
	}

	return ch, unsubscribe
}

// Publish рассылает событие всем подписчикам без блокировки
func (e *AuthEvents) Publish(event AuthEvent) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, ch := range e.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
