package realtime

import (
	"sync"
	"time"
)

const clientBuffer = 10

// Event - изменение секции, отправляемое подписчикам превью
type Event struct {
	Type      string      `json:"type"`
	Page      string      `json:"page"`
	Timestamp int64       `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// Broker раздаёт события подписчикам одной страницы
type Broker struct {
	clients map[string]map[chan Event]bool
	mutex   sync.RWMutex
}

func NewBroker() *Broker {
	return &Broker{
		clients: make(map[string]map[chan Event]bool),
	}
}

func (b *Broker) Subscribe(page string) chan Event {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	ch := make(chan Event, clientBuffer)
	if _, ok := b.clients[page]; !ok {
		b.clients[page] = make(map[chan Event]bool)
	}
	b.clients[page][ch] = true

	return ch
}

func (b *Broker) Unsubscribe(page string, ch chan Event) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	clients, ok := b.clients[page]
	if !ok || !clients[ch] {
		return
	}

	delete(clients, ch)
	if len(clients) == 0 {
		delete(b.clients, page)
	}
	close(ch)
}

// Publish never blocks; slow subscribers miss the event.
func (b *Broker) Publish(page, eventType string, data interface{}) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	event := Event{
		Type:      eventType,
		Page:      page,
		Timestamp: time.Now().Unix(),
		Data:      data,
	}

	for ch := range b.clients[page] {
		select {
		case ch <- event:
		default:
		}
	}
}

func (b *Broker) Subscribers(page string) int {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	return len(b.clients[page])
}
