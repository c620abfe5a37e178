package notify

import "sync"

// Level of a transient notification.
type Level int

const (
	LevelSuccess Level = iota
	LevelError
)

type Notification struct {
	Level   Level
	Message string
}

// Bus fans transient notifications out to subscribers. It is the toast
// channel between stores and whatever view is attached.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Notification)
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(Notification))}
}

// Subscribe registers fn and returns an unsubscribe func.
func (b *Bus) Subscribe(fn func(Notification)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

func (b *Bus) Success(msg string) {
	b.publish(Notification{Level: LevelSuccess, Message: msg})
}

func (b *Bus) Error(msg string) {
	b.publish(Notification{Level: LevelError, Message: msg})
}

func (b *Bus) publish(n Notification) {
	b.mu.Lock()
	fns := make([]func(Notification), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(n)
	}
}
