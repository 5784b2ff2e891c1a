// internal/event/event.go
package event

import (
	"log"
	"runtime/debug"
)

// EventType — тип события
type EventType string

// Event — структура события. В Data всегда копия значения, а не
// указатель на состояние симуляции.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — интерфейс для подписчиков на события.
// Из OnEvent нельзя менять симуляцию.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Subscription identifies one Subscribe call so it can be undone.
type Subscription struct {
	eventType EventType
	id        uint64
}

type subscriber struct {
	id       uint64
	listener Listener
}

// Dispatcher — диспетчер событий. Подписчики вызываются синхронно,
// в порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]subscriber
	nextID    uint64
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscriber),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], subscriber{id: d.nextID, listener: listener})
	return Subscription{eventType: eventType, id: d.nextID}
}

// SubscribeAll registers listener for every listed event type.
func (d *Dispatcher) SubscribeAll(listener Listener, eventTypes ...EventType) []Subscription {
	subs := make([]Subscription, 0, len(eventTypes))
	for _, t := range eventTypes {
		subs = append(subs, d.Subscribe(t, listener))
	}
	return subs
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(sub Subscription) {
	listeners := d.listeners[sub.eventType]
	for i, s := range listeners {
		if s.id == sub.id {
			// copy so that a Dispatch in progress keeps its own slice
			next := make([]subscriber, 0, len(listeners)-1)
			next = append(next, listeners[:i]...)
			d.listeners[sub.eventType] = append(next, listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам. Паника подписчика
// пишется в лог, остальные подписчики всё равно получают событие.
func (d *Dispatcher) Dispatch(event Event) {
	for _, s := range d.listeners[event.Type] {
		d.notify(s.listener, event)
	}
}

func (d *Dispatcher) notify(listener Listener, event Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Dispatcher: listener for %s panicked: %v\n%s", event.Type, r, debug.Stack())
		}
	}()
	listener.OnEvent(event)
}

// Emit is shorthand for Dispatch(Event{Type: t, Data: data}).
func (d *Dispatcher) Emit(t EventType, data interface{}) {
	d.Dispatch(Event{Type: t, Data: data})
}
