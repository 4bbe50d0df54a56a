// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Subscription identifies one Subscribe call. Functions are not comparable,
// so listeners are removed by handle rather than by value.
type Subscription struct {
	Type EventType
	id   uint64
}

type subscriber struct {
	id       uint64
	listener Listener
}

// Dispatcher — диспетчер событий
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
	return Subscription{Type: eventType, id: d.nextID}
}

// SubscribeAll registers one listener for several event types.
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) []Subscription {
	subs := make([]Subscription, 0, len(types))
	for _, t := range types {
		subs = append(subs, d.Subscribe(t, listener))
	}
	return subs
}

// Unsubscribe — отписка от события. Unknown subscriptions are ignored.
func (d *Dispatcher) Unsubscribe(sub Subscription) {
	listeners := d.listeners[sub.Type]
	for i, s := range listeners {
		if s.id == sub.id {
			d.listeners[sub.Type] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам в порядке подписки
func (d *Dispatcher) Dispatch(event Event) {
	// копия, чтобы подписчик мог отписаться во время рассылки
	listeners := append([]subscriber(nil), d.listeners[event.Type]...)
	for _, s := range listeners {
		s.listener.OnEvent(event)
	}
}

// Count returns how many listeners are subscribed to eventType.
func (d *Dispatcher) Count(eventType EventType) int {
	return len(d.listeners[eventType])
}
