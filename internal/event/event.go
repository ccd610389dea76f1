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

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// Dispatcher — синхронный диспетчер событий. Не потокобезопасен:
// вся игровая логика крутится в одном цикле.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeFunc — подписка функцией
func (d *Dispatcher) SubscribeFunc(eventType EventType, fn func(Event)) {
	d.Subscribe(eventType, ListenerFunc(fn))
}

// Unsubscribe — отписка от события. ListenerFunc отписать нельзя: функции не сравниваются.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			next := make([]Listener, 0, len(listeners)-1)
			next = append(next, listeners[:i]...)
			next = append(next, listeners[i+1:]...)
			d.listeners[eventType] = next
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам в порядке подписки.
// Подписки, сделанные во время рассылки, получат только следующие события.
func (d *Dispatcher) Dispatch(event Event) {
	listeners := d.listeners[event.Type]
	for _, listener := range listeners {
		listener.OnEvent(event)
	}
}
