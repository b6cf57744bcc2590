package nav

// Listeners is a registry of scroll handlers. The zero value is ready to use.
type Listeners struct {
	next     int
	handlers map[int]func()
	order    []int
}

// Add registers fn and returns a function that removes it. The returned
// function may be called any number of times.
func (l *Listeners) Add(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	if l.handlers == nil {
		l.handlers = make(map[int]func())
	}
	id := l.next
	l.next++
	l.handlers[id] = fn
	l.order = append(l.order, id)
	return func() {
		if _, ok := l.handlers[id]; !ok {
			return
		}
		delete(l.handlers, id)
		for i, v := range l.order {
			if v == id {
				l.order = append(l.order[:i], l.order[i+1:]...)
				break
			}
		}
	}
}

// Len returns the number of registered handlers.
func (l *Listeners) Len() int {
	return len(l.handlers)
}

// Emit invokes every registered handler in registration order.
func (l *Listeners) Emit() {
	ids := append([]int(nil), l.order...)
	for _, id := range ids {
		if fn, ok := l.handlers[id]; ok {
			fn()
		}
	}
}
