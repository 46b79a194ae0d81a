package sspe

// listenerList is an ordered registry of zero-argument callbacks.
// Functions are not comparable in Go, so removal works through the
// registration token handed back by add.
type listenerList struct {
	entries []listenerEntry
	nextID  int
}

type listenerEntry struct {
	id int
	fn func()
}

// add registers a listener and returns its removal token.
func (l *listenerList) add(fn func()) int {
	l.nextID++
	l.entries = append(l.entries, listenerEntry{id: l.nextID, fn: fn})
	return l.nextID
}

// remove drops the listener with the given token, if still registered.
func (l *listenerList) remove(id int) {
	for i := range l.entries {
		if l.entries[i].id == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// call invokes every listener synchronously, in registration order.
// The entries slice is snapshotted first so listeners may add or remove
// listeners while being notified.
func (l *listenerList) call() {
	entries := make([]listenerEntry, len(l.entries))
	copy(entries, l.entries)
	for _, e := range entries {
		e.fn()
	}
}
