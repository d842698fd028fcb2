package editor

// Observer is called after a transaction that mutated the document.
// There is no payload beyond "something changed"; consumers re-read what
// they need.
type Observer func()

// Subscription represents an active observer registration.
type Subscription struct {
	id       uint64
	notifier *notifier
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		delete(s.notifier.observers, s.id)
		s.notifier = nil
	}
}

// notifier fans a modified event out to observers. It inherits the
// surface's single-goroutine ownership, so no locking is needed.
type notifier struct {
	observers map[uint64]Observer
	nextID    uint64
}

func newNotifier() *notifier {
	return &notifier{observers: make(map[uint64]Observer)}
}

func (n *notifier) subscribe(fn Observer) *Subscription {
	n.nextID++
	n.observers[n.nextID] = fn
	return &Subscription{id: n.nextID, notifier: n}
}

func (n *notifier) notify() {
	for _, fn := range n.observers {
		fn()
	}
}
