package scroll

import "github.com/google/uuid"

// SubscriptionID 标识一次订阅，用于取消订阅。
type SubscriptionID string

type subscriber struct {
	id SubscriptionID
	fn func(*BoundedEntryList)
}

// changedSignal 同步地按订阅顺序通知所有观察者。
type changedSignal struct {
	subs []subscriber
}

func (s *changedSignal) subscribe(fn func(*BoundedEntryList)) SubscriptionID {
	id := SubscriptionID(uuid.NewString())
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return id
}

func (s *changedSignal) unsubscribe(id SubscriptionID) bool {
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return true
		}
	}
	return false
}

func (s *changedSignal) emit(l *BoundedEntryList) {
	// Snapshot so an observer that unsubscribes itself does not skip a neighbour.
	subs := append([]subscriber(nil), s.subs...)
	for _, sub := range subs {
		sub.fn(l)
	}
}
