package distributor

import (
	"sync"

	"github.com/core-tools/hsu-sjw/pkg/domain"

	"github.com/google/uuid"
)

// Subscription is one subscriber's registration on a topic.
type Subscription struct {
	id    string
	topic string
	ch    chan domain.Event

	mutex      sync.Mutex
	closed     bool
	err        error
	lastSeq    uint64
	drops      int
	totalDrops uint64
}

func newSubscription(topic string, queueSize int) *Subscription {
	return &Subscription{
		id:    uuid.NewString(),
		topic: topic,
		ch:    make(chan domain.Event, queueSize),
	}
}

func (s *Subscription) ID() string {
	return s.id
}

func (s *Subscription) Topic() string {
	return s.topic
}

// Events delivers events in topic order. Closed on unsubscribe or eviction.
func (s *Subscription) Events() <-chan domain.Event {
	return s.ch
}

// Err returns why the subscription ended, nil after a plain unsubscribe or
// while still open.
func (s *Subscription) Err() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.err
}

// LastSeq returns the sequence number of the last delivered event.
func (s *Subscription) LastSeq() uint64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.lastSeq
}

// Dropped returns the total number of events dropped for this subscriber.
func (s *Subscription) Dropped() uint64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.totalDrops
}

// offer tries a non-blocking send. open is false once the subscription has
// been closed, in which case nothing is sent.
func (s *Subscription) offer(event domain.Event) (delivered bool, open bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.closed {
		return false, false
	}
	select {
	case s.ch <- event:
		s.lastSeq = event.Seq
		s.drops = 0
		return true, true
	default:
		s.drops++
		s.totalDrops++
		return false, true
	}
}

func (s *Subscription) consecutiveDrops() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.drops
}

// close is idempotent; the first reason wins.
func (s *Subscription) close(reason error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.err = reason
	close(s.ch)
}
