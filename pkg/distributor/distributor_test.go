package distributor

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/core-tools/hsu-sjw/pkg/domain"
	"github.com/core-tools/hsu-sjw/pkg/errors"
	"github.com/core-tools/hsu-sjw/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newTestDistributor(queueSize, maxDrops int) *Distributor {
	return NewDistributor(Config{QueueSize: queueSize, MaxConsecutiveDrops: maxDrops}, logging.NewNopLogger())
}

func change(id string, from, to domain.UnitState) domain.ChangeRecord {
	return domain.ChangeRecord{
		UnitID:     id,
		Previous:   domain.Status{State: from},
		New:        domain.Status{State: to},
		ObservedAt: time.Now(),
	}
}

func drain(sub *Subscription) []domain.Event {
	events := make([]domain.Event, 0)
	for {
		select {
		case event, ok := <-sub.Events():
			if !ok {
				return events
			}
			events = append(events, event)
		default:
			return events
		}
	}
}

func TestDistributor_TopicIsolation(t *testing.T) {
	d := newTestDistributor(8, 0)

	foo, err := d.Subscribe("sjw.unit.foo")
	require.NoError(t, err)
	bar, err := d.Subscribe("sjw.unit.bar")
	require.NoError(t, err)

	d.Publish(change("foo", domain.UnitStateActive, domain.UnitStateFailed))

	events := drain(foo)
	require.Len(t, events, 1)
	assert.Equal(t, "sjw.unit.foo", events[0].Topic)
	assert.Equal(t, uint64(1), events[0].Seq)
	assert.Equal(t, domain.UnitStateActive, events[0].Record.Previous.State)
	assert.Equal(t, domain.UnitStateFailed, events[0].Record.New.State)
	assert.Equal(t, uint64(1), foo.LastSeq())

	assert.Empty(t, drain(bar))
}

func TestDistributor_SubscribeValidation(t *testing.T) {
	d := newTestDistributor(8, 0)

	_, err := d.Subscribe("unit.foo")
	assert.True(t, errors.IsValidationError(err))

	// Unknown unit topics are allowed and never fire
	sub, err := d.Subscribe("sjw.unit.does-not-exist")
	require.NoError(t, err)
	d.Publish(change("foo", domain.UnitStateActive, domain.UnitStateFailed))
	assert.Empty(t, drain(sub))
}

func TestDistributor_OrderAndSequence(t *testing.T) {
	d := newTestDistributor(128, 0)
	sub, err := d.Subscribe("sjw.unit.a")
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		d.Publish(change("a", domain.UnitStateInactive, domain.UnitStateActive))
	}

	events := drain(sub)
	require.Len(t, events, 100)
	for i, event := range events {
		assert.Equal(t, uint64(i+1), event.Seq)
	}
}

func TestDistributor_LateSubscriberSeesContinuedSequence(t *testing.T) {
	d := newTestDistributor(8, 0)
	d.Publish(change("a", domain.UnitStateInactive, domain.UnitStateActive))

	sub, err := d.Subscribe("sjw.unit.a")
	require.NoError(t, err)
	d.Publish(change("a", domain.UnitStateActive, domain.UnitStateFailed))

	events := drain(sub)
	require.Len(t, events, 1)
	assert.Equal(t, uint64(2), events[0].Seq)
}

func TestDistributor_DropsThenEvicts(t *testing.T) {
	d := newTestDistributor(2, 3)
	slow, err := d.Subscribe("sjw.unit.a")
	require.NoError(t, err)
	fast, err := d.Subscribe("sjw.unit.a")
	require.NoError(t, err)

	received := 0
	for i := 0; i < 5; i++ {
		d.Publish(change("a", domain.UnitStateInactive, domain.UnitStateActive))
		received += len(drain(fast))
	}
	assert.Equal(t, 5, received)

	// 2 queued, 3 dropped, evicted on the third drop
	events := drain(slow)
	assert.Len(t, events, 2)
	_, open := <-slow.Events()
	assert.False(t, open)
	assert.True(t, errors.IsTransportError(slow.Err()))
	assert.Equal(t, uint64(3), slow.Dropped())

	stats := d.Stats()
	require.Len(t, stats.Topics, 1)
	assert.Equal(t, 1, stats.Topics[0].Subscribers)
	assert.Nil(t, fast.Err())
}

func TestDistributor_DropWithoutEviction(t *testing.T) {
	d := newTestDistributor(1, 0)
	sub, err := d.Subscribe("sjw.unit.a")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		d.Publish(change("a", domain.UnitStateInactive, domain.UnitStateActive))
	}

	events := drain(sub)
	require.Len(t, events, 1)
	assert.Equal(t, uint64(1), events[0].Seq)
	assert.Nil(t, sub.Err())

	// Gap in sequence tells the subscriber what was lost
	d.Publish(change("a", domain.UnitStateActive, domain.UnitStateFailed))
	events = drain(sub)
	require.Len(t, events, 1)
	assert.Equal(t, uint64(11), events[0].Seq)
}

func TestDistributor_UnsubscribeIdempotent(t *testing.T) {
	d := newTestDistributor(8, 0)
	sub, err := d.Subscribe("sjw.unit.a")
	require.NoError(t, err)

	d.Unsubscribe(sub)
	d.Unsubscribe(sub)

	_, open := <-sub.Events()
	assert.False(t, open)
	assert.NoError(t, sub.Err())
	assert.Equal(t, 0, d.Stats().Subscribers)

	assert.NotPanics(t, func() {
		d.Publish(change("a", domain.UnitStateInactive, domain.UnitStateActive))
	})
}

func TestDistributor_ConcurrentUnsubscribeDuringPublish(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := newTestDistributor(1024, 0)

	for round := 0; round < 50; round++ {
		sub, err := d.Subscribe("sjw.unit.a")
		require.NoError(t, err)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				d.Publish(change("a", domain.UnitStateInactive, domain.UnitStateActive))
			}
		}()

		var afterUnsubscribe int
		go func() {
			defer wg.Done()
			d.Unsubscribe(sub)
			// Channel is closed: whatever is buffered was delivered before
			for range sub.Events() {
				afterUnsubscribe++
			}
		}()
		wg.Wait()

		assert.LessOrEqual(t, afterUnsubscribe, 20)
		assert.NoError(t, sub.Err())
	}
}

func TestDistributor_ConcurrentTopicsAreIndependent(t *testing.T) {
	d := newTestDistributor(256, 0)

	subs := make(map[string]*Subscription)
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("unit-%d", i)
		sub, err := d.Subscribe(domain.Topic(id))
		require.NoError(t, err)
		subs[id] = sub
	}

	var wg sync.WaitGroup
	for id := range subs {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				d.Publish(change(id, domain.UnitStateInactive, domain.UnitStateActive))
			}
		}(id)
	}
	wg.Wait()

	for id, sub := range subs {
		events := drain(sub)
		require.Len(t, events, 100, id)
		for i, event := range events {
			assert.Equal(t, id, event.Record.UnitID)
			assert.Equal(t, uint64(i+1), event.Seq)
		}
	}
}

func TestDistributor_Close(t *testing.T) {
	d := newTestDistributor(8, 0)
	sub, err := d.Subscribe("sjw.unit.a")
	require.NoError(t, err)

	d.Close()
	d.Close()

	_, open := <-sub.Events()
	assert.False(t, open)
	assert.True(t, errors.IsCancelledError(sub.Err()))

	_, err = d.Subscribe("sjw.unit.a")
	assert.True(t, errors.IsCancelledError(err))
	d.Publish(change("a", domain.UnitStateInactive, domain.UnitStateActive))
}
