package distributor

import (
	"sort"
	"strings"
	"sync"

	"github.com/core-tools/hsu-sjw/pkg/domain"
	"github.com/core-tools/hsu-sjw/pkg/errors"
	"github.com/core-tools/hsu-sjw/pkg/logging"
	"github.com/core-tools/hsu-sjw/pkg/metrics"
)

type Config struct {
	QueueSize           int `yaml:"queue_size"`
	MaxConsecutiveDrops int `yaml:"max_consecutive_drops"` // 0 means never evict
}

func DefaultConfig() Config {
	return Config{
		QueueSize:           64,
		MaxConsecutiveDrops: 16,
	}
}

type topicState struct {
	subscribers map[string]*Subscription
	seq         uint64
	publishMu   sync.Mutex // serializes publishes on the topic
}

// Distributor fans ChangeRecords out to the subscribers of their unit topic.
// Each subscriber owns a bounded queue; a subscriber that keeps its queue
// full is evicted.
type Distributor struct {
	config Config
	logger logging.Logger
	topics map[string]*topicState
	closed bool
	mutex  sync.RWMutex
}

func NewDistributor(config Config, logger logging.Logger) *Distributor {
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultConfig().QueueSize
	}
	if config.MaxConsecutiveDrops < 0 {
		config.MaxConsecutiveDrops = 0
	}
	return &Distributor{
		config: config,
		logger: logger,
		topics: make(map[string]*topicState),
	}
}

// Subscribe registers interest in a topic. Topics are not checked for
// existence; a topic with no publisher simply never fires.
func (d *Distributor) Subscribe(topic string) (*Subscription, error) {
	if !strings.HasPrefix(topic, domain.TopicPrefix) {
		return nil, errors.NewValidationError("topic must start with "+domain.TopicPrefix, nil).WithContext("topic", topic)
	}

	sub := newSubscription(topic, d.config.QueueSize)

	d.mutex.Lock()
	if d.closed {
		d.mutex.Unlock()
		return nil, errors.NewCancelledError("distributor is closed", nil)
	}
	state, exists := d.topics[topic]
	if !exists {
		state = &topicState{subscribers: make(map[string]*Subscription)}
		d.topics[topic] = state
	}
	state.subscribers[sub.id] = sub
	d.mutex.Unlock()

	metrics.AddSubscribers(1)
	d.logger.Debugf("Subscribed %s to %s", sub.id, topic)
	return sub, nil
}

// Unsubscribe removes sub and closes its channel. Safe to call more than
// once and concurrently with Publish.
func (d *Distributor) Unsubscribe(sub *Subscription) {
	if d.detach(sub) {
		d.logger.Debugf("Unsubscribed %s from %s", sub.id, sub.topic)
	}
	sub.close(nil)
}

// detach removes sub from its topic and reports whether it was registered.
func (d *Distributor) detach(sub *Subscription) bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	state, exists := d.topics[sub.topic]
	if !exists {
		return false
	}
	if _, registered := state.subscribers[sub.id]; !registered {
		return false
	}
	delete(state.subscribers, sub.id)
	if len(state.subscribers) == 0 && state.seq == 0 {
		delete(d.topics, sub.topic)
	}
	metrics.AddSubscribers(-1)
	return true
}

// Publish assigns the next topic sequence number to record and offers it to
// every current subscriber without blocking.
func (d *Distributor) Publish(record domain.ChangeRecord) {
	topic := record.Topic()

	state, event, subscribers, ok := d.prepare(topic, record)
	if !ok {
		return
	}
	defer state.publishMu.Unlock()

	metrics.RecordPublished()

	for _, sub := range subscribers {
		delivered, open := sub.offer(event)
		if !open || delivered {
			continue
		}
		metrics.RecordDropped()
		drops := sub.consecutiveDrops()
		if d.config.MaxConsecutiveDrops > 0 && drops >= d.config.MaxConsecutiveDrops {
			d.evict(sub, drops)
		}
	}
}

// prepare takes the topic publish lock, assigns the sequence number and
// snapshots the subscribers. On success the caller owns state.publishMu.
func (d *Distributor) prepare(topic string, record domain.ChangeRecord) (*topicState, domain.Event, []*Subscription, bool) {
	for {
		d.mutex.Lock()
		if d.closed {
			d.mutex.Unlock()
			return nil, domain.Event{}, nil, false
		}
		state, exists := d.topics[topic]
		if !exists {
			state = &topicState{subscribers: make(map[string]*Subscription)}
			d.topics[topic] = state
		}
		d.mutex.Unlock()

		state.publishMu.Lock()

		d.mutex.Lock()
		if d.closed || d.topics[topic] != state {
			// Topic state was dropped while waiting, start over
			d.mutex.Unlock()
			state.publishMu.Unlock()
			continue
		}
		state.seq++
		event := domain.Event{Topic: topic, Seq: state.seq, Record: record}
		subscribers := make([]*Subscription, 0, len(state.subscribers))
		for _, sub := range state.subscribers {
			subscribers = append(subscribers, sub)
		}
		d.mutex.Unlock()

		return state, event, subscribers, true
	}
}

func (d *Distributor) evict(sub *Subscription, drops int) {
	if !d.detach(sub) {
		return
	}
	d.logger.Warnf("Evicting slow subscriber %s on %s after %d consecutive drops", sub.id, sub.topic, drops)
	metrics.RecordEvicted()
	sub.close(errors.NewTransportError("subscriber evicted as slow consumer", nil).
		WithContext("subscription_id", sub.id).
		WithContext("topic", sub.topic).
		WithContext("consecutive_drops", drops))
}

// Close evicts every subscriber and rejects further subscriptions.
func (d *Distributor) Close() {
	d.mutex.Lock()
	if d.closed {
		d.mutex.Unlock()
		return
	}
	d.closed = true
	subscribers := make([]*Subscription, 0)
	for _, state := range d.topics {
		for _, sub := range state.subscribers {
			subscribers = append(subscribers, sub)
		}
	}
	d.topics = make(map[string]*topicState)
	d.mutex.Unlock()

	metrics.AddSubscribers(-len(subscribers))
	for _, sub := range subscribers {
		sub.close(errors.NewCancelledError("distributor closed", nil).WithContext("topic", sub.topic))
	}
	d.logger.Infof("Distributor closed, %d subscribers released", len(subscribers))
}

// TopicStats describes one topic.
type TopicStats struct {
	Topic       string
	Seq         uint64
	Subscribers int
}

type Stats struct {
	Topics      []TopicStats
	Subscribers int
}

func (d *Distributor) Stats() Stats {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	stats := Stats{Topics: make([]TopicStats, 0, len(d.topics))}
	for topic, state := range d.topics {
		stats.Topics = append(stats.Topics, TopicStats{
			Topic:       topic,
			Seq:         state.seq,
			Subscribers: len(state.subscribers),
		})
		stats.Subscribers += len(state.subscribers)
	}
	sort.Slice(stats.Topics, func(i, j int) bool {
		return stats.Topics[i].Topic < stats.Topics[j].Topic
	})
	return stats
}
