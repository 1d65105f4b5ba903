// Package notify fans feed events out to the world outside the process:
// a Redis pub/sub channel, Prometheus metrics and the structured log.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"campuslinkhub/internal/feed"
	"campuslinkhub/models"
)

// EventPublisher is the Redis capability the publisher needs.
type EventPublisher interface {
	Publish(ctx context.Context, channel string, msg interface{}) error
}

// Publisher forwards feed events to a Redis channel as JSON. Events are queued
// so the store never waits on the network; one goroutine drains the queue,
// which keeps events in the order the store applied them.
type Publisher struct {
	client  EventPublisher
	channel string
	logger  *slog.Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan feed.Event
	done   chan struct{}
}

// NewPublisher starts a publisher with room for size pending events.
func NewPublisher(client EventPublisher, channel string, size int, logger *slog.Logger) *Publisher {
	if size <= 0 {
		size = 256
	}
	p := &Publisher{
		client:  client,
		channel: channel,
		logger:  logger,
		timeout: 2 * time.Second,
		queue:   make(chan feed.Event, size),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

// FeedChanged implements feed.Observer. A full queue drops the event, and
// events arriving after Close are ignored.
func (p *Publisher) FeedChanged(ev feed.Event, _ models.Posts) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return
	}
	select {
	case p.queue <- ev:
	default:
		p.logger.Warn("feed event dropped, publish queue full",
			slog.String("kind", string(ev.Kind)),
			slog.Int64("post_id", ev.PostID))
	}
}

// Close stops accepting events and waits until queued ones are published.
func (p *Publisher) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()
	<-p.done
}

func (p *Publisher) run() {
	defer close(p.done)
	for ev := range p.queue {
		payload, err := json.Marshal(ev)
		if err != nil {
			p.logger.Error("encode feed event", slog.String("error", err.Error()))
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		err = p.client.Publish(ctx, p.channel, string(payload))
		cancel()
		if err != nil {
			p.logger.Warn("publish feed event",
				slog.String("channel", p.channel),
				slog.String("kind", string(ev.Kind)),
				slog.String("error", err.Error()))
		}
	}
}
