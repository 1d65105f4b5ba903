package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"campuslinkhub/internal/feed"
	redispkg "campuslinkhub/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type recordingPublisher struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (r *recordingPublisher) Publish(_ context.Context, _ string, msg interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg.(string))
	return r.err
}

func TestPublisher_PreservesOrder(t *testing.T) {
	rec := &recordingPublisher{}
	pub := NewPublisher(rec, "feed", 16, discard)

	store := feed.NewStore(nil)
	store.Subscribe(pub)
	p := store.AddPost("alice", "hi")
	store.Like(p.ID)
	store.DeletePost(p.ID)
	pub.Close()

	require.Len(t, rec.messages, 3)
	var kinds []feed.EventKind
	for _, m := range rec.messages {
		var ev feed.Event
		require.NoError(t, json.Unmarshal([]byte(m), &ev))
		assert.Equal(t, p.ID, ev.PostID)
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []feed.EventKind{feed.EventPostCreated, feed.EventPostLiked, feed.EventPostDeleted}, kinds)
}

func TestPublisher_ErrorsAreLoggedNotFatal(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	rec := &recordingPublisher{err: errors.New("connection refused")}
	pub := NewPublisher(rec, "feed", 4, logger)

	pub.FeedChanged(feed.Event{Kind: feed.EventPostLiked, PostID: 1}, nil)
	pub.Close()

	assert.Contains(t, buf.String(), "connection refused")
}

func TestPublisher_CloseIsIdempotent(t *testing.T) {
	pub := NewPublisher(&recordingPublisher{}, "feed", 1, discard)
	pub.Close()
	pub.Close()
}

func TestPublisher_EventsAfterCloseAreIgnored(t *testing.T) {
	rec := &recordingPublisher{}
	pub := NewPublisher(rec, "feed", 4, discard)
	pub.Close()

	assert.NotPanics(t, func() {
		pub.FeedChanged(feed.Event{Kind: feed.EventPostCreated, PostID: 1}, nil)
	})
	assert.Empty(t, rec.messages)
}

func TestPublisher_Miniredis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redispkg.NewClient(mr.Addr())
	defer client.Close()

	ctx := context.Background()
	sub := client.Subscribe(ctx, "linkhub:feed")
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	pub := NewPublisher(redispkg.NewAdapter(client), "linkhub:feed", 8, discard)
	pub.FeedChanged(feed.Event{Kind: feed.EventPostCreated, PostID: 42, Username: "alice"}, nil)
	pub.Close()

	select {
	case msg := <-sub.Channel():
		var ev feed.Event
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &ev))
		assert.Equal(t, int64(42), ev.PostID)
		assert.Equal(t, "alice", ev.Username)
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}

func TestMetrics_CountsEvents(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	store := feed.NewStore(nil)
	store.Subscribe(m)

	p := store.AddPost("alice", "hi")
	store.Like(p.ID)
	store.Like(p.ID)
	store.Like(999)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Events.WithLabelValues(string(feed.EventPostCreated))))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Events.WithLabelValues(string(feed.EventPostLiked))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Posts))
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	store := feed.NewStore(nil)
	store.Subscribe(LogObserver(slog.New(slog.NewJSONHandler(&buf, nil))))

	store.AddPost("alice", "hi")

	assert.Contains(t, buf.String(), `"kind":"post_created"`)
	assert.Contains(t, buf.String(), `"username":"alice"`)
}
