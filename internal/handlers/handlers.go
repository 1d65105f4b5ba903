// Package handlers serves the plain net/http liveness endpoints. They are
// mounted on the Fiber app through its adaptor, ahead of the session
// middleware, so they answer without touching sessions or templates.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// RedisClient is the minimal interface our handlers expect.
type RedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, val interface{}, ttl time.Duration) error
}

// FeedCounter reports the number of posts in the feed.
type FeedCounter interface {
	Len() int
}

type Handlers struct {
	Redis   RedisClient
	Feed    FeedCounter
	Service string
	Logger  *slog.Logger
}

const healthCacheKey = "linkhub:health"

type healthBody struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Posts   int    `json:"posts"`
}

var pingResponse = []byte(`{"message": "pong"}`)

// Health reports liveness and the feed size. The body is cached in Redis for a
// few seconds when a client is configured; cache errors are ignored.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	w.Header().Set("Content-Type", "application/json")

	if h.Redis != nil {
		if cached, err := h.Redis.Get(ctx, healthCacheKey); err == nil {
			h.write(w, []byte(cached))
			return
		}
	}

	body := healthBody{Status: "ok", Service: h.Service}
	if h.Feed != nil {
		body.Posts = h.Feed.Len()
	}
	payload, err := json.Marshal(body)
	if err != nil {
		http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
		return
	}

	if h.Redis != nil {
		_ = h.Redis.Set(ctx, healthCacheKey, string(payload), 5*time.Second)
	}
	h.write(w, payload)
}

func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	h.write(w, pingResponse)
}

func (h *Handlers) write(w http.ResponseWriter, b []byte) {
	if _, err := w.Write(b); err != nil && h.Logger != nil {
		h.Logger.Warn("write error", slog.String("error", err.Error()))
	}
}
