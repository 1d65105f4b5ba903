package notify

import (
	"log/slog"

	"campuslinkhub/internal/feed"
	"campuslinkhub/models"
)

// LogObserver writes one info line per feed event.
func LogObserver(logger *slog.Logger) feed.Observer {
	return feed.ObserverFunc(func(ev feed.Event, posts models.Posts) {
		fields := []any{
			slog.String("kind", string(ev.Kind)),
			slog.Int64("post_id", ev.PostID),
			slog.Int("posts", len(posts)),
		}
		if ev.Username != "" {
			fields = append(fields, slog.String("username", ev.Username))
		}
		logger.Info("feed changed", fields...)
	})
}
