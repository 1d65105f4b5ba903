package feed

import (
	"time"

	"campuslinkhub/models"
)

// EventKind names a feed mutation.
type EventKind string

const (
	EventPostCreated  EventKind = "post_created"
	EventPostLiked    EventKind = "post_liked"
	EventCommentAdded EventKind = "comment_added"
	EventPostDeleted  EventKind = "post_deleted"
)

// Event describes one applied mutation. Username is the acting visitor; it is
// empty for likes and deletes, which are anonymous in the feed.
type Event struct {
	Kind     EventKind `json:"kind"`
	PostID   int64     `json:"post_id"`
	Username string    `json:"username,omitempty"`
	At       time.Time `json:"at"`
}

// Observer is notified after every applied mutation, with the collection as
// it stands after the change. Observers run on the mutating goroutine while
// the store is locked and must not call back into the store.
type Observer interface {
	FeedChanged(ev Event, posts models.Posts)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev Event, posts models.Posts)

func (f ObserverFunc) FeedChanged(ev Event, posts models.Posts) { f(ev, posts) }
