package feed

import (
	"sync"
	"time"

	"campuslinkhub/models"
)

// Store owns the feed. Every mutation runs to completion, observers
// included, before the next one starts, so observers see events in the
// order they were applied.
type Store struct {
	mu        sync.Mutex
	posts     models.Posts
	ids       *IDSource
	observers []Observer
	now       func() time.Time
}

// NewStore returns a store holding a copy of initial. Ids for new posts are
// issued above the largest id already present.
func NewStore(initial models.Posts) *Store {
	var floor int64
	for _, p := range initial {
		if p.ID > floor {
			floor = p.ID
		}
	}
	return &Store{
		posts: Clone(initial),
		ids:   NewIDSource(floor),
		now:   time.Now,
	}
}

// Subscribe registers o for all subsequent mutations.
func (s *Store) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Snapshot returns a copy of the current feed.
func (s *Store) Snapshot() models.Posts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Clone(s.posts)
}

// Len returns the number of posts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.posts)
}

// Get returns a copy of the post with the given id.
func (s *Store) Get(id int64) (models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := Find(s.posts, id)
	if !ok {
		return models.Post{}, false
	}
	return Clone(models.Posts{p})[0], true
}

// AddPost publishes content by author and returns the new post.
func (s *Store) AddPost(author, content string) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.ids.Next()
	s.posts = AddPost(s.posts, id, author, content)
	s.notify(Event{Kind: EventPostCreated, PostID: id, Username: author})
	return s.posts[len(s.posts)-1]
}

// Like adds a like to post id. It reports false, and changes nothing, when
// there is no such post.
func (s *Store) Like(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := Find(s.posts, id); !ok {
		return false
	}
	s.posts = Like(s.posts, id)
	s.notify(Event{Kind: EventPostLiked, PostID: id})
	return true
}

// AddComment appends a comment by author to post id. It reports false, and
// changes nothing, when there is no such post.
func (s *Store) AddComment(id int64, author, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := Find(s.posts, id); !ok {
		return false
	}
	s.posts = AddComment(s.posts, id, author, text)
	s.notify(Event{Kind: EventCommentAdded, PostID: id, Username: author})
	return true
}

// DeletePost removes post id. It reports false, and changes nothing, when
// there is no such post.
func (s *Store) DeletePost(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := Find(s.posts, id); !ok {
		return false
	}
	s.posts = DeletePost(s.posts, id)
	s.notify(Event{Kind: EventPostDeleted, PostID: id})
	return true
}

// notify must be called with s.mu held.
func (s *Store) notify(ev Event) {
	if len(s.observers) == 0 {
		return
	}
	ev.At = s.now()
	for _, o := range s.observers {
		o.FeedChanged(ev, s.posts)
	}
}
