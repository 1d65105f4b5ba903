package models

// Post is a feed entry. Posts are values: feed operations replace them rather
// than mutate them, so a Post obtained from a snapshot never changes.
type Post struct {
	ID       int64     `json:"id"`
	Username string    `json:"username"`
	Content  string    `json:"content"`
	ImageURL string    `json:"image_url,omitempty"`
	Likes    int       `json:"likes"`
	Comments []Comment `json:"comments"`
}

// Posts is the ordered feed, oldest first.
type Posts []Post
