package models

// Comment is a reply attached to a post. It has no identity beyond its
// position in Post.Comments.
type Comment struct {
	Username string `json:"username"`
	Comment  string `json:"comment"`
}
