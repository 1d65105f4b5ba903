// Package feed holds the post collection and the operations over it.
//
// The operations in this file are pure: they never modify the Posts they are
// given, nor any Post or Comment inside it. Each returns a new collection in
// which only the affected post is a new value; untouched posts are shared.
// Operations on an id that is not in the collection return an equal copy.
package feed

import "campuslinkhub/models"

// AddPost appends a post by author with a fresh id. The new post has no likes
// or comments and is last in the result.
func AddPost(posts models.Posts, id int64, author, content string) models.Posts {
	out := make(models.Posts, len(posts), len(posts)+1)
	copy(out, posts)
	return append(out, models.Post{
		ID:       id,
		Username: author,
		Content:  content,
		Comments: []models.Comment{},
	})
}

// Like adds one like to the post with the given id.
func Like(posts models.Posts, id int64) models.Posts {
	return replace(posts, id, func(p models.Post) models.Post {
		p.Likes++
		return p
	})
}

// AddComment appends a comment by author to the post with the given id.
func AddComment(posts models.Posts, id int64, author, text string) models.Posts {
	return replace(posts, id, func(p models.Post) models.Post {
		comments := make([]models.Comment, len(p.Comments), len(p.Comments)+1)
		copy(comments, p.Comments)
		p.Comments = append(comments, models.Comment{Username: author, Comment: text})
		return p
	})
}

// DeletePost removes the post with the given id.
func DeletePost(posts models.Posts, id int64) models.Posts {
	out := make(models.Posts, 0, len(posts))
	for _, p := range posts {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

// Find returns the post with the given id.
func Find(posts models.Posts, id int64) (models.Post, bool) {
	for _, p := range posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

// Clone returns a copy of posts that shares nothing mutable with it.
func Clone(posts models.Posts) models.Posts {
	out := make(models.Posts, len(posts))
	for i, p := range posts {
		p.Comments = append([]models.Comment{}, p.Comments...)
		out[i] = p
	}
	return out
}

func replace(posts models.Posts, id int64, fn func(models.Post) models.Post) models.Posts {
	out := make(models.Posts, len(posts))
	for i, p := range posts {
		if p.ID == id {
			p = fn(p)
		}
		out[i] = p
	}
	return out
}
