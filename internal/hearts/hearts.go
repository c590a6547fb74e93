// Package hearts implements the optimistic like counter for a post: the
// displayed value moves before the backend write, and moves back if the write
// fails.
package hearts

import (
	"context"
	"log"

	"blogfront/internal/cms"
)

// Writer persists an absolute hearts value. *cms.Client satisfies it.
type Writer interface {
	UpdateHearts(ctx context.Context, postID string, hearts int) (*cms.Post, error)
}

// Counter tracks the displayed hearts value for one post. It is not safe for
// concurrent use; each request builds its own from session state.
type Counter struct {
	PostID string

	value  int
	liked  bool
	writer Writer
}

func NewCounter(w Writer, postID string, value int, liked bool) *Counter {
	return &Counter{PostID: postID, value: value, liked: liked, writer: w}
}

// Value is the currently displayed hearts count.
func (c *Counter) Value() int { return c.value }

// Liked reports whether this viewer has already hearted the post.
func (c *Counter) Liked() bool { return c.liked }

// Increment bumps the displayed count by one and writes the new absolute value
// to the backend. A repeated call while already liked is a no-op. On write
// failure the displayed count and liked flag are restored exactly to their
// prior state and the error is returned. On success the counter adopts the
// hearts value the backend confirmed.
func (c *Counter) Increment(ctx context.Context) error {
	if c.liked {
		return nil
	}
	prev := c.value
	c.value++
	c.liked = true

	post, err := c.writer.UpdateHearts(ctx, c.PostID, c.value)
	if err != nil {
		c.value = prev
		c.liked = false
		return err
	}
	log.Printf("hearts: post %s confirmed at %d", c.PostID, post.Hearts)
	c.value = post.Hearts
	return nil
}
