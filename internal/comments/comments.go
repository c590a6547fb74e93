// Package comments holds the comment thread shown on a post page and the
// submission flow that extends it.
package comments

import (
	"context"
	"errors"
	"strings"

	"blogfront/internal/cms"
	"blogfront/internal/session"
)

var (
	ErrUnauthenticated = errors.New("you must be logged in to comment")
	ErrEmptyComment    = errors.New("comment text is required")
)

// Poster creates a comment at the content API. *cms.Client satisfies it.
type Poster interface {
	CreateComment(ctx context.Context, token string, in cms.CommentInput) (*cms.Comment, error)
}

// Thread is the ordered, newest-first comment list for one post.
type Thread struct {
	PostID   string
	Comments []cms.Comment

	poster Poster
}

func NewThread(p Poster, postID string, existing []cms.Comment) *Thread {
	return &Thread{PostID: postID, Comments: existing, poster: p}
}

// Submit validates locally, creates the comment, and splices the confirmed
// record onto the head of the thread. Validation or auth failure returns
// before any network call; a backend failure leaves the thread untouched.
// There is no optimistic insertion: a comment's identity comes from the
// server.
func (t *Thread) Submit(ctx context.Context, text string, sess *session.Session) (*cms.Comment, error) {
	if sess == nil || sess.Token == "" || sess.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}
	created, err := t.poster.CreateComment(ctx, sess.Token, cms.CommentInput{
		Text:     text,
		PostID:   t.PostID,
		AuthorID: sess.UserID,
	})
	if err != nil {
		return nil, err
	}
	if created.Author.User == nil {
		created.Author.User = &cms.User{ID: sess.UserID, Name: sess.UserName}
	}
	t.Comments = append([]cms.Comment{*created}, t.Comments...)
	return created, nil
}
