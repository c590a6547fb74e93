package cms

import (
	"context"
	"net/http"
	"net/url"
)

type CommentInput struct {
	Text     string
	PostID   string
	AuthorID string
}

// CreateComment posts a new comment as the holder of token. The created record
// comes back with its server-assigned id and timestamp.
func (c *Client) CreateComment(ctx context.Context, token string, in CommentInput) (*Comment, error) {
	body := map[string]string{
		"commentText": in.Text,
		"post":        in.PostID,
		"author":      in.AuthorID,
	}
	var out struct {
		Doc Comment `json:"doc"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/comments", token, body, &out); err != nil {
		return nil, err
	}
	return &out.Doc, nil
}

// UpdateHearts writes an absolute hearts value to a post and returns the
// updated document.
func (c *Client) UpdateHearts(ctx context.Context, postID string, hearts int) (*Post, error) {
	body := map[string]int{"hearts": hearts}
	var post Post
	if err := c.do(ctx, http.MethodPatch, "/api/posts/"+url.PathEscape(postID), "", body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdateFormSubmissions replaces a form's whole submissions array.
func (c *Client) UpdateFormSubmissions(ctx context.Context, formID string, subs []Submission) error {
	body := map[string][]Submission{"submissions": subs}
	return c.do(ctx, http.MethodPatch, "/api/forms/"+url.PathEscape(formID), "", body, nil)
}

type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Login exchanges credentials for a bearer token at the content API. The API
// owns password verification; nothing is checked locally.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/users/login", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
	Birthdate string `json:"birthdate"`
}

// Register creates a new user account at the content API.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*User, error) {
	var out struct {
		Doc User `json:"doc"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/users", "", in, &out); err != nil {
		return nil, err
	}
	return &out.Doc, nil
}
