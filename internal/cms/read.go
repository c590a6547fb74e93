package cms

import (
	"context"
	"log"
	"net/url"
	"strings"
)

type docsOf[T any] struct {
	Docs []T `json:"docs"`
}

// ListPosts fetches every post at depth=2. Failures degrade to an empty list.
func (c *Client) ListPosts(ctx context.Context) []Post {
	var out docsOf[Post]
	if err := c.get(ctx, "/api/posts?depth=2", &out); err != nil {
		log.Printf("cms: list posts: %v", err)
		return nil
	}
	return out.Docs
}

// PostsByCategory fetches posts filtered by category slug. An empty slug or
// "all" means no filter.
func (c *Client) PostsByCategory(ctx context.Context, slug string) []Post {
	path := "/api/posts?depth=2"
	if slug != "" && slug != "all" {
		path += "&where[categories.slug][equals]=" + url.QueryEscape(slug)
	}
	var out docsOf[Post]
	if err := c.get(ctx, path, &out); err != nil {
		log.Printf("cms: posts by category %q: %v", slug, err)
		return nil
	}
	return out.Docs
}

// SearchPosts fetches the full post list and filters by case-insensitive title
// substring. The API has no text query, so the filter runs here.
func (c *Client) SearchPosts(ctx context.Context, query string) []Post {
	posts := c.ListPosts(ctx)
	query = strings.TrimSpace(query)
	if query == "" {
		return posts
	}
	q := strings.ToLower(query)
	var matched []Post
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), q) {
			matched = append(matched, p)
		}
	}
	return matched
}

// PostBySlug returns the post with the given slug, or nil if absent or the
// fetch failed.
func (c *Client) PostBySlug(ctx context.Context, slug string) *Post {
	var out docsOf[Post]
	path := "/api/posts?where[slug][equals]=" + url.QueryEscape(slug) + "&depth=2"
	if err := c.get(ctx, path, &out); err != nil {
		log.Printf("cms: post by slug %q: %v", slug, err)
		return nil
	}
	if len(out.Docs) == 0 {
		return nil
	}
	return &out.Docs[0]
}

func (c *Client) ListCategories(ctx context.Context) []Category {
	var out docsOf[Category]
	if err := c.get(ctx, "/api/categories", &out); err != nil {
		log.Printf("cms: list categories: %v", err)
		return nil
	}
	return out.Docs
}

// ListComments returns the comments on a post, newest first (sorted by the
// backend).
func (c *Client) ListComments(ctx context.Context, postID string) []Comment {
	var out docsOf[Comment]
	path := "/api/comments?where[post][equals]=" + url.QueryEscape(postID) + "&depth=1&sort=-createdAt"
	if err := c.get(ctx, path, &out); err != nil {
		log.Printf("cms: comments for post %s: %v", postID, err)
		return nil
	}
	return out.Docs
}

// HomePage returns the CMS page with slug "home", or nil.
func (c *Client) HomePage(ctx context.Context) *Page {
	var out docsOf[Page]
	if err := c.get(ctx, "/api/pages?where[slug][equals]=home&depth=2", &out); err != nil {
		log.Printf("cms: home page: %v", err)
		return nil
	}
	if len(out.Docs) == 0 {
		return nil
	}
	return &out.Docs[0]
}

// GetForm reads a form document by id. Unlike the other reads this one reports
// failure, because a form submission must abort before writing when the read
// fails.
func (c *Client) GetForm(ctx context.Context, id string) (*Form, error) {
	var form Form
	if err := c.get(ctx, "/api/forms/"+url.PathEscape(id), &form); err != nil {
		return nil, err
	}
	return &form, nil
}
