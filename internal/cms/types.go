package cms

import (
	"encoding/json"
	"time"
)

type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ImageSize struct {
	Width    *int    `json:"width"`
	Height   *int    `json:"height"`
	Filename *string `json:"filename"`
	URL      *string `json:"url"`
}

type HeroImage struct {
	ID           string               `json:"id"`
	Alt          string               `json:"alt"`
	ThumbnailURL string               `json:"thumbnailURL"`
	URL          string               `json:"url"`
	Sizes        map[string]ImageSize `json:"sizes"`
}

// RichTextNode is one node of the lexical document tree stored in a post body.
// Only type and text are interpreted here; everything else passes through.
type RichTextNode struct {
	Type     string         `json:"type"`
	Text     string         `json:"text,omitempty"`
	Children []RichTextNode `json:"children,omitempty"`
}

type RichText struct {
	Root struct {
		Children []RichTextNode `json:"children"`
	} `json:"root"`
}

type Post struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	PublishedAt      time.Time  `json:"publishedAt"`
	PopulatedAuthors []Author   `json:"populatedAuthors,omitempty"`
	HeroImage        *HeroImage `json:"heroImage,omitempty"`
	Content          *RichText  `json:"content,omitempty"`
	Hearts           int        `json:"hearts"`
	Status           string     `json:"_status,omitempty"`
}

// AuthorName returns the first populated author's name, or "Unknown".
func (p *Post) AuthorName() string {
	if len(p.PopulatedAuthors) > 0 && p.PopulatedAuthors[0].Name != "" {
		return p.PopulatedAuthors[0].Name
	}
	return "Unknown"
}

type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Comment references its post and author either by id string or, at depth>0,
// as a populated document. Ref keeps both forms.
type Comment struct {
	ID          string    `json:"id"`
	CommentText string    `json:"commentText"`
	Post        Ref       `json:"post"`
	Author      Ref       `json:"author"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AuthorName returns the populated author's name, falling back to email, then
// "Anonymous".
func (c *Comment) AuthorName() string {
	if c.Author.User != nil {
		if c.Author.User.Name != "" {
			return c.Author.User.Name
		}
		if c.Author.User.Email != "" {
			return c.Author.User.Email
		}
	}
	return "Anonymous"
}

// Ref is a relationship value: a bare id string or a populated user document.
type Ref struct {
	ID   string
	User *User
}

func (r *Ref) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &r.ID)
	}
	var u User
	if err := json.Unmarshal(b, &u); err != nil {
		return err
	}
	r.ID = u.ID
	r.User = &u
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if r.User != nil {
		return json.Marshal(r.User)
	}
	return json.Marshal(r.ID)
}

type Submission struct {
	SubmittedAt time.Time      `json:"submittedAt"`
	Data        map[string]any `json:"data"`
}

type Form struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Submissions []Submission `json:"submissions"`
}

type Page struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}
