package server

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"blogfront/internal/cms"
)

func TestTimeAgo(t *testing.T) {
	now := time.Now()
	cases := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "Just now"},
		{now.Add(-1 * time.Minute), "1 minute ago"},
		{now.Add(-45 * time.Minute), "45 minutes ago"},
		{now.Add(-90 * time.Minute), "1 hour ago"},
		{now.Add(-26 * time.Hour), "1 day ago"},
		{now.Add(-96 * time.Hour), "4 days ago"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, timeAgo(c.at))
	}
}

func richText(paragraphWords ...string) *cms.RichText {
	var children []cms.RichTextNode
	for _, w := range paragraphWords {
		children = append(children, cms.RichTextNode{Type: "text", Text: w})
	}
	rt := &cms.RichText{}
	rt.Root.Children = []cms.RichTextNode{
		{Type: "heading", Children: []cms.RichTextNode{{Type: "text", Text: "skipped"}}},
		{Type: "paragraph", Children: children},
	}
	return rt
}

func TestSummaryJoinsFirstParagraph(t *testing.T) {
	got := summary(richText("hello", "world"))
	assert.Equal(t, "hello world", got)
}

func TestSummaryTruncatesAt200Runes(t *testing.T) {
	long := strings.Repeat("x", 250)
	got := summary(richText(long))
	assert.Equal(t, 203, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestSummaryNilContent(t *testing.T) {
	assert.Equal(t, "", summary(nil))
}

func TestSummaryNoParagraph(t *testing.T) {
	rt := &cms.RichText{}
	rt.Root.Children = []cms.RichTextNode{{Type: "heading"}}
	assert.Equal(t, "", summary(rt))
}
