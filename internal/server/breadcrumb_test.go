package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrailRootIsHomeOnly(t *testing.T) {
	assert.Equal(t, []Crumb{{Label: "Home", Href: "/"}}, Trail("/"))
}

func TestTrailTitleCasesSegments(t *testing.T) {
	trail := Trail("/blogs")
	assert.Equal(t, []Crumb{
		{Label: "Home", Href: "/"},
		{Label: "Blogs", Href: "/blogs"},
	}, trail)
}

func TestTrailSkipsRoutingSegments(t *testing.T) {
	trail := Trail("/post",
		Crumb{Label: "Blog", Href: "/blogs"},
		Crumb{Label: "My First Post", Href: "/post?slug=my-first-post"},
	)
	assert.Equal(t, []Crumb{
		{Label: "Home", Href: "/"},
		{Label: "Blog", Href: "/blogs"},
		{Label: "My First Post", Href: "/post?slug=my-first-post"},
	}, trail)
}

func TestTrailHyphensBecomeSpaces(t *testing.T) {
	trail := Trail("/some-long-section")
	assert.Equal(t, "Some Long Section", trail[1].Label)
}

func TestTrailDeduplicatesDynamicHrefs(t *testing.T) {
	trail := Trail("/blogs", Crumb{Label: "Blogs again", Href: "/blogs"})
	assert.Len(t, trail, 2)
}
