package server

import "strings"

// Crumb is one entry of the breadcrumb trail rendered above a page.
type Crumb struct {
	Label string
	Href  string
}

// Trail derives the breadcrumb trail from a request path: Home first, then one
// crumb per path segment with hyphens turned into spaces and words
// title-cased. Segments that only route ("post", "posts", "category") are
// skipped. Dynamic crumbs, such as a post title or a category name, are
// appended afterwards unless an equal href is already present.
func Trail(path string, dynamic ...Crumb) []Crumb {
	trail := []Crumb{{Label: "Home", Href: "/"}}

	current := ""
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		current += "/" + seg
		if seg == "post" || seg == "posts" || seg == "category" {
			continue
		}
		trail = append(trail, Crumb{Label: segmentLabel(seg), Href: current})
	}
	for _, d := range dynamic {
		if !hasHref(trail, d.Href) {
			trail = append(trail, d)
		}
	}
	return trail
}

func segmentLabel(seg string) string {
	words := strings.Split(strings.ReplaceAll(seg, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func hasHref(trail []Crumb, href string) bool {
	for _, c := range trail {
		if c.Href == href {
			return true
		}
	}
	return false
}
