package server

import (
	"net/http"
	"net/url"
	"strconv"

	"blogfront/internal/cms"
	"blogfront/internal/comments"
	"blogfront/internal/hearts"
	"blogfront/internal/session"
)

// baseData carries what the layout needs on every page: the session, the
// breadcrumb trail, and the contact-form flash state.
func (s *Server) baseData(r *http.Request, dynamic ...Crumb) map[string]any {
	q := r.URL.Query()
	return map[string]any{
		"Path":           r.URL.RequestURI(),
		"Session":        s.currentSession(r),
		"Crumbs":         Trail(r.URL.Path, dynamic...),
		"ContactStatus":  q.Get("contact"),
		"ContactEmail":   q.Get("cemail"),
		"ContactMessage": q.Get("cmessage"),
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()
	query := r.URL.Query().Get("q")
	data := s.baseData(r)
	data["Posts"] = s.CMS.SearchPosts(ctx, query)
	data["Query"] = query
	if query == "" {
		data["Page"] = s.CMS.HomePage(ctx)
	}
	s.render(w, "home", data)
}

func (s *Server) handleBlogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	selected := r.URL.Query().Get("category")
	categories := s.CMS.ListCategories(ctx)

	var dynamic []Crumb
	for _, c := range categories {
		if c.Slug == selected {
			dynamic = append(dynamic, Crumb{Label: c.Title, Href: "/blogs?category=" + url.QueryEscape(c.Slug)})
			break
		}
	}
	data := s.baseData(r, dynamic...)
	data["Posts"] = s.CMS.PostsByCategory(ctx, selected)
	data["Categories"] = categories
	data["Selected"] = selected
	s.render(w, "blogs", data)
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := r.URL.Query().Get("slug")
	if slug == "" {
		http.NotFound(w, r)
		return
	}
	post := s.CMS.PostBySlug(ctx, slug)
	if post == nil {
		http.NotFound(w, r)
		return
	}
	sess := s.currentSession(r)
	liked := false
	if sess != nil {
		liked, _ = s.Sessions.Liked(sess.ID, post.ID)
	}
	data := s.baseData(r,
		Crumb{Label: "Blog", Href: "/blogs"},
		Crumb{Label: post.Title, Href: "/post?slug=" + url.QueryEscape(post.Slug)},
	)
	data["Post"] = post
	data["Comments"] = s.CMS.ListComments(ctx, post.ID)
	data["Liked"] = liked
	data["Error"] = r.URL.Query().Get("error")
	s.render(w, "post", data)
}

func (s *Server) handleComment(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	postID := r.FormValue("post_id")
	slug := r.FormValue("slug")
	text := r.FormValue("text")

	thread := comments.NewThread(s.CMS, postID, nil)
	if _, err := thread.Submit(r.Context(), text, sess); err != nil {
		http.Redirect(w, r, postURL(slug, err.Error()), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, postURL(slug, ""), http.StatusSeeOther)
}

func (s *Server) handleHeart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()
	postID := r.FormValue("post_id")
	slug := r.FormValue("slug")
	current, _ := strconv.Atoi(r.FormValue("hearts"))

	sess := s.currentSession(r)
	liked := r.FormValue("liked") == "1"
	if !liked && sess != nil {
		liked, _ = s.Sessions.Liked(sess.ID, postID)
	}

	counter := hearts.NewCounter(s.CMS, postID, current, liked)
	if err := counter.Increment(ctx); err != nil {
		http.Redirect(w, r, postURL(slug, "Could not save your like. Please try again."), http.StatusSeeOther)
		return
	}
	if sess != nil && !liked {
		if err := s.Sessions.MarkLiked(sess.ID, postID); err != nil {
			// the heart is already confirmed upstream; only the local mark failed
			http.Redirect(w, r, postURL(slug, ""), http.StatusSeeOther)
			return
		}
	}
	http.Redirect(w, r, postURL(slug, ""), http.StatusSeeOther)
}

func postURL(slug, errMsg string) string {
	v := url.Values{"slug": {slug}}
	if errMsg != "" {
		v.Set("error", errMsg)
	}
	return "/post?" + v.Encode()
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		data := s.baseData(r)
		data["Email"] = ""
		s.render(w, "login", data)
	case http.MethodPost:
		email := r.FormValue("email")
		password := r.FormValue("password")
		res, err := s.CMS.Login(r.Context(), email, password)
		if err != nil {
			data := s.baseData(r)
			data["Error"] = err.Error()
			data["Email"] = email
			s.render(w, "login", data)
			return
		}
		sess, err := s.Sessions.Create(res.Token, res.User.ID, res.User.Name, s.SessionTTL)
		if err != nil {
			http.Error(w, "could not create session", http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     s.CookieName,
			Value:    sess.ID,
			Path:     "/",
			Expires:  sess.ExpiresAt,
			HttpOnly: true,
		})
		http.Redirect(w, r, "/", http.StatusSeeOther)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.render(w, "register", s.baseData(r))
	case http.MethodPost:
		in := registerInput(r)
		if in.Email == "" || in.Password == "" || in.Name == "" {
			data := s.baseData(r)
			data["Error"] = "missing fields"
			s.render(w, "register", data)
			return
		}
		if _, err := s.CMS.Register(r.Context(), in); err != nil {
			data := s.baseData(r)
			data["Error"] = err.Error()
			s.render(w, "register", data)
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if cookie, err := r.Cookie(s.CookieName); err == nil {
		if err := s.Sessions.Revoke(cookie.Value); err == nil {
			http.SetCookie(w, &http.Cookie{Name: s.CookieName, Path: "/", MaxAge: -1})
		}
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	email := r.FormValue("email")
	message := r.FormValue("message")
	back := r.FormValue("back")
	if back == "" || back[0] != '/' {
		back = "/"
	}
	if err := s.Contact.Submit(r.Context(), email, message); err != nil {
		// keep the entered values so the form stays populated for retry
		http.Redirect(w, r, withQuery(back, url.Values{
			"contact":  {"failed"},
			"cemail":   {email},
			"cmessage": {message},
		}), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, withQuery(back, url.Values{"contact": {"sent"}}), http.StatusSeeOther)
}

func withQuery(path string, extra url.Values) string {
	u, err := url.Parse(path)
	if err != nil {
		u = &url.URL{Path: "/"}
	}
	q := u.Query()
	for k, vs := range extra {
		q.Set(k, vs[0])
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func registerInput(r *http.Request) (in cms.RegisterInput) {
	in.Email = r.FormValue("email")
	in.Password = r.FormValue("password")
	in.Name = r.FormValue("name")
	in.Phone = r.FormValue("phone")
	in.Gender = r.FormValue("gender")
	in.Birthdate = r.FormValue("birthdate")
	return in
}
