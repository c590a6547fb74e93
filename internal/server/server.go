package server

import (
	"html/template"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"blogfront/internal/cms"
	"blogfront/internal/contact"
	"blogfront/internal/session"
)

type Server struct {
	CMS      *cms.Client
	Sessions *session.Store
	Contact  *contact.Accumulator

	tmpl       map[string]*template.Template
	CookieName string
	SessionTTL time.Duration
}

func New(client *cms.Client, sessions *session.Store, contactForm *contact.Accumulator, templateDir string) (*Server, error) {
	funcs := template.FuncMap{
		"timeAgo": timeAgo,
		"summary": summary,
	}
	templates := map[string]*template.Template{}
	layout := filepath.Join(templateDir, "layout.html")
	pages, err := filepath.Glob(filepath.Join(templateDir, "*.html"))
	if err != nil {
		return nil, err
	}
	for _, page := range pages {
		if filepath.Base(page) == "layout.html" {
			continue
		}
		t, err := template.New("layout.html").Funcs(funcs).ParseFiles(layout, page)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(page), ".html")
		templates[name] = t
	}
	return &Server{
		CMS:        client,
		Sessions:   sessions,
		Contact:    contactForm,
		tmpl:       templates,
		CookieName: "blogfront_session",
		SessionTTL: 24 * time.Hour,
	}, nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleHome)
	mux.HandleFunc("/blogs", s.handleBlogs)
	mux.HandleFunc("/post", s.handlePost)
	mux.HandleFunc("/post/comment", s.requireAuth(s.handleComment))
	mux.HandleFunc("/post/heart", s.handleHeart)
	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/register", s.handleRegister)
	mux.HandleFunc("/logout", s.handleLogout)
	mux.HandleFunc("/contact", s.handleContact)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	return mux
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.routes().ServeHTTP(w, r)
}

func (s *Server) render(w http.ResponseWriter, name string, data map[string]any) {
	t, ok := s.tmpl[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}

// requireAuth redirects anonymous visitors to the login page and passes the
// session explicitly into the wrapped handler.
func (s *Server) requireAuth(next func(http.ResponseWriter, *http.Request, *session.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.currentSession(r)
		if sess == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r, sess)
	}
}

func (s *Server) currentSession(r *http.Request) *session.Session {
	cookie, err := r.Cookie(s.CookieName)
	if err != nil {
		return nil
	}
	sess, err := s.Sessions.Get(cookie.Value)
	if err != nil {
		return nil
	}
	return sess
}
