// Package web serves the public job listing and the moderation pages.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/amishk599/jobdesk/internal/jobview"
	"github.com/amishk599/jobdesk/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = []string{"listings", "listing", "manage", "manage_job", "notfound", "error"}

const shutdownTimeout = 10 * time.Second

// Server renders pages from the job API.
type Server struct {
	board     model.JobBoard
	moderator model.JobModerator
	applyURL  string
	logger    *slog.Logger
	templates map[string]*template.Template
}

// NewServer parses the embedded templates. applyURL is the base of the
// external "Apply Now" link; it may be empty.
func NewServer(board model.JobBoard, moderator model.JobModerator, applyURL string, logger *slog.Logger) (*Server, error) {
	funcs := template.FuncMap{
		"markup": func(m model.Markup) template.HTML { return template.HTML(m) },
		"accent": accentClass,
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		templates[name] = t
	}

	return &Server{
		board:     board,
		moderator: moderator,
		applyURL:  applyURL,
		logger:    logger,
		templates: templates,
	}, nil
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/job-listings", http.StatusFound)
	})
	mux.HandleFunc("GET /job-listings", s.handleListings)
	mux.HandleFunc("GET /job-listings/{jobId}", s.handleListing)
	mux.HandleFunc("GET /manage-jobs", s.handleManage)
	mux.HandleFunc("GET /manage-jobs/{jobId}", s.handleManageJob)
	mux.HandleFunc("POST /manage-jobs/{jobId}/approve", s.handleAction(model.ActionApprove))
	mux.HandleFunc("POST /manage-jobs/{jobId}/mark-as-spam", s.handleAction(model.ActionMarkAsSpam))
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("/", s.handleNotFound)

	return Chain(mux, RequestID, AccessLog(s.logger), Recover(s.logger))
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("web server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web server shutdown: %w", err)
	}
	return nil
}

// pageData is what every template receives.
type pageData struct {
	Title   string
	Query   string
	Cards   []jobview.Card
	Rows    []jobview.Row
	Detail  jobview.Detail
	Message string
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	t, ok := s.templates[name]
	if !ok {
		s.logger.Error("unknown template", "template", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		s.logger.Error("rendering template",
			"request_id", RequestIDFrom(r.Context()),
			"template", name,
			"error", err,
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func accentClass(st model.Status) string {
	if a := st.Accent(); a != model.AccentNone {
		return "accent-" + string(a)
	}
	return ""
}
