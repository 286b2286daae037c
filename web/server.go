// ABOUTME: Read-only HTTP inspector exposing registry snapshots over a chi router.
// ABOUTME: The host publishes immutable Info slices; handlers never touch live previews.
package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yuin/goldmark"

	"github.com/bradysimon/snowscape/preview"
)

// Server is the inspector HTTP server. It holds the most recent registry
// snapshot published by the TUI host and serves it read-only.
type Server struct {
	router chi.Router
	addr   string

	// mu guards latest, which is replaced wholesale on each publish and
	// read concurrently by handler goroutines.
	mu     sync.RWMutex
	latest []preview.Info
}

// NewServer creates an inspector server listening on addr.
func NewServer(addr string) *Server {
	if addr == "" {
		addr = "127.0.0.1:7878"
	}
	s := &Server{addr: addr}
	s.router = s.buildRouter()
	return s
}

// Publish replaces the served snapshot. The slice must not be mutated by the
// caller after publishing; the registry hands over freshly built Info values.
func (s *Server) Publish(infos []preview.Info) {
	s.mu.Lock()
	s.latest = infos
	s.mu.Unlock()
}

func (s *Server) snapshot() []preview.Info {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// ServeHTTP delegates to the chi router, satisfying http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server with timeouts to prevent resource
// exhaustion from slow clients.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
	log.Printf("inspector listening addr=%s", s.addr)
	return srv.ListenAndServe()
}

// buildRouter constructs the chi router with all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/previews", s.handleList)
		r.Get("/previews/{previewID}", s.handleGet)
		r.Get("/previews/{previewID}/messages/{messageID}", s.handleGetMessage)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleIndex renders the HTML overview of every registered preview.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	infos := s.snapshot()

	type row struct {
		Info        preview.Info
		Description template.HTML
	}
	rows := make([]row, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, row{
			Info:        info,
			Description: markdownToHTML(info.Metadata.Description),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, rows); err != nil {
		log.Printf("error rendering index: %v", err)
	}
}

// handleList returns the full snapshot as JSON.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	infos := s.snapshot()
	if infos == nil {
		infos = []preview.Info{}
	}
	writeJSON(w, http.StatusOK, infos)
}

// handleGet returns one preview's snapshot by registry ID.
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "previewID")
	for _, info := range s.snapshot() {
		if info.ID == id {
			writeJSON(w, http.StatusOK, info)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{
		"error": fmt.Sprintf("no preview with id %s", id),
	})
}

// handleGetMessage returns one recorded message entry, addressed by its
// stable message ID within a preview's history.
func (s *Server) handleGetMessage(w http.ResponseWriter, r *http.Request) {
	previewID := chi.URLParam(r, "previewID")
	messageID := chi.URLParam(r, "messageID")

	for _, info := range s.snapshot() {
		if info.ID != previewID {
			continue
		}
		for _, entry := range info.Entries {
			if entry.ID == messageID {
				writeJSON(w, http.StatusOK, entry)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": fmt.Sprintf("no message with id %s in preview %s", messageID, previewID),
		})
		return
	}
	writeJSON(w, http.StatusNotFound, map[string]string{
		"error": fmt.Sprintf("no preview with id %s", previewID),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("error encoding response: %v", err)
	}
}

// markdownToHTML converts a markdown description to HTML using goldmark.
func markdownToHTML(input string) template.HTML {
	if input == "" {
		return ""
	}
	var buf bytes.Buffer
	md := goldmark.New()
	if err := md.Convert([]byte(input), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(input))
	}
	return template.HTML(buf.String())
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Preview Inspector</title>
<style>
body { font-family: monospace; margin: 2rem; background: #1a1b26; color: #c0caf5; }
h1 { color: #bb9af7; }
.card { border: 1px solid #414868; border-radius: 6px; padding: 1rem; margin: 1rem 0; }
.selected { border-color: #9ece6a; }
.label { font-weight: bold; color: #7aa2f7; }
.meta { color: #565f89; font-size: 0.9em; }
.indicator { padding: 0 0.4em; border-radius: 3px; }
.Healthy { background: #9ece6a; color: #1a1b26; }
.Degraded { background: #e0af68; color: #1a1b26; }
.Severe { background: #f7768e; color: #1a1b26; }
.Unknown { background: #414868; }
</style>
</head>
<body>
<h1>Preview Inspector</h1>
{{if not .}}<p>No snapshot published yet.</p>{{end}}
{{range .}}
<div class="card{{if .Info.Selected}} selected{{end}}">
  <div class="label">{{.Info.Metadata.Label}}</div>
  <div class="meta">{{.Info.ID}}{{if .Info.Metadata.Group}} · {{.Info.Metadata.Group}}{{end}}</div>
  {{if .Description}}<div>{{.Description}}</div>{{end}}
  <div>Messages: {{.Info.MessageCount}}
    {{if .Info.Timeline}}· Position: {{.Info.Timeline.Position}}/{{.Info.Timeline.Count}}{{end}}
    · <span class="indicator {{.Info.Indicator}}">{{.Info.Indicator}}</span>
  </div>
</div>
{{end}}
</body>
</html>
`))
