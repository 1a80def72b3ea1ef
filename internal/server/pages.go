package server

import (
	"bytes"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/alexisbeaulieu97/accommodate/internal/chrome"
	"github.com/alexisbeaulieu97/accommodate/internal/dom"
	"github.com/alexisbeaulieu97/accommodate/internal/engine"
	"github.com/alexisbeaulieu97/accommodate/internal/i18n"
	"github.com/alexisbeaulieu97/accommodate/internal/ports"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

// handlePage renders an HTML file from Root with the current settings
// applied. Each request mounts a short-lived engine on its own document.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	name := strings.Trim(chi.URLParam(r, "*"), "/")
	if name == "" {
		name = "index.html"
	}
	name = path.Clean(name)
	if !fs.ValidPath(name) || !strings.HasSuffix(name, ".html") {
		http.NotFound(w, r)
		return
	}

	raw, err := fs.ReadFile(os.DirFS(s.opts.Root), name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		s.log.Error(err, "failed to read page", "page", name)
		http.Error(w, "failed to read page", http.StatusInternalServerError)
		return
	}

	doc, err := dom.Parse(bytes.NewReader(raw))
	if err != nil {
		s.log.Error(err, "failed to parse page", "page", name)
		http.Error(w, "failed to parse page", http.StatusInternalServerError)
		return
	}

	// The page gets a snapshot so later writes cannot race the render.
	snapshot := settings.NewStore(s.opts.Store.Get())
	ctx := r.Context()
	eng := engine.Default(snapshot, doc, s.opts.Accommodations,
		engine.WithLogger(s.log.With("correlation_id", ports.GetCorrelationID(ctx))),
		engine.WithMetrics(s.opts.Metrics),
		engine.WithContext(ctx),
	)
	eng.Mount()
	defer eng.Unmount()

	translator := s.translator(r)
	chrome.RenderTrigger(doc, snapshot.Get(), translator)

	var out bytes.Buffer
	if err := doc.Render(&out); err != nil {
		s.log.Error(err, "failed to render page", "page", name)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", translator.Locale())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Bytes())
}

func (s *Server) translator(r *http.Request) ports.Translator {
	locale := r.Header.Get("Accept-Language")
	if locale == "" {
		locale = s.opts.Locale
	}
	return i18n.MustLoad(locale)
}
