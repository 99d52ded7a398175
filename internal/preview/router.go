package preview

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/", s.handleIndex)
	r.Get("/content", s.handleContent)

	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, indexPage, s.theme)
}

func (s *Server) handleContent(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	content := s.content
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(content); err != nil {
		s.logger.Error("failed to encode preview content", "error", err)
	}
}

const indexPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>repograph preview</title>
<style>
body { margin: 0; font-family: sans-serif; background: #fafafa; }
#diagram { padding: 24px; text-align: center; }
#explanation { max-width: 48rem; margin: 0 auto 48px; padding: 0 24px; color: #333; white-space: pre-wrap; }
#empty { padding: 64px; text-align: center; color: #888; }
</style>
</head>
<body>
<div id="empty">Waiting for a diagram...</div>
<div id="diagram"></div>
<div id="explanation"></div>
<script type="module">
import mermaid from "https://cdn.jsdelivr.net/npm/mermaid@11/dist/mermaid.esm.min.mjs";
mermaid.initialize({ startOnLoad: false, theme: %q });

let version = 0;
async function refresh() {
  try {
    const res = await fetch("/content");
    const content = await res.json();
    if (content.version === version || !content.diagram) return;
    version = content.version;
    const { svg } = await mermaid.render("graph-" + version, content.diagram);
    document.getElementById("empty").style.display = "none";
    document.getElementById("diagram").innerHTML = svg;
    document.getElementById("explanation").textContent = content.explanation;
  } catch (err) {
    console.error(err);
  }
}
refresh();
setInterval(refresh, 1000);
</script>
</body>
</html>`
