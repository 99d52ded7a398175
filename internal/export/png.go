// Package export renders Mermaid diagram source to PNG files using a
// headless Chrome instance.
package export

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/chromedp/chromedp"
)

const renderTimeout = 60 * time.Second

// exportScale matches the device scale factor used when saving diagrams,
// so text stays readable after zooming in.
const exportScale = 4.0

// pageTemplate hosts the Mermaid renderer. The diagram source and theme
// are injected as JSON-encoded strings, so arbitrary diagram text cannot
// break out of the script block.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>body { margin: 0; background: white; } #diagram { display: inline-block; padding: 16px; }</style>
</head>
<body>
<div id="diagram"></div>
<script type="module">
import mermaid from "https://cdn.jsdelivr.net/npm/mermaid@11/dist/mermaid.esm.min.mjs";
mermaid.initialize({ startOnLoad: false, theme: %s });
const { svg } = await mermaid.render("graph", %s);
document.getElementById("diagram").innerHTML = svg;
</script>
</body>
</html>`

// Renderer drives a headless browser to rasterize diagrams.
type Renderer struct {
	theme  string
	logger *slog.Logger
}

// NewRenderer creates a PNG renderer using the given Mermaid theme.
func NewRenderer(theme string, logger *slog.Logger) *Renderer {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if theme == "" {
		theme = "neutral"
	}
	return &Renderer{theme: theme, logger: logger}
}

// PNG renders the diagram source and writes the result to path.
func (r *Renderer) PNG(ctx context.Context, diagram, path string) error {
	if diagram == "" {
		return fmt.Errorf("nothing to export: diagram is empty")
	}

	page, err := r.buildPage(diagram)
	if err != nil {
		return err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, renderTimeout)
	defer cancelRun()

	start := time.Now()
	var buf []byte
	err = chromedp.Run(runCtx,
		chromedp.EmulateViewport(1920, 1080, chromedp.EmulateScale(exportScale)),
		chromedp.Navigate("data:text/html;base64,"+base64.StdEncoding.EncodeToString([]byte(page))),
		chromedp.WaitVisible(`#diagram svg`, chromedp.ByQuery),
		chromedp.Screenshot(`#diagram`, &buf, chromedp.NodeVisible),
	)
	if err != nil {
		return fmt.Errorf("failed to render diagram: %w", err)
	}

	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	r.logger.Debug("diagram exported",
		"path", path,
		"bytes", len(buf),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

func (r *Renderer) buildPage(diagram string) (string, error) {
	theme, err := json.Marshal(r.theme)
	if err != nil {
		return "", fmt.Errorf("failed to encode theme: %w", err)
	}
	source, err := json.Marshal(diagram)
	if err != nil {
		return "", fmt.Errorf("failed to encode diagram source: %w", err)
	}
	return fmt.Sprintf(pageTemplate, theme, source), nil
}
