// Command thumbgen renders a video thumbnail from a background image and
// text annotations.
//
// Usage:
//
//	thumbgen -doc thumb.yaml
//	thumbgen -image photo.jpg -text "BIG NEWS" -preset extreme -out news.png
package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/thumbnail"
	"github.com/gogpu/thumbnail/document"
	"github.com/gogpu/thumbnail/upload"
)

func main() {
	var (
		docPath = flag.String("doc", "", "thumbnail document (YAML or JSON)")
		image   = flag.String("image", "", "background image, overrides the document background")
		out     = flag.String("out", "", "output file (default "+thumbnail.DefaultFilename+")")
		width   = flag.Int("width", 0, "output width, overrides the document")
		height  = flag.Int("height", 0, "output height, overrides the document")
		caption = flag.String("text", "", "annotation text when no document is given")
		preset  = flag.String("preset", "", "emphasis preset for -text: subtle, medium, strong or extreme")
		verbose = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	thumbnail.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	doc, err := loadDocument(*docPath, *image, *caption, *preset)
	if err != nil {
		log.Fatalf("Failed to load document: %v", err)
	}
	if *width > 0 {
		doc.Output.Width = *width
	}
	if *height > 0 {
		doc.Output.Height = *height
	}

	bgPath := doc.BackgroundPath()
	if *image != "" {
		bgPath = *image
	}
	bg, err := os.ReadFile(bgPath) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		log.Fatalf("Failed to read background: %v", err)
	}
	info, err := upload.Validate(bg)
	if err != nil {
		log.Fatalf("Rejected background %s: %v", bgPath, err)
	}

	opts, err := doc.Options()
	if err != nil {
		log.Fatalf("Invalid document: %v", err)
	}
	res, err := thumbnail.New(opts...).Compose(bg, doc.Annotations())
	if err != nil {
		log.Fatalf("Failed to compose: %v", err)
	}

	dst := doc.OutputPath()
	if *out != "" {
		dst = *out
	}
	if dir := filepath.Dir(dst); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(dst, res.PNG, 0o644); err != nil { //nolint:gosec // output is a public image
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Thumbnail saved to %s (%dx%d from %s %dx%d, %d degraded)\n",
		dst, res.Width, res.Height, info.Format, info.Width, info.Height, len(res.Degraded))
}

// errDocAndText is returned when both a document and command-line
// annotation flags are given.
var errDocAndText = errors.New("-text and -preset cannot be combined with -doc")

// loadDocument reads docPath, or builds a one-layer document from the
// command line when no document is given.
func loadDocument(docPath, image, caption, preset string) (*document.Document, error) {
	if docPath != "" {
		if caption != "" || preset != "" {
			return nil, errDocAndText
		}
		return document.Load(docPath)
	}
	if image == "" {
		flag.Usage()
		os.Exit(2)
	}

	layer := document.Layer{TextAnnotation: thumbnail.NewAnnotation("title"), Preset: preset}
	if caption != "" {
		layer.Text = caption
	}
	doc := &document.Document{
		Background: image,
		Layers:     []document.Layer{layer},
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}
