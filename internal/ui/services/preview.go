// Package services provides the picker's preview rendering.
package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	lru "github.com/hashicorp/golang-lru/v2"
)

// MarkdownRenderer renders markdown source into styled terminal output.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

// GlamourRenderer renders markdown with glamour's terminal styles.
type GlamourRenderer struct {
	renderer *glamour.TermRenderer
}

// NewGlamourRenderer creates a renderer with automatic light/dark styling.
func NewGlamourRenderer(wrap int) (*GlamourRenderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil, err
	}
	return &GlamourRenderer{renderer: r}, nil
}

// Render renders markdown source.
func (g *GlamourRenderer) Render(markdown string) (string, error) {
	return g.renderer.Render(markdown)
}

// Preview produces display-ready previews of candidate files. Rendered
// previews are kept in a bounded LRU cache keyed by absolute path.
type Preview struct {
	renderer MarkdownRenderer
	cache    *lru.Cache[string, string]
	maxBytes int64
}

// NewPreview creates a preview service. maxBytes caps how much of each file
// is read.
func NewPreview(renderer MarkdownRenderer, cacheSize int, maxBytes int64) (*Preview, error) {
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Preview{renderer: renderer, cache: cache, maxBytes: maxBytes}, nil
}

// Render returns a preview of the file at absPath. Failures render as a
// message instead of an error; a broken preview never breaks the picker.
func (p *Preview) Render(absPath string, isDir bool) string {
	if isDir {
		return p.renderDir(absPath)
	}
	if cached, ok := p.cache.Get(absPath); ok {
		return cached
	}

	content, err := p.readCapped(absPath)
	if err != nil {
		return fmt.Sprintf("unable to preview: %v", err)
	}

	out := content
	if isMarkdown(absPath) {
		if rendered, err := p.renderer.Render(content); err == nil {
			out = rendered
		}
	}

	p.cache.Add(absPath, out)
	return out
}

// Purge drops all cached previews. Called when the root changes or the tree
// is known to have changed on disk.
func (p *Preview) Purge() {
	p.cache.Purge()
}

func (p *Preview) renderDir(absPath string) string {
	entries, err := os.ReadDir(absPath)
	if err != nil {
		return fmt.Sprintf("unable to preview: %v", err)
	}
	var b strings.Builder
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		b.WriteString(name)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "(empty directory)"
	}
	return b.String()
}

func (p *Preview) readCapped(absPath string) (string, error) {
	f, err := os.Open(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, p.maxBytes))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
