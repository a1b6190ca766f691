// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageTitle is the header of every page
const PageTitle = "Analytics Report (Prototype)"

type pages struct {
	tmpl *template.Template
}

func mustParsePages() *pages {
	return &pages{tmpl: template.Must(template.ParseFS(templateFS, "templates/*.html"))}
}

type gateData struct {
	Title   string
	Warning string
}

type errorData struct {
	Title   string
	Status  int
	Message string
}

func (p *pages) gate(w http.ResponseWriter, status int) {
	p.render(w, status, "gate.html", gateData{Title: PageTitle, Warning: AccessDeniedMessage})
}

func (p *pages) errorPage(w http.ResponseWriter, status int, message string) {
	p.render(w, status, "error.html", errorData{Title: PageTitle, Status: status, Message: message})
}

// render executes into a buffer first so a template error never leaves
// a half-written page behind
func (p *pages) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render page", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
