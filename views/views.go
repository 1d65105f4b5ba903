// Package views renders the single page of the app from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"campuslinkhub/internal/session"
	"campuslinkhub/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Field describes one input of the sign-up form.
type Field struct {
	Name  string
	Label string
	Type  string
}

// SignUpFields are the sign-up form inputs, all required. Their values are
// accepted and discarded.
var SignUpFields = []Field{
	{Name: "name", Label: "Name", Type: "text"},
	{Name: "rollNo", Label: "Roll No", Type: "text"},
	{Name: "phone", Label: "Phone No", Type: "text"},
	{Name: "email", Label: "Email ID", Type: "email"},
	{Name: "username", Label: "Username", Type: "text"},
	{Name: "password", Label: "Password", Type: "password"},
}

// Page is the data a page render needs.
type Page struct {
	AppName      string
	Session      session.Session
	Posts        models.Posts
	SignUpFields []Field
}

// Renderer executes the page templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render returns the HTML for p.
func (r *Renderer) Render(p Page) ([]byte, error) {
	if p.SignUpFields == nil {
		p.SignUpFields = SignUpFields
	}
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "layout", p); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}
