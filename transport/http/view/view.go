// Package view renders the server-side admin pages.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"portfolio/internal/domains/booking/model/dto"
)

const (
	bookingsTitle = "Bookings"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer produces complete HTML documents.
type Renderer interface {
	Bookings(bookings []dto.BookingResponse) ([]byte, error)
	Denied() ([]byte, error)
}

type renderer struct {
	bookings *template.Template
	denied   *template.Template
}

type page struct {
	Title    string
	Bookings []dto.BookingResponse
}

func New() (Renderer, error) {
	bookings, err := template.ParseFS(templateFS, "templates/layout.html", "templates/bookings.html")
	if err != nil {
		return nil, fmt.Errorf("parsing bookings template: %w", err)
	}

	denied, err := template.ParseFS(templateFS, "templates/layout.html", "templates/denied.html")
	if err != nil {
		return nil, fmt.Errorf("parsing denied template: %w", err)
	}

	return &renderer{bookings: bookings, denied: denied}, nil
}

func (r *renderer) Bookings(bookings []dto.BookingResponse) ([]byte, error) {
	return execute(r.bookings, page{Title: bookingsTitle, Bookings: bookings})
}

func (r *renderer) Denied() ([]byte, error) {
	return execute(r.denied, page{Title: bookingsTitle})
}

func execute(tmpl *template.Template, data page) ([]byte, error) {
	var buf bytes.Buffer

	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", tmpl.Name(), err)
	}

	return buf.Bytes(), nil
}
