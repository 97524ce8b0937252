// Package eventrow transforms rows of the tabular event export into
// normalized event documents.
package eventrow

import (
	"fmt"
	"strings"

	"github.com/eventbyen/eventsync-cli/internal/core/domain"
	"github.com/eventbyen/eventsync-cli/internal/normalisers/slug"
)

// Recognized export columns. Names are case- and punctuation-exact;
// any other column is ignored.
const (
	ColTitle          = "Title"
	ColSlug           = "Slug"
	ColStartDate      = "Start date"
	ColEndDate        = "End date"
	ColImage          = "Image"
	ColImageAlt       = "Image:alt"
	ColThemeFilter    = "Theme Filter"
	ColAreaFilter     = "Area Filter"
	ColPlace          = "Place"
	ColOrganizer      = "Organizer"
	ColIntroText      = "Intro text"
	ColTicketLink     = "Ticket link"
	ColTicketLinkText = "Ticket link button text"
	ColContent        = "Content"
)

// Normalise converts one export row into an event document.
//
// The slug comes from the explicit Slug column when present, otherwise from
// the slugified title; surrounding quote characters and whitespace are
// stripped either way. The document id re-slugifies the slug value, so an
// explicit slug containing characters the slugifier would strip still yields
// a slugifier-shaped id. Rows whose slugs differ only in those characters
// collide into the same document; that collapse is what keeps repeated
// imports idempotent.
//
// Optional attributes appear only when the source column has a non-empty
// trimmed value. Dates and URLs pass through untouched.
//
// Rows whose title and slug both normalize to nothing are rejected with
// domain.ErrDegenerateIdentity rather than given an invented id: identity
// must stay a pure function of row content.
func Normalise(rec domain.SourceRecord) (*domain.EventDocument, error) {
	slugValue := rec.Get(ColSlug)
	if slugValue == "" {
		slugValue = slug.Slugify(rec.Get(ColTitle))
	}
	slugValue = strings.TrimSpace(strings.Trim(slugValue, `"`))

	idToken := slug.Slugify(slugValue)
	if idToken == "" {
		return nil, fmt.Errorf("%w: title %q, slug %q",
			domain.ErrDegenerateIdentity, rec.Get(ColTitle), rec.Get(ColSlug))
	}

	doc := &domain.EventDocument{
		Type:      domain.DocumentType,
		ID:        domain.IDPrefix + idToken,
		Title:     rec.Get(ColTitle),
		Slug:      domain.NewSlug(slugValue),
		StartDate: rec.Get(ColStartDate),
		EndDate:   rec.Get(ColEndDate),

		ImageURL:       rec.Get(ColImage),
		ImageAlt:       rec.Get(ColImageAlt),
		Category:       rec.Get(ColThemeFilter),
		Areas:          parseAreas(rec.Get(ColAreaFilter)),
		Location:       rec.Get(ColPlace),
		Organizer:      rec.Get(ColOrganizer),
		IntroText:      rec.Get(ColIntroText),
		TicketLink:     rec.Get(ColTicketLink),
		TicketLinkText: rec.Get(ColTicketLinkText),
		HTMLContent:    rec.Get(ColContent),
	}

	return doc, nil
}

// parseAreas splits a comma-separated filter value into trimmed parts,
// discarding empties and preserving order.
func parseAreas(value string) []string {
	if value == "" {
		return nil
	}

	var areas []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			areas = append(areas, trimmed)
		}
	}
	return areas
}
