package eventrow

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventbyen/eventsync-cli/internal/core/domain"
)

func TestNormalise_DerivesSlugFromTitle(t *testing.T) {
	rec := domain.SourceRecord{
		"Title":      "Julemarked i Oslo",
		"Slug":       "",
		"Start date": "2024-12-01",
	}

	doc, err := Normalise(rec)

	require.NoError(t, err)
	assert.Equal(t, "imported-julemarked-i-oslo", doc.ID)
	assert.Equal(t, "julemarked-i-oslo", doc.Slug.Current)
	assert.Equal(t, "Julemarked i Oslo", doc.Title)
	assert.Equal(t, "2024-12-01", doc.StartDate)
	assert.Equal(t, "", doc.EndDate)
	assert.Equal(t, "event", doc.Type)
}

func TestNormalise_ExplicitSlugWins(t *testing.T) {
	rec := domain.SourceRecord{
		"Title": "Julemarked i Oslo",
		"Slug":  ` "jul-2024" `,
	}

	doc, err := Normalise(rec)

	require.NoError(t, err)
	assert.Equal(t, "jul-2024", doc.Slug.Current)
	assert.Equal(t, "imported-jul-2024", doc.ID)
}

func TestNormalise_IDReslugifiesExplicitSlug(t *testing.T) {
	// The id always has slugifier shape, even when the explicit slug does
	// not. Slugs differing only in stripped characters share an id.
	recA := domain.SourceRecord{"Title": "X", "Slug": "Jul & Vinter!"}
	recB := domain.SourceRecord{"Title": "Y", "Slug": "jul-vinter"}

	docA, err := Normalise(recA)
	require.NoError(t, err)
	docB, err := Normalise(recB)
	require.NoError(t, err)

	assert.Equal(t, "Jul & Vinter!", docA.Slug.Current)
	assert.Equal(t, "imported-jul-vinter", docA.ID)
	assert.Equal(t, docA.ID, docB.ID)
}

func TestNormalise_Deterministic(t *testing.T) {
	rec := domain.SourceRecord{
		"Title":       "Konsert på Grünerløkka",
		"Start date":  "2025-01-15",
		"End date":    "2025-01-16",
		"Area Filter": "Sentrum, Grünerløkka",
		"Content":     "<p>Alt om konserten</p>",
	}

	first, err := Normalise(rec)
	require.NoError(t, err)
	second, err := Normalise(rec)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNormalise_OptionalAttributesOmittedWhenEmpty(t *testing.T) {
	rec := domain.SourceRecord{
		"Title":        "Minimal",
		"Slug":         "",
		"Start date":   "2025-03-01",
		"End date":     "",
		"Image":        "   ",
		"Theme Filter": "",
	}

	doc, err := Normalise(rec)
	require.NoError(t, err)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(raw, &wire))

	// Exactly the required attributes plus the type and id tags.
	assert.ElementsMatch(t,
		[]string{"_type", "_id", "title", "slug", "startDate", "endDate"},
		keysOf(wire))
	assert.Equal(t, "", wire["endDate"])
}

func TestNormalise_AllOptionalAttributes(t *testing.T) {
	rec := domain.SourceRecord{
		"Title":                   "Full pakke",
		"Slug":                    "full-pakke",
		"Start date":              "2025-06-01",
		"End date":                "2025-06-03",
		"Image":                   "https://cdn.example.com/bilde.jpg",
		"Image:alt":               "Et bilde",
		"Theme Filter":            "Musikk",
		"Area Filter":             "Sentrum",
		"Place":                   "Rådhusplassen",
		"Organizer":               "Oslo kommune",
		"Intro text":              "Kom og se!",
		"Ticket link":             "https://billetter.example.com",
		"Ticket link button text": "Kjøp billett",
		"Content":                 "<p>Mer info</p>",
	}

	doc, err := Normalise(rec)
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/bilde.jpg", doc.ImageURL)
	assert.Equal(t, "Et bilde", doc.ImageAlt)
	assert.Equal(t, "Musikk", doc.Category)
	assert.Equal(t, []string{"Sentrum"}, doc.Areas)
	assert.Equal(t, "Rådhusplassen", doc.Location)
	assert.Equal(t, "Oslo kommune", doc.Organizer)
	assert.Equal(t, "Kom og se!", doc.IntroText)
	assert.Equal(t, "https://billetter.example.com", doc.TicketLink)
	assert.Equal(t, "Kjøp billett", doc.TicketLinkText)
	assert.Equal(t, "<p>Mer info</p>", doc.HTMLContent)
}

func TestNormalise_AreasSplitAndTrimmed(t *testing.T) {
	rec := domain.SourceRecord{
		"Title":       "Festival",
		"Area Filter": "Sentrum, Grünerløkka, ",
	}

	doc, err := Normalise(rec)

	require.NoError(t, err)
	assert.Equal(t, []string{"Sentrum", "Grünerløkka"}, doc.Areas)
}

func TestNormalise_MalformedValuesPassThrough(t *testing.T) {
	rec := domain.SourceRecord{
		"Title":      "Rar dato",
		"Start date": "neste fredag",
		"Image":      "ikke-en-url",
	}

	doc, err := Normalise(rec)

	require.NoError(t, err)
	assert.Equal(t, "neste fredag", doc.StartDate)
	assert.Equal(t, "ikke-en-url", doc.ImageURL)
}

func TestNormalise_DegenerateIdentity(t *testing.T) {
	tests := []struct {
		name string
		rec  domain.SourceRecord
	}{
		{"empty row", domain.SourceRecord{}},
		{"garbage title no slug", domain.SourceRecord{"Title": "!!!"}},
		{"garbage slug", domain.SourceRecord{"Title": "", "Slug": `"..."`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalise(tt.rec)
			assert.ErrorIs(t, err, domain.ErrDegenerateIdentity)
		})
	}
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
