package domain

// DocumentType is the fixed type tag for event documents in the store.
const DocumentType = "event"

// IDPrefix prefixes every imported document identifier. The remainder of
// the identifier is derived from the slug, so the same logical event always
// maps to the same document across repeated imports.
const IDPrefix = "imported-"

// Slug is the URL-safe identifier object stored on an event.
type Slug struct {
	Type    string `json:"_type"`
	Current string `json:"current"`
}

// NewSlug creates a slug object with the store's fixed type tag.
func NewSlug(current string) Slug {
	return Slug{Type: "slug", Current: current}
}

// EventDocument is the normalized event persisted to the content store.
//
// Title, Slug, StartDate and EndDate are always present, even when empty.
// Every other attribute is omitted from the wire form when empty so that a
// re-import does not write null or empty values into existing documents;
// an upsert replaces the full document, so an attribute absent here is an
// attribute absent in the store.
//
// ImageURL is transient: the media migration replaces it with Image and
// unsets it in the same patch.
type EventDocument struct {
	Type      string `json:"_type"`
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Slug      Slug   `json:"slug"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	ImageURL       string   `json:"imageUrl,omitempty"`
	ImageAlt       string   `json:"imageAlt,omitempty"`
	Category       string   `json:"category,omitempty"`
	Areas          []string `json:"areas,omitempty"`
	Location       string   `json:"location,omitempty"`
	Organizer      string   `json:"organizer,omitempty"`
	IntroText      string   `json:"introText,omitempty"`
	TicketLink     string   `json:"ticketLink,omitempty"`
	TicketLinkText string   `json:"ticketLinkText,omitempty"`
	HTMLContent    string   `json:"htmlContent,omitempty"`
}

// AssetReference points an image field at an uploaded asset document.
type AssetReference struct {
	Type string `json:"_type"`
	Ref  string `json:"_ref"`
}

// Image is the event-side pointer to an uploaded image asset. It replaces
// the transient ImageURL attribute once migration succeeds.
type Image struct {
	Type  string         `json:"_type"`
	Asset AssetReference `json:"asset"`
	Alt   string         `json:"alt"`
}

// NewImage creates an image value referencing an uploaded asset.
func NewImage(assetID, alt string) Image {
	return Image{
		Type:  "image",
		Asset: AssetReference{Type: "reference", Ref: assetID},
		Alt:   alt,
	}
}
