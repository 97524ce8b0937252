package domain

// Mutation is one tagged operation in a store mutation batch.
// Exactly one of the fields is set.
//
// CreateOrReplace is a total replace: if the document id already exists its
// full content is replaced, never merged. Attributes the new document omits
// are dropped from the stored document. Patch applies Set and Unset together
// as a single atomic change to one document.
type Mutation struct {
	CreateOrReplace *EventDocument
	Patch           *Patch
}

// Patch sets and unsets attributes on an existing document in one operation.
type Patch struct {
	ID    string
	Set   map[string]any
	Unset []string
}

// MutateResult counts the per-operation outcomes of a successful batch.
type MutateResult struct {
	Created int
	Updated int
}

// ImageCandidate is the store's projection of an event that still holds
// an external image URL and is therefore eligible for media migration.
type ImageCandidate struct {
	ID       string `json:"_id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
}
