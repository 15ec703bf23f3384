package card

import "github.com/google/uuid"

// Card represents one checklist entry in a set. Optional fields are omitted
// from the serialized document when absent; downstream consumers rely on the
// keys not being present rather than being null or zero.
type Card struct {
	UniqueID   string     `json:"uniqueId"`
	Number     string     `json:"number"`
	Name       string     `json:"name"`
	NumberedTo int        `json:"numberedTo,omitempty"`
	Attributes []string   `json:"attributes,omitempty"`
	Parallels  []Parallel `json:"parallels,omitempty"`
	Note       string     `json:"note,omitempty"`
}

// Parallel is a rarity or styling variant of a checklist. Attached at the set
// level it applies to every card in the set; attached at the card level it
// applies to that card only.
type Parallel struct {
	Name       string `json:"name"`
	NumberedTo int    `json:"numberedTo,omitempty"`
}

// NewID mints a unique identifier for a document entity.
func NewID() string {
	return uuid.NewString()
}
