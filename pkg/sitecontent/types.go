package sitecontent

import "io"

// SlotKeys is the closed set of named image slots. It is fixed at compile
// time; documents only ever change slot values, never the key set.
var SlotKeys = []string{
	"servicio_1",
	"servicio_2",
	"servicio_3",
	"servicio_4",
	"about_img",
	"team_group",
	"staff_1",
	"staff_2",
	"staff_3",
	"staff_4",
	"staff_5",
	"staff_6",
}

// GalleryCategory tags a gallery image with the section it belongs to.
type GalleryCategory string

const (
	CategoryDamas      GalleryCategory = "damas"
	CategoryCaballeros GalleryCategory = "caballeros"
	CategoryNinos      GalleryCategory = "ninos"
	CategoryManicura   GalleryCategory = "manicura"
	CategoryPedicura   GalleryCategory = "pedicura"
)

// GalleryCategories lists every valid category.
var GalleryCategories = []GalleryCategory{
	CategoryDamas,
	CategoryCaballeros,
	CategoryNinos,
	CategoryManicura,
	CategoryPedicura,
}

// ValidSlotKey reports whether key is a member of the fixed slot set.
func ValidSlotKey(key string) bool {
	for _, k := range SlotKeys {
		if k == key {
			return true
		}
	}
	return false
}

// ValidCategory reports whether category is one of the closed gallery categories.
func ValidCategory(category string) bool {
	for _, c := range GalleryCategories {
		if string(c) == category {
			return true
		}
	}
	return false
}

// GalleryItem is one tagged photo in the gallery. MediaRef is the opaque
// backend reference used only for deletion; it is serialized as public_id
// for compatibility with existing panel frontends but is never accepted as
// a lookup key from clients.
type GalleryItem struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	MediaRef string `json:"public_id"`
	Category string `json:"category"`
}

// ContentDocument is the single aggregate record holding all editable site
// content. It is always read and written as a whole.
type ContentDocument struct {
	HeroVideo *string            `json:"heroVideo"`
	Slots     map[string]*string `json:"slots"`
	Gallery   []GalleryItem      `json:"gallery"`
}

// DefaultDocument returns a fresh document: no hero video, every slot
// present and unset, empty gallery.
func DefaultDocument() *ContentDocument {
	slots := make(map[string]*string, len(SlotKeys))
	for _, k := range SlotKeys {
		slots[k] = nil
	}
	return &ContentDocument{
		Slots:   slots,
		Gallery: []GalleryItem{},
	}
}

// MergeDefaults repairs a loaded document in place so it satisfies the
// document invariants: the slot map holds exactly the fixed key set
// (missing keys backfilled with nil, unknown keys dropped) and the gallery
// is non-nil. Applying it to a well-formed document is a no-op.
func (d *ContentDocument) MergeDefaults() {
	slots := make(map[string]*string, len(SlotKeys))
	for _, k := range SlotKeys {
		slots[k] = d.Slots[k]
	}
	d.Slots = slots

	if d.Gallery == nil {
		d.Gallery = []GalleryItem{}
	}
}

// Clone returns a deep copy of the document.
func (d *ContentDocument) Clone() *ContentDocument {
	out := &ContentDocument{
		Slots:   make(map[string]*string, len(d.Slots)),
		Gallery: make([]GalleryItem, len(d.Gallery)),
	}
	if d.HeroVideo != nil {
		v := *d.HeroVideo
		out.HeroVideo = &v
	}
	for k, v := range d.Slots {
		if v != nil {
			u := *v
			out.Slots[k] = &u
		} else {
			out.Slots[k] = nil
		}
	}
	copy(out.Gallery, d.Gallery)
	return out
}

// UploadInput carries one incoming file payload.
type UploadInput struct {
	FileName string
	Reader   io.Reader
}
