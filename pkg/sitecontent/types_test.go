package sitecontent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/secretspot/site-content/pkg/sitecontent"
)

func TestValidSlotKey(t *testing.T) {
	tests := []struct {
		key   string
		valid bool
	}{
		{"servicio_1", true},
		{"about_img", true},
		{"staff_6", true},
		{"staff_7", false},
		{"not_a_real_slot", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.valid, sitecontent.ValidSlotKey(tt.key))
		})
	}
}

func TestValidCategory(t *testing.T) {
	tests := []struct {
		category string
		valid    bool
	}{
		{"damas", true},
		{"caballeros", true},
		{"ninos", true},
		{"manicura", true},
		{"pedicura", true},
		{"invalid_category", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.valid, sitecontent.ValidCategory(tt.category))
		})
	}
}

func TestDefaultDocument(t *testing.T) {
	doc := sitecontent.DefaultDocument()

	assert.Nil(t, doc.HeroVideo)
	assert.Len(t, doc.Slots, len(sitecontent.SlotKeys))
	assert.NotNil(t, doc.Gallery)
	assert.Empty(t, doc.Gallery)
}

func TestMergeDefaultsIdempotent(t *testing.T) {
	url := "/uploads/a.jpg"
	doc := &sitecontent.ContentDocument{
		Slots: map[string]*string{"about_img": &url, "bogus": &url},
	}

	doc.MergeDefaults()
	first := doc.Clone()

	doc.MergeDefaults()
	assert.Equal(t, first, doc)

	assert.Len(t, doc.Slots, len(sitecontent.SlotKeys))
	_, hasBogus := doc.Slots["bogus"]
	assert.False(t, hasBogus)
	assert.NotNil(t, doc.Gallery)
}

func TestCloneIsDeep(t *testing.T) {
	hero := "https://cdn/x.mp4"
	doc := sitecontent.DefaultDocument()
	doc.HeroVideo = &hero
	doc.Gallery = append(doc.Gallery, sitecontent.GalleryItem{ID: "a"})

	clone := doc.Clone()
	*clone.HeroVideo = "changed"
	clone.Gallery[0].ID = "b"

	assert.Equal(t, "https://cdn/x.mp4", *doc.HeroVideo)
	assert.Equal(t, "a", doc.Gallery[0].ID)
}
