package store_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secretspot/site-content/pkg/sitecontent"
	"github.com/secretspot/site-content/pkg/sitecontent/store"
)

func newTestStore(t *testing.T) (*store.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.json")
	s, err := store.New(path)
	require.NoError(t, err)
	return s, path
}

func TestLoadBootstrapsDefaults(t *testing.T) {
	s, path := newTestStore(t)

	doc, err := s.Load()
	require.NoError(t, err)

	assert.Nil(t, doc.HeroVideo)
	assert.Len(t, doc.Slots, len(sitecontent.SlotKeys))
	for _, k := range sitecontent.SlotKeys {
		v, ok := doc.Slots[k]
		assert.True(t, ok, "missing slot %s", k)
		assert.Nil(t, v)
	}
	assert.Empty(t, doc.Gallery)

	// Bootstrap persists the default document.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	doc, err := s.Load()
	require.NoError(t, err)

	hero := "https://cdn/x.mp4"
	about := "/uploads/abc_about.jpg"
	doc.HeroVideo = &hero
	doc.Slots["about_img"] = &about
	doc.Gallery = append(doc.Gallery, sitecontent.GalleryItem{
		ID:       "id-1",
		URL:      "/uploads/abc_one.jpg",
		MediaRef: "abc_one.jpg",
		Category: "damas",
	})

	require.NoError(t, s.Save(doc))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestLoadMergesMissingSlots(t *testing.T) {
	s, path := newTestStore(t)

	// A document written by an older deployment that knew fewer slots.
	partial := `{"heroVideo":"https://cdn/x.mp4","slots":{"about_img":"/uploads/a.jpg"}}`
	require.NoError(t, os.WriteFile(path, []byte(partial), 0644))

	doc, err := s.Load()
	require.NoError(t, err)

	assert.Len(t, doc.Slots, len(sitecontent.SlotKeys))
	require.NotNil(t, doc.Slots["about_img"])
	assert.Equal(t, "/uploads/a.jpg", *doc.Slots["about_img"])
	assert.Nil(t, doc.Slots["staff_6"])
	assert.NotNil(t, doc.Gallery)

	// Merge is idempotent: a second load yields the same document.
	again, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, doc, again)
}

func TestLoadDropsUnknownSlotKeys(t *testing.T) {
	s, path := newTestStore(t)

	raw := `{"heroVideo":null,"slots":{"about_img":null,"not_a_slot":"/uploads/x.jpg"},"gallery":[]}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	doc, err := s.Load()
	require.NoError(t, err)

	_, ok := doc.Slots["not_a_slot"]
	assert.False(t, ok)
	assert.Len(t, doc.Slots, len(sitecontent.SlotKeys))
}

func TestLoadCorruptFileDegradesToDefaults(t *testing.T) {
	s, path := newTestStore(t)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	doc, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, doc.HeroVideo)
	assert.Empty(t, doc.Gallery)

	// The corrupt file is not rewritten by a load.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(raw))
}

func TestSavedDocumentIsValidJSON(t *testing.T) {
	s, path := newTestStore(t)

	_, err := s.Load()
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "heroVideo")
	assert.Contains(t, decoded, "slots")
	assert.Contains(t, decoded, "gallery")
}

func TestUpdateSerializesConcurrentAppends(t *testing.T) {
	s, _ := newTestStore(t)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Update(func(doc *sitecontent.ContentDocument) error {
				doc.Gallery = append(doc.Gallery, sitecontent.GalleryItem{
					ID:       fmt.Sprintf("id-%d", i),
					URL:      fmt.Sprintf("/uploads/%d.jpg", i),
					MediaRef: fmt.Sprintf("%d.jpg", i),
					Category: "damas",
				})
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	doc, err := s.Load()
	require.NoError(t, err)
	require.Len(t, doc.Gallery, n)

	seen := make(map[string]bool, n)
	for _, item := range doc.Gallery {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
}

func TestUpdateErrorAbortsSave(t *testing.T) {
	s, _ := newTestStore(t)

	hero := "https://cdn/x.mp4"
	doc, err := s.Load()
	require.NoError(t, err)
	doc.HeroVideo = &hero
	require.NoError(t, s.Save(doc))

	_, err = s.Update(func(doc *sitecontent.ContentDocument) error {
		doc.HeroVideo = nil
		return fmt.Errorf("boom")
	})
	require.Error(t, err)

	got, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, got.HeroVideo)
	assert.Equal(t, hero, *got.HeroVideo)
}

func TestNewRequiresPath(t *testing.T) {
	_, err := store.New("")
	assert.Error(t, err)
}
