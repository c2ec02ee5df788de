package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromPathMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	svc := &configService{}

	cfg, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err, "Missing file should fall back to defaults")

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, DefaultNoteMaxLength, cfg.Note.MaxLength)
	assert.NotEmpty(t, cfg.Items, "Default config should ship a sample catalog")
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()
	svc := &configService{}
	path := filepath.Join(t.TempDir(), "focusdeck", "config.toml")

	cfg := &Config{
		Version: 1,
		Title:   "team offsite",
		Items: []ItemConfig{
			{ID: "room-a", Label: "Room A", Category: "Space"},
			{ID: "beamer", Label: "Beamer", Category: "Equipment", Detail: "HDMI only"},
		},
		Selected: []string{"room-a"},
		Note:     NoteSettings{MaxLength: 140, Text: "window side please"},
		UISettings: UISettings{
			ShowCategories: true,
			AutosaveOnExit: true,
		},
	}

	require.NoError(t, svc.SaveToPath(cfg, path), "Save should create directories as needed")

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromPathRejectsBadTOML(t *testing.T) {
	t.Parallel()
	svc := &configService{}
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("items = not toml"), 0644))

	_, err := svc.LoadFromPath(path)
	assert.Error(t, err, "Malformed TOML should surface a parse error")
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Parallel()
	svc := &configService{}
	path := filepath.Join(t.TempDir(), "sparse.toml")

	data := []byte(`
version = 1

[[items]]
id = "quiet-room"
label = "Quiet room"
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultNoteMaxLength, cfg.Note.MaxLength, "Missing note settings should pick up the default limit")
	assert.Equal(t, "focusdeck", cfg.Title)
}

func TestCatalogConversion(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Items: []ItemConfig{
			{ID: "a", Label: "A", Category: "X"},
			{ID: "b", Label: "B", Category: "Y"},
			{ID: "c", Label: "C", Category: "X"},
		},
	}

	catalog := cfg.Catalog()
	assert.Equal(t, []string{"a", "b", "c"}, catalog.IDs())
	assert.Equal(t, []string{"X", "Y"}, catalog.Categories())
}
