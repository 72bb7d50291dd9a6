package inventory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]bool) {
	t.Helper()
	for path, isDir := range files {
		full := filepath.Join(root, path)
		if isDir {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"SFX_AMB_rain.wav", Options{}, "rain.wav"},
		{"EP_intro_scene.txt", Options{}, "intro scene.txt"},
		{"EP_intro_scene.txt", Options{FullNames: true}, "intro scene.txt"},
		{"EP_intro_scene.txt", Options{FullNames: true, KeepUnderscores: true}, "EP_intro_scene.txt"},
		{"HH_TT_combo.png", Options{KeepUnderscores: true}, "combo.png"},
		{"plain.txt", Options{}, "plain.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanName(tt.name, tt.opts))
		})
	}
}

func TestCleanName_CustomPrefixes(t *testing.T) {
	got := CleanName("RAW_take_1.wav", Options{StripPrefixes: []string{"RAW_"}})
	assert.Equal(t, "take 1.wav", got)
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]bool{
		"audio":                  true,
		"audio/SFX_AMB_wind.wav": false,
		"readme.txt":             false,
	})

	items, err := Scan(root, Options{})
	require.NoError(t, err)
	require.Len(t, items, 3)

	// WalkDir yields lexical order: audio/, audio/wind.wav, readme.txt.
	assert.Equal(t, Item{Name: "audio", Level: 0, IsDir: true, Path: "audio"}, items[0])
	assert.Equal(t, Item{Name: "wind.wav", Level: 1, IsDir: false, Path: "audio/SFX_AMB_wind.wav"}, items[1])
	assert.Equal(t, Item{Name: "readme.txt", Level: 0, IsDir: false, Path: "readme.txt"}, items[2])
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"), Options{})
	assert.Error(t, err)
}

func TestRenderOutline(t *testing.T) {
	out := RenderOutline([]Item{
		{Name: "audio", Level: 0, IsDir: true},
		{Name: "wind.wav", Level: 1},
		{Name: "readme.txt", Level: 0},
	})
	assert.Equal(t, "[audio]\n  • wind.wav\n• readme.txt\n", out)
}
