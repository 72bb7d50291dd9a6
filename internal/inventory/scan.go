package inventory

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Item is one entry of a directory inventory, ordered by path.
type Item struct {
	Name  string
	Level int
	IsDir bool
	Path  string
}

// Options control filename cleanup during a scan.
type Options struct {
	// FullNames disables prefix stripping entirely.
	FullNames bool
	// KeepUnderscores leaves underscores in place instead of spacing them.
	KeepUnderscores bool
	// StripPrefixes are substrings removed from file names unless FullNames
	// is set. Empty means DefaultStripPrefixes.
	StripPrefixes []string
}

// DefaultStripPrefixes are the noise fragments removed from asset file names.
var DefaultStripPrefixes = []string{
	"SFX_AMB_", "SFX_AMB_EP", "EP_", "HH_", "SFX_MG_",
	"SFX_INT_", "SFX_IT_", "SFX_SHOP_", "TT_",
}

// CleanName applies the configured cleanup rules to a file name.
func CleanName(name string, opts Options) string {
	cleaned := name
	if !opts.FullNames {
		prefixes := opts.StripPrefixes
		if len(prefixes) == 0 {
			prefixes = DefaultStripPrefixes
		}
		for _, p := range prefixes {
			cleaned = strings.ReplaceAll(cleaned, p, "")
		}
	}
	if !opts.KeepUnderscores {
		cleaned = strings.ReplaceAll(cleaned, "_", " ")
	}
	return cleaned
}

// Scan walks root and returns its entries as a path-sorted nested inventory.
// Directory names are kept verbatim; file names pass through CleanName.
// The root itself is not listed.
func Scan(root string, opts Options) ([]Item, error) {
	var items []Item
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		level := strings.Count(rel, "/")
		name := d.Name()
		if !d.IsDir() {
			name = CleanName(name, opts)
		}
		items = append(items, Item{Name: name, Level: level, IsDir: d.IsDir(), Path: rel})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return items, nil
}

// RenderOutline formats the inventory as an indented text outline, the same
// shape the document export uses.
func RenderOutline(items []Item) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(strings.Repeat("  ", it.Level))
		if it.IsDir {
			b.WriteString("[" + it.Name + "]")
		} else {
			b.WriteString("• " + it.Name)
		}
		b.WriteString("\n")
	}
	return b.String()
}
