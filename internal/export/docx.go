package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fumiama/go-docx"

	"produceotron/internal/inventory"
)

// InventoryDocFileName is the fixed download name for the inventory document.
const InventoryDocFileName = "items in folders list.docx"

// WriteInventoryDoc renders the scanned inventory as a word-processor
// document: a timestamped heading followed by the nested outline, one
// paragraph per entry indented by nesting level.
func WriteInventoryDoc(w io.Writer, items []inventory.Item, now time.Time) error {
	doc := docx.New().WithDefaultTheme()

	title := doc.AddParagraph()
	title.AddText(fmt.Sprintf("Folder Scan Report - %s", now.Format("2006-01-02 15:04:05"))).Size("28")

	for _, it := range items {
		p := doc.AddParagraph()
		indent := strings.Repeat("    ", it.Level)
		if it.IsDir {
			p.AddText(indent + "[" + it.Name + "]").Size("22")
		} else {
			p.AddText(indent + "• " + it.Name).Size("22")
		}
	}

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}
