package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"produceotron/internal/inventory"
)

func TestWriteInventoryDoc(t *testing.T) {
	items := []inventory.Item{
		{Name: "audio", Level: 0, IsDir: true},
		{Name: "wind.wav", Level: 1},
	}

	var buf bytes.Buffer
	err := WriteInventoryDoc(&buf, items, time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	// A .docx file is a zip archive; check the magic and that content landed.
	data := buf.Bytes()
	require.Greater(t, len(data), 4)
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}

func TestWriteInventoryDoc_EmptyInventory(t *testing.T) {
	var buf bytes.Buffer
	err := WriteInventoryDoc(&buf, nil, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, buf.Bytes())
}

func TestInventoryDocFileName(t *testing.T) {
	assert.Equal(t, "items in folders list.docx", InventoryDocFileName)
}
