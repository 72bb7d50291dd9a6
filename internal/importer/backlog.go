package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"produceotron/internal/domain"
)

// ErrNoWorksheet indicates the uploaded workbook contains no sheets.
var ErrNoWorksheet = errors.New("no worksheet found in file")

// Header aliases recognized for the task-name and effort columns,
// matched case-insensitively after trimming.
var (
	taskAliases   = map[string]bool{"item name": true, "task": true, "description": true, "item": true}
	effortAliases = map[string]bool{"estimated days": true, "effort": true, "days": true, "estimated effort": true}
)

// ImportBacklog parses an .xlsx backlog from r into a normalized item list.
// The header row is scanned for known column aliases, defaulting to columns
// 1 and 2. Rows with an empty task or non-positive effort are dropped
// silently; an empty result is not an error, the caller is expected to warn.
func ImportBacklog(r io.Reader) ([]domain.BacklogItem, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("reading workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoWorksheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading worksheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	taskCol, effortCol := resolveColumns(rows[0])

	var items []domain.BacklogItem
	for _, row := range rows[1:] {
		task := cellAt(row, taskCol)
		effort := parseEffort(cellAt(row, effortCol))
		item := domain.BacklogItem{Task: strings.TrimSpace(task), Effort: effort}
		if item.Validate() != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// resolveColumns scans the header row for alias matches. Unmatched columns
// keep the defaults: task in column 1, effort in column 2.
func resolveColumns(header []string) (taskCol, effortCol int) {
	taskCol, effortCol = 0, 1
	for i, cell := range header {
		val := strings.ToLower(strings.TrimSpace(cell))
		if taskAliases[val] {
			taskCol = i
		}
		if effortAliases[val] {
			effortCol = i
		}
	}
	return taskCol, effortCol
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// parseEffort reads an effort cell. Unparseable text reads as zero, which the
// row filter then drops.
func parseEffort(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0
	}
	return v
}
