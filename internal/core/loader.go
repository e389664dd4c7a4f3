package core

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/inovacc/afscreen/internal/model"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// TargetLoader reads target sequences from a CSV whose header names the
// columns holding the target names and sequences.
type TargetLoader struct {
	NameColumn     string
	SequenceColumn string

	// Logger receives one debug record per skipped row. Nil discards them.
	Logger *slog.Logger
}

// SkippedRow records a data row that produced no target.
type SkippedRow struct {
	Row    int
	Reason SkipReason
}

// LoadResult is the outcome of a successful load.
type LoadResult struct {
	Targets []model.SequenceEntry
	Skipped []SkippedRow
	Rows    int
}

// SkippedRows returns the row indices of Skipped.
func (r *LoadResult) SkippedRows() []int {
	rows := make([]int, 0, len(r.Skipped))
	for _, s := range r.Skipped {
		rows = append(rows, s.Row)
	}
	return rows
}

// NewTargetLoader creates a loader for the given columns.
func NewTargetLoader(nameColumn, sequenceColumn string, logger *slog.Logger) *TargetLoader {
	return &TargetLoader{
		NameColumn:     nameColumn,
		SequenceColumn: sequenceColumn,
		Logger:         logger,
	}
}

// LoadFile opens path and loads targets from it.
func (l *TargetLoader) LoadFile(path string) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return l.Load(f)
}

// Load reads UTF-8 CSV from r; a leading byte-order mark is discarded.
// It returns a *SchemaError when the header is absent or lacks a required
// column, and an *EmptyResultError when no row has a non-empty sequence.
// Rows with an empty sequence are skipped, not fatal.
func (l *TargetLoader) Load(r io.Reader) (*LoadResult, error) {
	logger := l.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	br := bufio.NewReader(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))

	// The csv reader skips blank lines, so an empty first line would let the
	// next line pass as the header.
	if first, _ := br.Peek(2); bytes.HasPrefix(first, []byte("\n")) || bytes.Equal(first, []byte("\r\n")) {
		return nil, &SchemaError{Missing: l.required()}
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &SchemaError{Missing: l.required()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	nameIdx, seqIdx, err := l.columns(header)
	if err != nil {
		return nil, err
	}

	result := &LoadResult{}

	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", row, err)
		}

		result.Rows = row

		sequence := NormalizeSequence(cell(record, seqIdx))
		if sequence == "" {
			logger.Debug("skipping row", "row", row, "reason", SkipReasonEmptySequence.String())
			result.Skipped = append(result.Skipped, SkippedRow{Row: row, Reason: SkipReasonEmptySequence})

			continue
		}

		name := strings.TrimSpace(cell(record, nameIdx))
		if name == "" {
			name = fmt.Sprintf("Entry%d", row)
		}

		result.Targets = append(result.Targets, model.NewSequenceEntry(name, sequence))
	}

	if len(result.Targets) == 0 {
		return nil, &EmptyResultError{Rows: result.Rows, Skipped: len(result.Skipped)}
	}

	return result, nil
}

func (l *TargetLoader) required() []string {
	return []string{l.NameColumn, l.SequenceColumn}
}

// columns resolves the required column positions. Duplicate header names
// resolve to their last occurrence.
func (l *TargetLoader) columns(header []string) (int, int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[h] = i
	}

	var missing []string

	for _, col := range l.required() {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return 0, 0, &SchemaError{Missing: missing, Available: header}
	}

	return index[l.NameColumn], index[l.SequenceColumn], nil
}

func cell(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}
