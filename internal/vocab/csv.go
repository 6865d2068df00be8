package vocab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultPath is where the game looks for a vocabulary override.
const DefaultPath = "vocab.csv"

// ErrBadHeader is returned when the CSV header lacks a korean or english column.
var ErrBadHeader = errors.New("vocab: header must contain korean and english columns")

// RowError describes a CSV row that was skipped.
type RowError struct {
	Line   int
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Parse reads pairs from CSV data. The first row is a header naming the
// korean and english columns in any order; other columns are ignored.
// Malformed rows are skipped and reported as RowErrors.
func Parse(r io.Reader) ([]Pair, []RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("vocab: cannot read header: %w", err)
	}

	koreanCol, englishCol := -1, -1
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		switch name {
		case "korean":
			koreanCol = i
		case "english":
			englishCol = i
		}
	}
	if koreanCol < 0 || englishCol < 0 {
		return nil, nil, ErrBadHeader
	}

	var (
		pairs    []Pair
		warnings []RowError
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				warnings = append(warnings, RowError{Line: parseErr.Line, Reason: parseErr.Err.Error()})
				continue
			}
			return pairs, warnings, fmt.Errorf("vocab: cannot read row: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if koreanCol >= len(record) || englishCol >= len(record) {
			warnings = append(warnings, RowError{Line: line, Reason: "missing column"})
			continue
		}

		p := Pair{
			Korean:  strings.TrimSpace(record[koreanCol]),
			English: strings.TrimSpace(record[englishCol]),
		}
		if p.Korean == "" || p.English == "" {
			warnings = append(warnings, RowError{Line: line, Reason: "empty value"})
			continue
		}
		pairs = append(pairs, p)
	}

	return Dedupe(pairs), warnings, nil
}

// LoadFile parses the CSV file at path.
// A missing file yields an error wrapping os.ErrNotExist.
func LoadFile(path string) ([]Pair, []RowError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("vocab: cannot open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Load returns the vocabulary to play with. Pairs from the CSV at path are
// used when the file exists and yields at least one pair; otherwise the
// bundled list is returned. Problems are logged, never returned.
func Load(path string, logger *log.Logger) []Pair {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if path == "" {
		path = DefaultPath
	}

	pairs, warnings, err := LoadFile(path)
	for _, w := range warnings {
		logger.Warn("skipping vocabulary row", "path", path, "line", w.Line, "reason", w.Reason)
	}

	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Debug("no vocabulary file, using bundled words", "path", path)
		return Dedupe(Builtin())
	case err != nil:
		logger.Warn("cannot load vocabulary, using bundled words", "path", path, "error", err)
		return Dedupe(Builtin())
	case len(pairs) == 0:
		logger.Warn("vocabulary file has no usable rows, using bundled words", "path", path)
		return Dedupe(Builtin())
	}

	logger.Info("loaded vocabulary", "path", path, "pairs", len(pairs))
	return pairs
}
