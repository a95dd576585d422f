package catalog

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// CSVLoader loads the catalog from a delimited text file. Exported food
// composition tables are frequently Shift-JIS; the loader detects the
// encoding and transcodes before parsing.
type CSVLoader struct {
	Path string
}

// NewCSVLoader returns a loader reading from the given path on every Load.
func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{Path: path}
}

// Load reads and parses the file.
func (l *CSVLoader) Load(ctx context.Context) ([]Food, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", l.Path, err)
	}
	return parseCSV(data, l.Path)
}

func parseCSV(data []byte, origin string) ([]Food, error) {
	text, err := decodeToUTF8(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", origin, err)
	}

	r := csv.NewReader(bytes.NewReader(text))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", origin, err)
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", origin, err)
		}
		rows = append(rows, row)
	}

	return parseRows(header, rows, origin)
}

// decodeToUTF8 returns the input as UTF-8 bytes. A UTF-8 BOM is stripped;
// content that is not valid UTF-8 is decoded as Shift-JIS.
func decodeToUTF8(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		return data[3:], nil
	}
	if utf8.Valid(data) {
		return data, nil
	}
	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("decode shift-jis: %w", err)
	}
	return decoded, nil
}
