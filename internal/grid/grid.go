// Package grid reads integer grids from YAML or JSON files:
//
//	rows:
//	  - [1, 2, 3]
//	  - [4, 5, 6]
package grid

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

var (
	ErrEmptyGrid     = errors.New("grid has no rows")
	ErrUnknownFormat = errors.New("unknown grid file format")
)

// File is the on-disk layout of a grid.
type File struct {
	Rows [][]int `yaml:"rows" json:"rows"`
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads the grid stored at path.
func Load(path string) ([][]int, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid: %w", err)
	}

	rows, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// Decode parses a grid in the given format. Rows may have different lengths,
// but at least one row is required.
func Decode(data []byte, format string) ([][]int, error) {
	var f File
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to decode yaml grid: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to decode json grid: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if len(f.Rows) == 0 {
		return nil, ErrEmptyGrid
	}
	return f.Rows, nil
}

// Square returns the n×n grid holding 1 to n*n in row-major order.
func Square(n int) [][]int {
	rows := make([][]int, 0, n)
	for i := range n {
		row := make([]int, 0, n)
		for j := range n {
			row = append(row, i*n+j+1)
		}
		rows = append(rows, row)
	}
	return rows
}
