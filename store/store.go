package store

import (
	"encoding/csv"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrBadTable indicates a Table whose rows disagree with the header width.
var ErrBadTable = errors.New("store: all rows must match the header width")

// Table is a minimal tabular container: one header row plus data rows,
// all strings. It is the unit of exchange for CSV files and for the
// pgdb bulk-import helpers.
type Table struct {
	Header []string
	Rows   [][]string
}

// validate checks every row matches the header width.
func (t Table) validate() error {
	for _, row := range t.Rows {
		if len(row) != len(t.Header) {
			return ErrBadTable
		}
	}
	return nil
}

// ensureParent creates the parent directories of path.
func ensureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: create %s: %w", dir, err)
	}
	return nil
}

// SaveJSON writes v to path as JSON, creating parent directories.
func SaveJSON(v any, path string) error {
	if err := ensureParent(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("store: encode json %s: %w", path, err)
	}
	return nil
}

// LoadJSON reads JSON from path into v.
func LoadJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("store: open %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("store: decode json %s: %w", path, err)
	}
	return nil
}

// SaveYAML writes v to path as YAML, creating parent directories.
func SaveYAML(v any, path string) error {
	if err := ensureParent(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: create %s: %w", path, err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("store: encode yaml %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("store: finish yaml %s: %w", path, err)
	}
	return nil
}

// LoadYAML reads YAML from path into v.
func LoadYAML(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("store: open %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("store: decode yaml %s: %w", path, err)
	}
	return nil
}

// SaveGob writes v to path in gob encoding, creating parent
// directories. Gob is the binary object format; load with a pointer to
// the same concrete type.
func SaveGob(v any, path string) error {
	if err := ensureParent(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: create %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(v); err != nil {
		return fmt.Errorf("store: encode gob %s: %w", path, err)
	}
	return nil
}

// LoadGob reads gob data from path into v.
func LoadGob(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("store: open %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("store: decode gob %s: %w", path, err)
	}
	return nil
}

// SaveCSV writes tbl to path with the given separator (use ',' for
// standard CSV), creating parent directories.
func SaveCSV(tbl Table, path string, sep rune) error {
	if err := tbl.validate(); err != nil {
		return err
	}
	if err := ensureParent(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = sep
	if err := w.Write(tbl.Header); err != nil {
		return fmt.Errorf("store: write csv %s: %w", path, err)
	}
	if err := w.WriteAll(tbl.Rows); err != nil {
		return fmt.Errorf("store: write csv %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("store: write csv %s: %w", path, err)
	}
	return nil
}

// LoadCSV reads a file written by SaveCSV: the first record becomes the
// header, the rest the rows.
func LoadCSV(path string, sep rune) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("store: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = sep
	records, err := r.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("store: read csv %s: %w", path, err)
	}
	if len(records) == 0 {
		return Table{}, nil
	}
	return Table{Header: records[0], Rows: records[1:]}, nil
}

// Save writes v to path, choosing the codec from the extension:
// .json, .yaml/.yml, or .csv (v must then be a Table). Any other
// extension is written as gob.
func Save(v any, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SaveJSON(v, path)
	case ".yaml", ".yml":
		return SaveYAML(v, path)
	case ".csv":
		tbl, ok := v.(Table)
		if !ok {
			return fmt.Errorf("store: save %s: csv requires a store.Table, got %T", path, v)
		}
		return SaveCSV(tbl, path, ',')
	default:
		return SaveGob(v, path)
	}
}
