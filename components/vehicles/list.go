package vehicles

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strings"
	"sync"
)

//go:embed data/vehicles.txt
var dataFS embed.FS

const defaultListPath = "data/vehicles.txt"

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Table maps vehicle makes to their models. Makes and models keep the order
// in which they first appeared in the source list.
type Table struct {
	makes  []string
	models map[string][]string
}

// DefaultTable returns the embedded reference table, loaded once.
func DefaultTable() (*Table, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultListPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		table, err := LoadTable(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultTable = table
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return defaultTable, nil
}

// LoadTable reads Make|Model lines. Blank lines and lines starting with #
// are skipped, and repeated entries keep their first position. Make names
// are matched without regard to case, so the first spelling seen is kept.
func LoadTable(r io.Reader) (*Table, error) {
	if r == nil {
		return nil, fmt.Errorf("vehicles: missing reader")
	}

	table := &Table{models: map[string][]string{}}
	seen := map[string]struct{}{}
	names := map[string]string{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		makeName, model, ok := strings.Cut(line, "|")
		makeName = strings.TrimSpace(makeName)
		model = strings.TrimSpace(model)
		if !ok || makeName == "" || model == "" {
			return nil, fmt.Errorf("vehicles: line %d: expected Make|Model, got %q", lineNo, line)
		}

		key := strings.ToLower(makeName)
		if _, known := names[key]; !known {
			names[key] = makeName
			table.makes = append(table.makes, makeName)
		}

		entry := key + "|" + strings.ToLower(model)
		if _, dup := seen[entry]; dup {
			continue
		}
		seen[entry] = struct{}{}
		table.models[key] = append(table.models[key], model)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

// Makes returns every make in table order.
func (t *Table) Makes() []string {
	if t == nil {
		return nil
	}
	return append([]string{}, t.makes...)
}

// Models returns the models of makeName, matched ignoring case. Unknown
// makes return nil.
func (t *Table) Models(makeName string) []string {
	if t == nil {
		return nil
	}
	models, ok := t.models[strings.ToLower(strings.TrimSpace(makeName))]
	if !ok {
		return nil
	}
	return append([]string{}, models...)
}

// HasMake reports whether makeName is in the table.
func (t *Table) HasMake(makeName string) bool {
	if t == nil {
		return false
	}
	_, ok := t.models[strings.ToLower(strings.TrimSpace(makeName))]
	return ok
}
