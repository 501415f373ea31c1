package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/products.yaml
var dataFS embed.FS

const defaultCatalogPath = "data/products.yaml"

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

type catalogFile struct {
	Products []Product `json:"products" yaml:"products"`
}

// Default returns the catalog embedded in the package. It is parsed once and
// shared; Catalog values are read-only so sharing is safe.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultCatalogPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		defaultCatalog, defaultErr = Load(f)
	})
	return defaultCatalog, defaultErr
}

// Load parses a JSON or YAML catalog document of the form
// {"products": [...]}.
func Load(r io.Reader) (*Catalog, error) {
	if r == nil {
		return nil, fmt.Errorf("catalog: missing reader")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}
	doc, err := parseDocument(data)
	if err != nil {
		return nil, err
	}
	return New(doc.Products)
}

// LoadFS reads a catalog document from fsys.
func LoadFS(fsys fs.FS, path string) (*Catalog, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

func parseDocument(data []byte) (catalogFile, error) {
	var doc catalogFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return catalogFile{}, fmt.Errorf("catalog: document is empty")
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	doc = catalogFile{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return catalogFile{}, fmt.Errorf("catalog: parse: invalid JSON or YAML: %w", err)
	}
	return doc, nil
}
