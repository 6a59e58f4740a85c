package dataset

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"product-categories/internal/category"
	"product-categories/internal/product"
	"product-categories/internal/user"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

// catalogFile is the top-level structure of a dataset YAML document.
type catalogFile struct {
	Users      []user.User         `yaml:"users"`
	Categories []category.Category `yaml:"categories"`
	Products   []product.Product   `yaml:"products"`
}

var (
	embeddedOnce sync.Once
	embeddedDS   *Dataset
	embeddedErr  error
)

// Embedded returns the dataset bundled into the binary. It is parsed once.
func Embedded() (*Dataset, error) {
	embeddedOnce.Do(func() {
		embeddedDS, embeddedErr = FromYAML(embeddedCatalog)
		if embeddedErr != nil {
			embeddedErr = fmt.Errorf("embedded dataset: %w", embeddedErr)
		}
	})
	return embeddedDS, embeddedErr
}

// FromYAML parses and validates a dataset document.
func FromYAML(data []byte) (*Dataset, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("dataset: parse yaml: %w", err)
	}
	return New(f.Users, f.Categories, f.Products)
}

// LoadFile reads a dataset document from disk.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	ds, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}
