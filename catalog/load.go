package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"privateevents/services"
)

// Document is the shape of a catalog data file.
type Document struct {
	Menus          []services.Menu          `json:"menus"`
	BeverageAddons []services.BeverageAddon `json:"beverage_addons,omitempty"`
}

// Default returns the built-in raw catalog.
func Default() Document {
	return Document{Menus: DefaultMenus(), BeverageAddons: DefaultAddons()}
}

// Load decodes a catalog document. Unknown keys are ignored and item fields are
// decoded leniently; only malformed JSON fails.
func Load(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode catalog: %w", err)
	}
	return doc, nil
}

// LoadFile reads a catalog from path. An empty path returns the built-in catalog.
func LoadFile(path string) (Document, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return Document{}, fmt.Errorf("load %s: %w", path, err)
	}
	return doc, nil
}

// Priced returns a copy of doc with every derivable price filled in.
func Priced(doc Document, cfg services.PricingConfig) Document {
	return Document{
		Menus:          services.DerivePrices(doc.Menus, cfg),
		BeverageAddons: append([]services.BeverageAddon(nil), doc.BeverageAddons...),
	}
}
