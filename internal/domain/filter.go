package domain

import "fmt"

// FilterLabel is one entry of the header filter menu. It has no effect on the catalog.
type FilterLabel string

const (
	FilterPeeKay08   FilterLabel = "PEE_KAY08"
	FilterStore      FilterLabel = "Store"
	FilterLocations  FilterLabel = "Locations"
	FilterBlog       FilterLabel = "Blog"
	FilterJewelry    FilterLabel = "Jewelry"
	FilterElectronic FilterLabel = "Electronic"
	FilterClothing   FilterLabel = "Clothing"
)

// DefaultFilter is active on startup
const DefaultFilter = FilterPeeKay08

// FilterLabels lists the menu entries in display order
var FilterLabels = []FilterLabel{
	FilterPeeKay08,
	FilterStore,
	FilterLocations,
	FilterBlog,
	FilterJewelry,
	FilterElectronic,
	FilterClothing,
}

// ParseFilterLabel validates s against the fixed filter set
func ParseFilterLabel(s string) (FilterLabel, error) {
	for _, label := range FilterLabels {
		if string(label) == s {
			return label, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

// FilterState is the cosmetic menu state: the active label and whether the menu is open
type FilterState struct {
	Active   FilterLabel `json:"active"`
	MenuOpen bool        `json:"menuOpen"`
}
