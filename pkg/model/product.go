package model

// Product is one tariff offering from the Octopus product listing.
// Only the identifying fields are kept; everything else in the payload is dropped.
type Product struct {
	Code        string `json:"code"`         // e.g. "AGILE-FLEX-22-11-25"
	DisplayName string `json:"display_name"` // e.g. "Agile Octopus"
	Brand       string `json:"brand"`        // e.g. "OCTOPUS_ENERGY"
}

// Catalog is the ordered product list returned by one call to /v1/products/.
type Catalog struct {
	Products []Product `json:"results"`
}

// Len returns the number of products in the catalog.
func (c Catalog) Len() int {
	return len(c.Products)
}
