package catalog

import "github.com/Checker-Finance/octopus-adapter/pkg/model"

const (
	BrandOctopusEnergy = "OCTOPUS_ENERGY"
	AgileDisplayName   = "Agile Octopus"
)

// Predicate reports whether a product should be selected.
type Predicate func(model.Product) bool

// Match returns a predicate that matches on brand and display name exactly.
func Match(brand, displayName string) Predicate {
	return func(p model.Product) bool {
		return p.Brand == brand && p.DisplayName == displayName
	}
}

// AgileOctopus selects the Agile Octopus tariff sold under the Octopus Energy brand.
var AgileOctopus = Match(BrandOctopusEnergy, AgileDisplayName)

// Filter returns the products matching pred, in catalog order.
func Filter(c model.Catalog, pred Predicate) []model.Product {
	var out []model.Product
	for _, p := range c.Products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// SelectFrom returns the single product in c matching pred.
// Zero or several matches yield a *NotExactlyOneError.
func SelectFrom(c model.Catalog, pred Predicate) (model.Product, error) {
	if pred == nil {
		return model.Product{}, ErrNilPredicate
	}
	matches := Filter(c, pred)
	if len(matches) != 1 {
		return model.Product{}, &NotExactlyOneError{Found: len(matches)}
	}
	return matches[0], nil
}

// Select decodes raw and returns the single product matching pred.
func Select(raw string, pred Predicate) (model.Product, error) {
	if pred == nil {
		return model.Product{}, ErrNilPredicate
	}
	c, err := Decode(raw)
	if err != nil {
		return model.Product{}, err
	}
	return SelectFrom(c, pred)
}
