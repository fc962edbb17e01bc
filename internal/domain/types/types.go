// Package types contains common types used across the application
package types

import (
	"fmt"
	"strings"
)

// Product identifies an assessment product.
type Product string

// Supported assessment products.
const (
	ProductSimple  Product = "simple"
	ProductPremium Product = "premium"
)

// Products lists every supported product in presentation order.
func Products() []Product {
	return []Product{ProductSimple, ProductPremium}
}

// ParseProduct maps a product tag to a Product. Matching ignores case and
// surrounding whitespace. The returned error is plain; the catalog wraps it
// into its own error kind.
func ParseProduct(tag string) (Product, error) {
	p := Product(strings.ToLower(strings.TrimSpace(tag)))
	switch p {
	case ProductSimple, ProductPremium:
		return p, nil
	}
	return "", fmt.Errorf("unknown product %q", tag)
}

func (p Product) String() string { return string(p) }

// Level is the interpretation band of a category percentage.
type Level string

// Interpretation bands, highest first.
const (
	LevelVeryHigh Level = "Very High"
	LevelHigh     Level = "High"
	LevelModerate Level = "Moderate"
	LevelLow      Level = "Low"
	LevelVeryLow  Level = "Very Low"
)

// Color is the display hint a renderer uses for a category bar.
type Color string

// Display colours.
const (
	ColorSuccess Color = "success"
	ColorWarning Color = "warning"
	ColorDanger  Color = "danger"
)
