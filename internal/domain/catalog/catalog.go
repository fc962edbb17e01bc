// Package catalog holds the static question sets of both assessment products.
//
// Tables are built once at package initialisation and never mutated; every
// accessor hands out a copy so callers cannot alter the shared definitions.
package catalog

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/okian/spikefactor/internal/domain/types"
)

// Likert scale bounds shared by every question.
const (
	ScaleMin = 1
	ScaleMax = 5
)

// Scale is the answer range of a question.
type Scale struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Likert is the five-point scale every question uses.
var Likert = Scale{Min: ScaleMin, Max: ScaleMax}

// Question is an immutable catalog entry. IDs are 1-based and contiguous
// within a product; catalog order is presentation order.
type Question struct {
	ID       int    `json:"id"`
	Category string `json:"category,omitempty"` // empty for the simple product
	Text     string `json:"text"`
	Scale    Scale  `json:"scale"`
	Reverse  bool   `json:"reverse_scored,omitempty"`
}

// Category describes a premium scoring dimension.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type productCatalog struct {
	questions  []Question
	byID       map[int]Question
	categories []Category
	byCategory map[string]Category
}

var catalogs = map[types.Product]*productCatalog{
	types.ProductSimple:  build(simpleQuestions, nil),
	types.ProductPremium: build(premiumQuestions, premiumCategories),
}

func build(questions []Question, categories []Category) *productCatalog {
	questions = lo.Map(questions, func(q Question, _ int) Question {
		q.Scale = Likert
		return q
	})
	return &productCatalog{
		questions:  questions,
		byID:       lo.KeyBy(questions, func(q Question) int { return q.ID }),
		categories: categories,
		byCategory: lo.KeyBy(categories, func(c Category) string { return c.ID }),
	}
}

func lookup(product types.Product) (*productCatalog, error) {
	c, ok := catalogs[product]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProduct, string(product))
	}
	return c, nil
}

// QuestionsFor returns the ordered question set of product.
func QuestionsFor(product types.Product) ([]Question, error) {
	c, err := lookup(product)
	if err != nil {
		return nil, err
	}
	return append([]Question(nil), c.questions...), nil
}

// Len returns the number of questions of product.
func Len(product types.Product) (int, error) {
	c, err := lookup(product)
	if err != nil {
		return 0, err
	}
	return len(c.questions), nil
}

// Lookup returns the question with the given id. The boolean is false when
// the id is not part of the product's catalog.
func Lookup(product types.Product, id int) (Question, bool, error) {
	c, err := lookup(product)
	if err != nil {
		return Question{}, false, err
	}
	q, ok := c.byID[id]
	return q, ok, nil
}

// CategoryMetadata maps category id to its display metadata. The simple
// product has a single implicit category and yields an empty mapping.
func CategoryMetadata(product types.Product) (map[string]Category, error) {
	c, err := lookup(product)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Category, len(c.byCategory))
	for k, v := range c.byCategory {
		out[k] = v
	}
	return out, nil
}

// Categories returns the categories of product in catalog-declared order.
func Categories(product types.Product) ([]Category, error) {
	c, err := lookup(product)
	if err != nil {
		return nil, err
	}
	return append([]Category(nil), c.categories...), nil
}

// CategoryOrder returns the catalog-declared position of every category of
// product, used as the stable tie-break when ranking.
func CategoryOrder(product types.Product) (map[string]int, error) {
	c, err := lookup(product)
	if err != nil {
		return nil, err
	}
	order := make(map[string]int, len(c.categories))
	for i, cat := range c.categories {
		order[cat.ID] = i
	}
	return order, nil
}
