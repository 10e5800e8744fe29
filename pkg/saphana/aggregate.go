package saphana

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// AggregatedProduct groups all instances sharing a product name.
type AggregatedProduct struct {
	Name    string
	Path    string
	Admin   string
	Numbers sets.Set[string]
}

// Products is a set of aggregated products in first-seen order.
type Products struct {
	order []string
	items map[string]*AggregatedProduct
}

// Aggregate groups instances by name. The first instance of a name fixes the
// product path and admin user.
func Aggregate(instances []Instance) *Products {
	p := &Products{
		order: make([]string, 0, len(instances)),
		items: make(map[string]*AggregatedProduct, len(instances)),
	}

	for _, i := range instances {
		p.Add(i)
	}

	return p
}

// Add records an instance.
func (p *Products) Add(instance Instance) {
	product, ok := p.items[instance.Name]
	if !ok {
		product = &AggregatedProduct{
			Name:    instance.Name,
			Path:    instance.Path,
			Admin:   instance.Admin,
			Numbers: sets.New[string](),
		}

		p.items[instance.Name] = product
		p.order = append(p.order, instance.Name)
	}

	product.Numbers.Insert(instance.InstanceNumber)
}

// Len returns the number of distinct products.
func (p *Products) Len() int {
	return len(p.order)
}

// Get returns the product with the given name.
func (p *Products) Get(name string) (*AggregatedProduct, bool) {
	product, ok := p.items[name]

	return product, ok
}

// List returns the products in first-seen order.
func (p *Products) List() []*AggregatedProduct {
	result := make([]*AggregatedProduct, 0, len(p.order))
	for _, name := range p.order {
		result = append(result, p.items[name])
	}

	return result
}

// Detected renders the products as a bullet list for report summaries.
func (p *Products) Detected() string {
	entries := make([]string, 0, p.Len())

	for _, product := range p.List() {
		entries = append(entries, fmt.Sprintf(
			"Name: %s\n  Instances: %s\n  Admin: %s\n  Path: %s",
			product.Name,
			strings.Join(sets.List(product.Numbers), ", "),
			product.Admin,
			product.Path,
		))
	}

	if len(entries) == 0 {
		return ""
	}

	return "- " + strings.Join(entries, "\n- ")
}
