package catalog

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"merchstore/internal/domain"
)

type fileProduct struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Type   string   `yaml:"type"`
	Price  string   `yaml:"price"`
	Colors []string `yaml:"colors"`
	Sizes  []string `yaml:"sizes"`
	Stock  *int64   `yaml:"stock"`
	Image  string   `yaml:"image"`
}

type file struct {
	Products []fileProduct `yaml:"products"`
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML of the form:
//
//	products:
//	  - id: tshirt1
//	    name: SUTD Classic Tee
//	    price: "25.00"
//	    colors: [Black, White]
//	    sizes: [S, M]
//	    stock: 3
func Parse(data []byte) (*Static, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	products := make([]domain.Product, 0, len(f.Products))
	for _, fp := range f.Products {
		price, err := decimal.NewFromString(fp.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: %q price %q: %v", ErrInvalidProduct, fp.ID, fp.Price, err)
		}
		products = append(products, domain.Product{
			ID:     fp.ID,
			Name:   fp.Name,
			Type:   fp.Type,
			Price:  price,
			Colors: fp.Colors,
			Sizes:  fp.Sizes,
			Stock:  fp.Stock,
			Image:  fp.Image,
		})
	}
	return New(products)
}
