package service

import (
	"errors"

	"merchstore/internal/catalog"
	"merchstore/internal/domain"
)

// ProductService exposes the read-only catalog
type ProductService struct {
	catalog catalog.Catalog
}

func NewProductService(c catalog.Catalog) *ProductService {
	return &ProductService{catalog: c}
}

var ErrInvalidInput = errors.New("invalid input")

func (s *ProductService) GetByID(id string) (*domain.Product, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.catalog.Get(id)
}

// List returns products in catalog order, optionally only those available for purchase.
func (s *ProductService) List(availableOnly bool) []domain.Product {
	all := s.catalog.List()
	if !availableOnly {
		return all
	}
	out := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if p.Available() {
			out = append(out, p)
		}
	}
	return out
}
