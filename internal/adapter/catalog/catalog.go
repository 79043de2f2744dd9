// Package catalog holds the read-only product catalog loaded at start-up.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/niksmo/jubilant/internal/core/domain"
	"github.com/niksmo/jubilant/internal/core/port"
)

var _ port.CatalogStore = (*Store)(nil)

//go:embed catalog.yaml
var embeddedSeed []byte

var ErrDuplicateID = errors.New("duplicate product id")

// A Store is immutable after construction and safe for concurrent use.
type Store struct {
	products []domain.Product
	byID     map[string]int
}

// Load reads the seed from path. An empty path selects the embedded seed.
func Load(path string) (*Store, error) {
	const op = "catalog.Load"
	log := slog.With("op", op)

	data := embeddedSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		data = b
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("catalog is loaded",
		"processors", len(s.List(domain.KindProcessor)),
		"storage", len(s.List(domain.KindStorage)),
	)
	return s, nil
}

func Parse(data []byte) (*Store, error) {
	const op = "catalog.Parse"

	var sd seed
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sd); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	products := make([]domain.Product, 0, len(sd.Processors)+len(sd.Storage))
	for _, r := range sd.Processors {
		products = append(products, r.toDomain())
	}
	for _, r := range sd.Storage {
		products = append(products, r.toDomain())
	}

	return New(products)
}

// New builds a Store keeping the given order as the catalog order.
func New(products []domain.Product) (*Store, error) {
	const op = "catalog.New"

	byID := make(map[string]int, len(products))
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("%s: product at %d: empty id", op, i)
		}
		if _, ok := byID[p.ID]; ok {
			return nil, fmt.Errorf("%s: %w: %q", op, ErrDuplicateID, p.ID)
		}
		byID[p.ID] = i
	}

	return &Store{products: products, byID: byID}, nil
}

func (s *Store) List(kind domain.Kind) []domain.Product {
	var ps []domain.Product
	for _, p := range s.products {
		if p.Kind == kind {
			ps = append(ps, p)
		}
	}
	return ps
}

func (s *Store) All() []domain.Product {
	ps := make([]domain.Product, len(s.products))
	copy(ps, s.products)
	return ps
}

func (s *Store) FindByID(id string) (domain.Product, error) {
	const op = "Store.FindByID"

	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%s: %w: %q", op, domain.ErrNotFound, id)
	}
	return s.products[i], nil
}
