package service

import (
	"context"
	"fmt"

	"github.com/niksmo/jubilant/internal/core/domain"
)

func (s *Service) ListProducts(
	ctx context.Context, kind domain.Kind,
) ([]domain.Product, error) {
	const op = "Service.ListProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !kind.Valid() {
		return nil, fmt.Errorf("%s: %w: unknown kind %q", op, domain.ErrInvalidRequest, kind)
	}
	return s.catalog.List(kind), nil
}

// ListAll returns the whole catalog annotated against the user's shortlist.
func (s *Service) ListAll(
	ctx context.Context, userID string,
) ([]domain.ListedProduct, error) {
	const op = "Service.ListAll"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ids, err := s.shortlist.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	shortlisted := domain.NewSet(ids...)

	products := s.catalog.All()
	listed := make([]domain.ListedProduct, 0, len(products))
	for _, p := range products {
		listed = append(listed, domain.ListedProduct{
			Product:       p,
			IsShortlisted: shortlisted.Has(p.ID),
		})
	}
	return listed, nil
}

func (s *Service) FindProduct(
	ctx context.Context, id string,
) (domain.Product, error) {
	const op = "Service.FindProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.catalog.FindByID(id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}
