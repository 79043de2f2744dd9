package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/jubilant/internal/core/domain"
)

func (s *Service) Toggle(
	ctx context.Context, userID string, req domain.ToggleRequest,
) (domain.ToggleOutcome, error) {
	const op = "Service.Toggle"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := domain.NewToggleRequest(req.ProductID, string(req.Action)); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var (
		outcome domain.ToggleOutcome
		changed bool
		err     error
	)
	switch req.Action {
	case domain.ActionAdd:
		changed, err = s.shortlist.Add(ctx, userID, req.ProductID)
		outcome = domain.ToggleAlreadyExists
		if changed {
			outcome = domain.ToggleCreated
		}
	case domain.ActionRemove:
		changed, err = s.shortlist.Remove(ctx, userID, req.ProductID)
		outcome = domain.ToggleRemoved
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, domain.ShortlistEvent{
		UserID:     userID,
		ProductID:  req.ProductID,
		Action:     req.Action,
		Changed:    changed,
		OccurredAt: s.now(),
	})

	return outcome, nil
}

// publish never fails the toggle, the event stream is best effort.
func (s *Service) publish(ctx context.Context, evt domain.ShortlistEvent) {
	const op = "Service.publish"

	if s.eventsProducer == nil {
		return
	}

	if err := s.eventsProducer.ProduceEvent(ctx, evt); err != nil {
		slog.With("op", op).Error(
			"failed to produce shortlist event",
			"userID", evt.UserID, "productID", evt.ProductID, "err", err,
		)
	}
}

// FilterShortlist returns the user's shortlisted products matching spec,
// in catalog order.
//
// Records with malformed numeric fields are skipped and logged.
func (s *Service) FilterShortlist(
	ctx context.Context, userID string, spec domain.FilterSpec,
) ([]domain.ListedProduct, error) {
	const op = "Service.FilterShortlist"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ids, err := s.shortlist.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	shortlisted := domain.NewSet(ids...)

	matched := []domain.ListedProduct{}
	for _, p := range s.catalog.All() {
		if !shortlisted.Has(p.ID) {
			continue
		}

		ok, err := spec.Match(p)
		if err != nil {
			log.Warn("skip product", "productID", p.ID, "err", err)
			continue
		}
		if ok {
			matched = append(matched, domain.ListedProduct{
				Product:       p,
				IsShortlisted: true,
			})
		}
	}

	log.Debug("filtered", "shortlisted", len(ids), "matched", len(matched))
	return matched, nil
}
