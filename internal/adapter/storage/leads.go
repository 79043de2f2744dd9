package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/niksmo/jubilant/internal/core/domain"
	"github.com/niksmo/jubilant/internal/core/port"
)

var _ port.LeadsStorage = (*LeadsRepository)(nil)

var ErrUnknownLeadKind = errors.New("unknown lead kind")

var leadQueries = map[domain.LeadKind]string{
	domain.LeadContact: `
		INSERT INTO contact_form (
			id, product_name, quantity, company_name,
			email, phone, inquiry_details, get_notified
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,

	domain.LeadConsultation: `
		INSERT INTO consultations (
			id, product_name, quantity, company_name,
			email, phone, inquiry_details, notify_price
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,

	domain.LeadInquiry: `
		INSERT INTO inquiries (id, name, email, phone, product, quantity)
		VALUES ($1, $2, $3, $4, $5, $6);`,

	domain.LeadSubmission: `
		INSERT INTO inquiry_submissions (
			id, product_name, quantity, company_name,
			email, phone, inquiry_details, notify_prices
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
}

type LeadsRepository struct {
	sqldb sqldb
}

func NewLeadsRepository(sqldb sqldb) LeadsRepository {
	return LeadsRepository{sqldb}
}

func (r LeadsRepository) StoreLead(
	ctx context.Context,
	lead domain.Lead,
	beforeCommit func(context.Context) error,
) (storeErr error) {
	const op = "LeadsRepository.StoreLead"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query, ok := leadQueries[lead.Kind]
	if !ok {
		return fmt.Errorf("%s: %w: %q", op, ErrUnknownLeadKind, lead.Kind)
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}

	defer func() {
		if storeErr == nil {
			if err := tx.Commit(); err != nil {
				storeErr = fmt.Errorf("%s: failed to commit: %w", op, err)
			}
			return
		}

		if err := tx.Rollback(); err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	if _, err := tx.ExecContext(ctx, query, r.args(lead)...); err != nil {
		return fmt.Errorf("%s: failed to exec: %w", op, err)
	}

	if beforeCommit != nil {
		if err := beforeCommit(ctx); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

func (LeadsRepository) args(l domain.Lead) []any {
	if l.Kind == domain.LeadInquiry {
		return []any{l.ID, l.Name, l.Email, l.Phone, l.ProductName, l.Quantity}
	}
	return []any{
		l.ID, l.ProductName, l.Quantity, l.CompanyName,
		l.Email, l.Phone, l.Details, l.Notify,
	}
}
