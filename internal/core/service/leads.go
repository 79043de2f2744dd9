package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/niksmo/jubilant/internal/core/domain"
)

// SubmitLead stores the lead and notifies the sales inbox as one unit:
// the row is committed only when the notification was sent.
func (s *Service) SubmitLead(ctx context.Context, lead domain.Lead) error {
	const op = "Service.SubmitLead"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := lead.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}

	n := notificationFor(lead)
	notify := func(ctx context.Context) error {
		return s.notifier.Notify(ctx, n)
	}

	if err := s.leadsStorage.StoreLead(ctx, lead, notify); err != nil {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrDeliveryFailure, err)
	}

	log.Info("lead delivered", "leadID", lead.ID, "kind", lead.Kind)
	return nil
}

type field struct {
	label string
	value string
}

func notificationFor(l domain.Lead) domain.Notification {
	company := func(fallback string) string {
		if l.CompanyName == "" {
			return fallback
		}
		return l.CompanyName
	}

	common := []field{
		{"Product Name", l.ProductName},
		{"Quantity", fmt.Sprint(l.Quantity)},
		{"Company Name", l.CompanyName},
		{"Email", l.Email},
		{"Phone", l.Phone},
		{"Inquiry Details", l.Details},
	}

	var n domain.Notification
	switch l.Kind {
	case domain.LeadContact:
		n.Subject = "New Contact Form Submission from " + company("Unknown Company")
		n.Body = body("A new contact form submission was received:",
			append(common, field{"Wants Notification", yesNo(l.Notify)}))
	case domain.LeadConsultation:
		n.Subject = "New Consultation Request from " + company("Unknown Company")
		n.Body = body("New Consultation Request Received:",
			append(common, field{"Notify for Price", yesNo(l.Notify)}))
	case domain.LeadInquiry:
		n.Subject = "New Inquiry from " + l.Name
		n.ReplyTo = l.Email
		n.Body = body("New Inquiry received:", []field{
			{"Name", l.Name},
			{"Email", l.Email},
			{"Phone", l.Phone},
			{"Product", l.ProductName},
			{"Quantity", fmt.Sprint(l.Quantity)},
		})
	case domain.LeadSubmission:
		n.Subject = "New Inquiry Form Submission - " + company("No Company")
		n.Body = body("A new inquiry has been received.",
			append(common, field{"Notify Prices", yesNo(l.Notify)}))
	}
	return n
}

func body(heading string, fields []field) string {
	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
	}
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
