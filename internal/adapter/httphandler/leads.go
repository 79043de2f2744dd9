package httphandler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/niksmo/jubilant/internal/core/domain"
	"github.com/niksmo/jubilant/internal/core/port"
)

// POST /send-contact       form (200 OK, 400 Bad request, 500 Internal server error)
// POST /send-consultation  form
// POST /send-inquiry       form
// POST /send-submit        form

const (
	maxFormMemory  = 1 << 20
	msgInvalidForm = "Invalid form data."
)

// leadForm describes one lead capture form. Field lists hold the
// accepted names in lookup order.
type leadForm struct {
	kind        domain.LeadKind
	success     string
	failure     string
	name        []string
	productName []string
	quantity    []string
	companyName []string
	email       []string
	phone       []string
	details     []string
	notify      []string
}

var leadForms = map[string]leadForm{
	"/send-contact": {
		kind:        domain.LeadContact,
		success:     "Your message has been sent successfully!",
		failure:     genericFailure,
		productName: []string{"product_name", "product-name"},
		quantity:    []string{"quantity"},
		companyName: []string{"company_name", "company-name"},
		email:       []string{"email", "email-address"},
		phone:       []string{"phone"},
		details:     []string{"inquiry_details", "inquiry-details"},
		notify:      []string{"get_notified"},
	},
	"/send-consultation": {
		kind:        domain.LeadConsultation,
		success:     "Your consultation has been submitted successfully!",
		failure:     "Something went wrong while submitting your request.",
		productName: []string{"product_name", "product-name"},
		quantity:    []string{"quantity"},
		companyName: []string{"company_name", "company-name"},
		email:       []string{"email", "email-address"},
		phone:       []string{"phone"},
		details:     []string{"inquiry_details", "inquiry-details"},
		notify:      []string{"notify_price"},
	},
	"/send-inquiry": {
		kind:        domain.LeadInquiry,
		success:     "Inquiry saved and email sent successfully!",
		failure:     "Failed to process inquiry.",
		name:        []string{"name"},
		productName: []string{"product"},
		quantity:    []string{"quantity"},
		email:       []string{"email"},
		phone:       []string{"phone"},
	},
	"/send-submit": {
		kind:        domain.LeadSubmission,
		success:     "Inquiry submitted successfully!",
		failure:     genericFailure,
		productName: []string{"product-name", "product_name"},
		quantity:    []string{"quantity"},
		companyName: []string{"company-name", "company_name"},
		email:       []string{"email-address", "email"},
		phone:       []string{"phone"},
		details:     []string{"inquiry-details", "inquiry_details"},
		notify:      []string{"notify-prices"},
	},
}

type LeadsHandler struct {
	submitter port.LeadSubmitter
}

func RegisterLeads(mux *http.ServeMux, submitter port.LeadSubmitter) {
	h := LeadsHandler{submitter}
	for path, form := range leadForms {
		mux.Handle("POST "+path, AllowForm(h.postLead(form)))
	}
}

func (h LeadsHandler) postLead(form leadForm) http.HandlerFunc {
	const op = "LeadsHandler.postLead"
	log := slog.With("op", op, "kind", form.kind)

	return func(w http.ResponseWriter, r *http.Request) {
		lead, err := form.parse(r)
		if err != nil {
			log.Warn("failed to parse form", "err", err)
			writeMessage(w, http.StatusBadRequest, false, msgInvalidForm)
			return
		}

		if err := h.submitter.SubmitLead(r.Context(), lead); err != nil {
			if errors.Is(err, domain.ErrInvalidRequest) {
				log.Warn("invalid lead", "err", err)
				writeMessage(w, http.StatusBadRequest, false, msgInvalidForm)
				return
			}
			log.Error("failed to submit lead", "err", err)
			writeMessage(w, http.StatusInternalServerError, false, form.failure)
			return
		}

		writeMessage(w, http.StatusOK, true, form.success)
		log.Info("lead accepted")
	}
}

func (f leadForm) parse(r *http.Request) (domain.Lead, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return domain.Lead{}, err
		}
	} else if err := r.ParseForm(); err != nil {
		return domain.Lead{}, err
	}

	lead := domain.Lead{
		Kind:        f.kind,
		Name:        formValue(r, f.name),
		ProductName: formValue(r, f.productName),
		CompanyName: formValue(r, f.companyName),
		Email:       formValue(r, f.email),
		Phone:       formValue(r, f.phone),
		Details:     formValue(r, f.details),
		Notify:      formValue(r, f.notify) == "on",
	}

	if q := formValue(r, f.quantity); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			return domain.Lead{}, fmt.Errorf("quantity %q: %w", q, err)
		}
		lead.Quantity = n
	}
	return lead, nil
}

// formValue returns the first non-empty posted value among names.
func formValue(r *http.Request, names []string) string {
	for _, name := range names {
		if v := strings.TrimSpace(r.PostFormValue(name)); v != "" {
			return v
		}
	}
	return ""
}
