package domain

import "fmt"

// A LeadKind names one of the lead capture forms.
type LeadKind string

const (
	LeadContact      LeadKind = "contact"
	LeadConsultation LeadKind = "consultation"
	LeadInquiry      LeadKind = "inquiry"
	LeadSubmission   LeadKind = "submission"
)

// A Lead is a lead capture form submission.
//
// Not every kind uses every field: an inquiry carries Name and no
// company or details, the others carry no Name.
type Lead struct {
	ID          string
	Kind        LeadKind
	Name        string
	ProductName string
	Quantity    int
	CompanyName string
	Email       string
	Phone       string
	Details     string
	Notify      bool
}

func (l Lead) Validate() error {
	switch l.Kind {
	case LeadContact, LeadConsultation, LeadInquiry, LeadSubmission:
	default:
		return fmt.Errorf("%w: unknown lead kind %q", ErrInvalidRequest, l.Kind)
	}
	if l.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidRequest)
	}
	if l.Quantity < 0 {
		return fmt.Errorf("%w: negative quantity", ErrInvalidRequest)
	}
	return nil
}

// A Notification is the message sent to the sales inbox for a lead.
type Notification struct {
	Subject string
	Body    string
	ReplyTo string
}
