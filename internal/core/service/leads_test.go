package service

import (
	"context"
	"errors"
	"testing"

	"github.com/niksmo/jubilant/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeLeads commits a lead only when beforeCommit succeeds.
type fakeLeads struct {
	committed []domain.Lead
	err       error
}

func (f *fakeLeads) StoreLead(
	ctx context.Context,
	lead domain.Lead,
	beforeCommit func(context.Context) error,
) error {
	if f.err != nil {
		return f.err
	}
	if err := beforeCommit(ctx); err != nil {
		return err
	}
	f.committed = append(f.committed, lead)
	return nil
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, n domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func TestSubmitLead(t *testing.T) {
	inquiry := domain.Lead{
		Kind:        domain.LeadInquiry,
		Name:        "Ann",
		ProductName: "EPYC 9654",
		Quantity:    2,
		Email:       "ann@example.test",
		Phone:       "555",
	}

	t.Run("Delivered", func(t *testing.T) {
		leads := new(fakeLeads)
		n := new(MockNotifier)
		n.On("Notify", mock.Anything, domain.Notification{
			Subject: "New Inquiry from Ann",
			ReplyTo: "ann@example.test",
			Body: "New Inquiry received:\n\n" +
				"Name: Ann\n" +
				"Email: ann@example.test\n" +
				"Phone: 555\n" +
				"Product: EPYC 9654\n" +
				"Quantity: 2\n",
		}).Return(nil).Once()

		s := New(testCatalog(), newFakeShortlist(nil), nil, leads, n)
		require.NoError(t, s.SubmitLead(t.Context(), inquiry))

		require.Len(t, leads.committed, 1)
		assert.NotEmpty(t, leads.committed[0].ID)
		n.AssertExpectations(t)
	})

	t.Run("NotifyFailureRollsBack", func(t *testing.T) {
		leads := new(fakeLeads)
		n := new(MockNotifier)
		n.On("Notify", mock.Anything, mock.Anything).
			Return(errors.New("smtp: 535 auth failed")).Once()

		s := New(testCatalog(), newFakeShortlist(nil), nil, leads, n)
		err := s.SubmitLead(t.Context(), inquiry)

		assert.ErrorIs(t, err, domain.ErrDeliveryFailure)
		assert.Empty(t, leads.committed)
	})

	t.Run("StorageFailureSkipsNotify", func(t *testing.T) {
		leads := &fakeLeads{err: errors.New("relation does not exist")}
		n := new(MockNotifier)

		s := New(testCatalog(), newFakeShortlist(nil), nil, leads, n)
		err := s.SubmitLead(t.Context(), inquiry)

		assert.ErrorIs(t, err, domain.ErrDeliveryFailure)
		n.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	})

	t.Run("Invalid", func(t *testing.T) {
		leads := new(fakeLeads)
		n := new(MockNotifier)

		s := New(testCatalog(), newFakeShortlist(nil), nil, leads, n)
		err := s.SubmitLead(t.Context(), domain.Lead{Kind: domain.LeadContact})

		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		assert.NotErrorIs(t, err, domain.ErrDeliveryFailure)
		assert.Empty(t, leads.committed)
	})
}

func TestNotificationFor(t *testing.T) {
	tests := []struct {
		name        string
		lead        domain.Lead
		wantSubject string
		wantLine    string
	}{
		{
			name:        "ContactUnknownCompany",
			lead:        domain.Lead{Kind: domain.LeadContact, Notify: true},
			wantSubject: "New Contact Form Submission from Unknown Company",
			wantLine:    "Wants Notification: Yes\n",
		},
		{
			name:        "Consultation",
			lead:        domain.Lead{Kind: domain.LeadConsultation, CompanyName: "Acme"},
			wantSubject: "New Consultation Request from Acme",
			wantLine:    "Notify for Price: No\n",
		},
		{
			name:        "SubmissionNoCompany",
			lead:        domain.Lead{Kind: domain.LeadSubmission, Quantity: 10},
			wantSubject: "New Inquiry Form Submission - No Company",
			wantLine:    "Quantity: 10\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := notificationFor(tt.lead)
			assert.Equal(t, tt.wantSubject, n.Subject)
			assert.Contains(t, n.Body, tt.wantLine)
			assert.Empty(t, n.ReplyTo)
		})
	}
}
