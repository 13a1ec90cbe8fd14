package services

import (
	"context"
	"fmt"
	"log/slog"

	"societyportal/internal/domain"
)

type contactService struct {
	contactRepo  domain.ContactRepository
	mailer       domain.Mailer
	contactInbox string
	logger       *slog.Logger
}

// NewContactService creates a ContactService. When contactInbox is set, each
// submission triggers a staff notification email; send failures are logged
// and never fail the request.
func NewContactService(contactRepo domain.ContactRepository, mailer domain.Mailer, contactInbox string, logger *slog.Logger) domain.ContactService {
	return &contactService{
		contactRepo:  contactRepo,
		mailer:       mailer,
		contactInbox: contactInbox,
		logger:       logger,
	}
}

func (s *contactService) SubmitContactForm(ctx context.Context, sub *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	if err := s.contactRepo.CreateSubmission(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to store contact submission: %w", err)
	}

	if s.contactInbox != "" {
		subject := fmt.Sprintf("Contact form: %s", sub.Subject)
		text := fmt.Sprintf("From: %s %s <%s>\nSubject: %s\n\n%s",
			sub.FirstName, sub.LastName, sub.Email, sub.Subject, sub.Message)
		if err := s.mailer.Send(s.contactInbox, subject, "", text); err != nil {
			s.logger.WarnContext(ctx, "contact notification email failed", "submission_id", sub.ID, "err", err)
		}
	}
	return sub, nil
}

func (s *contactService) ListSubmissions(ctx context.Context) ([]*domain.ContactSubmission, error) {
	return s.contactRepo.ListSubmissions(ctx)
}
