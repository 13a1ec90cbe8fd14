package services

import (
	"context"
	"fmt"
	"log/slog"

	"societyportal/internal/domain"
)

type newsletterService struct {
	newsletterRepo domain.NewsletterRepository
	mailer         domain.Mailer
	logger         *slog.Logger
}

// NewNewsletterService creates a NewsletterService. New subscribers get a
// welcome email; reactivations do not. Send failures are logged and never
// fail the request.
func NewNewsletterService(newsletterRepo domain.NewsletterRepository, mailer domain.Mailer, logger *slog.Logger) domain.NewsletterService {
	return &newsletterService{
		newsletterRepo: newsletterRepo,
		mailer:         mailer,
		logger:         logger,
	}
}

func (s *newsletterService) Subscribe(ctx context.Context, email string) (*domain.NewsletterSubscription, error) {
	sub, created, err := s.newsletterRepo.Subscribe(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	if created {
		text := "Thank you for subscribing to the society newsletter. " +
			"You will receive updates on upcoming lectureships and society news."
		if err := s.mailer.Send(sub.Email, "Welcome to the society newsletter", "", text); err != nil {
			s.logger.WarnContext(ctx, "welcome email failed", "email", sub.Email, "err", err)
		}
	}
	return sub, nil
}
