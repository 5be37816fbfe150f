package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mergingtonactivities/internal/domain"
)

type activityService struct {
	repo         domain.ActivityRepository
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewActivityService creates an ActivityService backed by the given registry.
// emailService may be nil to disable confirmation emails.
func NewActivityService(repo domain.ActivityRepository, emailService domain.EmailService, logger *slog.Logger) domain.ActivityService {
	return &activityService{
		repo:         repo,
		emailService: emailService,
		logger:       logger,
	}
}

func (s *activityService) ListActivities(ctx context.Context) (map[string]*domain.Activity, error) {
	activities, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

func (s *activityService) Signup(ctx context.Context, activityName, email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}

	if err := s.repo.AddParticipant(ctx, activityName, email); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrAlreadySignedUp) {
			return "", err
		}
		return "", fmt.Errorf("add participant: %w", err)
	}

	// Confirmation email is best-effort; enrollment already succeeded.
	if s.emailService != nil {
		schedule := ""
		if a, err := s.repo.GetByName(ctx, activityName); err == nil {
			schedule = a.Schedule
		}
		if err := s.emailService.SendSignupConfirmation(ctx, &domain.SignupConfirmationEmailData{
			Email:        email,
			ActivityName: activityName,
			Schedule:     schedule,
		}); err != nil {
			s.logger.WarnContext(ctx, "signup confirmation email failed",
				"activity", activityName, "err", err)
		}
	}

	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

func (s *activityService) Unregister(ctx context.Context, activityName, email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}

	if err := s.repo.RemoveParticipant(ctx, activityName, email); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNotRegistered) {
			return "", err
		}
		return "", fmt.Errorf("remove participant: %w", err)
	}

	if s.emailService != nil {
		if err := s.emailService.SendUnregisterConfirmation(ctx, &domain.UnregisterConfirmationEmailData{
			Email:        email,
			ActivityName: activityName,
		}); err != nil {
			s.logger.WarnContext(ctx, "unregister confirmation email failed",
				"activity", activityName, "err", err)
		}
	}

	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}
