package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=users_test

type usersRepo interface {
	Add(ctx context.Context, user User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type Service struct {
	repo           usersRepo
	metricsManager *metrics.Manager
}

func NewService(repo usersRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

// Register stores a new user with a bcrypt digest of the password.
// Returns ErrDuplicateEmail if the email is taken.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.register")
	defer func() {
		if errors.Is(err, ErrDuplicateEmail) || errors.Is(err, pkg.ErrValidation) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := pkg.Validate(req); err != nil {
		return nil, err
	}

	hash, err := pkg.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Add(ctx, User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterRegistrations.Inc()
	}
	log.Debugf("users service: registered user %d", user.ID)

	return user, nil
}

// Authenticate checks the credentials. Unknown email and wrong password
// both yield ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, req LoginRequest) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.authenticate")
	defer func() {
		if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, pkg.ErrValidation) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req.Email = strings.TrimSpace(req.Email)
	if err := pkg.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.countLogin("invalid")
			return nil, ErrInvalidCredentials
		}
		s.countLogin("error")
		return nil, err
	}

	if !pkg.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.countLogin("invalid")
		return nil, ErrInvalidCredentials
	}

	s.countLogin("ok")
	return user, nil
}

func (s *Service) countLogin(result string) {
	if s.metricsManager != nil {
		s.metricsManager.CounterLogins.WithLabelValues(result).Inc()
	}
}
