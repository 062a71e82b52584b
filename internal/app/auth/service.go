package auth

import (
	"context"
	"log/slog"

	"github.com/ndudarev/go_fitness_backend/internal/app/unitofwork"
	"github.com/ndudarev/go_fitness_backend/internal/domain/athlete"
)

type Service struct {
	logger     *slog.Logger
	Authorizer *Authorizer
}

func NewService(auth *Authorizer, logger *slog.Logger) *Service {
	return &Service{
		logger:     logger,
		Authorizer: auth,
	}
}

func (s *Service) SignUp(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	athleteID string,
	email string,
	password string,
) (a *athlete.Athlete, err error) {
	err = uow.Atomic(ctx, func(ctx context.Context, ac *AtomicContext) error {
		a = athlete.New(athleteID, email, password, s.Authorizer)
		if err := ac.AthleteStorage.Add(ctx, a); err != nil {
			return err
		}
		return ac.Commit()
	})
	return
}

type Tokens struct {
	AccessToken  string
	RefreshToken string
}

func (s *Service) Login(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	device athlete.Device,
	email string,
	password string,
) (tokens Tokens, err error) {
	err = uow.Atomic(ctx, func(ctx context.Context, ac *AtomicContext) error {
		a, err := ac.AthleteStorage.GetByEmail(ctx, email)
		if err != nil {
			return err
		}

		sess, err := a.Authorize(s.Authorizer, password, device)
		if err != nil {
			return err
		}

		accessToken, err := s.Authorizer.GenerateAccessToken(a, sess)
		if err != nil {
			return err
		}

		if err := ac.AthleteStorage.Persist(ctx, a); err != nil {
			return err
		}

		tokens = Tokens{
			AccessToken:  accessToken,
			RefreshToken: sess.Secret,
		}
		return ac.Commit()
	})
	return
}

func (s *Service) Logout(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	athleteID string,
	sessionID string,
) error {
	return uow.Atomic(ctx, func(ctx context.Context, ac *AtomicContext) error {
		a, err := ac.AthleteStorage.GetByID(ctx, athleteID)
		if err != nil {
			return err
		}

		if err := a.Logout(sessionID); err != nil {
			return err
		}

		if err := ac.AthleteStorage.Persist(ctx, a); err != nil {
			return err
		}
		return ac.Commit()
	})
}

func (s *Service) GetAthlete(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	athleteID string,
) (a *athlete.Athlete, err error) {
	err = uow.Atomic(ctx, func(ctx context.Context, ac *AtomicContext) error {
		a, err = ac.AthleteStorage.GetByID(ctx, athleteID)
		if err != nil {
			return err
		}
		return ac.Commit()
	})
	return
}

func (s *Service) UpdateProfile(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	athleteID string,
	firstName, lastName string,
	weightKg, heightCm float64,
) (a *athlete.Athlete, err error) {
	err = uow.Atomic(ctx, func(ctx context.Context, ac *AtomicContext) error {
		a, err = ac.AthleteStorage.GetByID(ctx, athleteID)
		if err != nil {
			return err
		}

		a.UpdateProfile(firstName, lastName, weightKg, heightCm)

		if err := ac.AthleteStorage.Persist(ctx, a); err != nil {
			return err
		}
		return ac.Commit()
	})
	return
}
