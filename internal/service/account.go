package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/xautrade/meeting-server-go/internal/audit"
	"github.com/xautrade/meeting-server-go/internal/auth"
	apperrors "github.com/xautrade/meeting-server-go/internal/errors"
	"github.com/xautrade/meeting-server-go/internal/model"
	"github.com/xautrade/meeting-server-go/internal/repository"
)

const (
	msgEmailTaken  = "Email already registered"
	msgMobileTaken = "Mobile number already registered"
)

type RegisterParams struct {
	FirstName    string
	LastName     string
	MobileNumber string
	Email        string
	Password     string
	CountryID    int64
	StateID      int64
}

type LoginResult struct {
	AccessToken string
	TokenType   string
	User        model.UserProfile
}

// AccountService orchestrates registration and login over the user store,
// the password hasher and the token issuer.
type AccountService struct {
	users      repository.UserRepository
	geo        repository.GeoRepository
	tokens     *auth.TokenIssuer
	bcryptCost int
}

func NewAccountService(
	users repository.UserRepository,
	geo repository.GeoRepository,
	tokens *auth.TokenIssuer,
	bcryptCost int,
) *AccountService {
	return &AccountService{
		users:      users,
		geo:        geo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new user. Email is checked before mobile so the error
// message is deterministic when both collide. The pre-checks are advisory;
// the table's unique constraints settle concurrent duplicates, and a
// constraint violation from the insert maps to the same conflict.
func (s *AccountService) Register(ctx context.Context, params RegisterParams) (int64, error) {
	existing, err := s.users.FindByEmail(ctx, params.Email)
	if err != nil {
		return 0, apperrors.Database(err)
	}
	if existing != nil {
		audit.Log(ctx, audit.Event{Type: audit.EventRegisterDenied, Details: map[string]interface{}{"reason": "email_taken"}})
		return 0, apperrors.Conflict(msgEmailTaken)
	}

	existing, err = s.users.FindByMobile(ctx, params.MobileNumber)
	if err != nil {
		return 0, apperrors.Database(err)
	}
	if existing != nil {
		audit.Log(ctx, audit.Event{Type: audit.EventRegisterDenied, Details: map[string]interface{}{"reason": "mobile_taken"}})
		return 0, apperrors.Conflict(msgMobileTaken)
	}

	hash, err := auth.HashPassword(params.Password, s.bcryptCost)
	if err != nil {
		return 0, apperrors.Internal("failed to hash password").WithCause(err)
	}

	user, err := s.users.Create(ctx, model.CreateUserParams{
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		MobileNumber: params.MobileNumber,
		Email:        params.Email,
		PasswordHash: hash,
		CountryID:    params.CountryID,
		StateID:      params.StateID,
	})
	if err != nil {
		if conflictErr := conflictFromConstraint(err); conflictErr != nil {
			return 0, conflictErr
		}
		return 0, apperrors.Database(err)
	}

	audit.Log(ctx, audit.Event{Type: audit.EventRegister, Email: user.Email, UserID: user.ID})
	log.Info().Int64("userId", user.ID).Msg("user registered")
	return user.ID, nil
}

// Login verifies credentials and mints a session token. An unknown email and
// a wrong password produce the identical failure.
func (s *AccountService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if user == nil || !auth.CheckPassword(password, user.PasswordHash) {
		audit.Log(ctx, audit.Event{Type: audit.EventLoginFailure})
		return nil, apperrors.BadCredentials()
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, apperrors.Internal("failed to issue token").WithCause(err)
	}

	profile := model.UserProfile{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		MobileNumber: user.MobileNumber,
		CountryID:    user.CountryID,
		StateID:      user.StateID,
	}

	// Either reference may be missing; the profile tolerates both.
	if country, err := s.geo.FindCountryByID(ctx, user.CountryID); err == nil && country != nil {
		profile.CountryName = &country.Name
	}
	if state, err := s.geo.FindStateByID(ctx, user.StateID); err == nil && state != nil {
		profile.StateName = &state.Name
	}

	audit.Log(ctx, audit.Event{Type: audit.EventLoginSuccess, Email: user.Email, UserID: user.ID})

	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		User:        profile,
	}, nil
}

func conflictFromConstraint(err error) *apperrors.AppError {
	constraint, ok := repository.UniqueViolation(err)
	if !ok {
		return nil
	}
	switch constraint {
	case "users_email_key":
		return apperrors.Conflict(msgEmailTaken)
	case "users_mobile_number_key":
		return apperrors.Conflict(msgMobileTaken)
	default:
		return apperrors.Conflict("Account already registered")
	}
}
