package commands

import (
	"context"
	"log/slog"
	"time"

	"learnhub-api/internal/domain/user"
	reqdto "learnhub-api/internal/handler/dto/request"
	"learnhub-api/internal/infra/sessionstore"
	"learnhub-api/internal/pkg/clock"
	"learnhub-api/internal/pkg/errs"
	"learnhub-api/internal/pkg/jwt"
	"learnhub-api/internal/pkg/password"
	"learnhub-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrEmailTaken           = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	User        *queries.AuthorizedUserView
	AccessToken string
	SessionID   string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	Signup(ctx context.Context, req reqdto.SignupRequest) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
}

type UserWriteStore interface {
	FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error)
	Create(ctx context.Context, u *user.User) (*queries.AuthorizedUserView, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type authCommandsImpl struct {
	store      UserWriteStore
	sessions   sessionstore.Store
	jwtService *jwt.Service
	clock      clock.Clock
	sessionTTL time.Duration
}

func NewAuthCommands(
	store UserWriteStore,
	sessions sessionstore.Store,
	jwtService *jwt.Service,
	clk clock.Clock,
	sessionTTL time.Duration,
) AuthCommands {
	return &authCommandsImpl{
		store:      store,
		sessions:   sessions,
		jwtService: jwtService,
		clock:      clk,
		sessionTTL: sessionTTL,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	result, err := a.openSession(ctx, view, role)
	if err != nil {
		return nil, err
	}

	if err := a.store.UpdateLastLogin(ctx, view.ID); err != nil {
		// Not critical; the login itself succeeded.
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return result, nil
}

func (a *authCommandsImpl) Signup(ctx context.Context, req reqdto.SignupRequest) (*LoginResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	if _, err := user.NewPassword(req.Password); err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	// Self-registration always lands on the student role; instructor and
	// admin accounts are provisioned separately.
	newUser, err := user.NewUser(req.Name, email, hash, user.RoleStudent)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, err := a.store.Create(ctx, newUser)
	if err != nil {
		return nil, errs.Mark(err, ErrEmailTaken)
	}

	return a.openSession(ctx, view, user.RoleStudent)
}

func (a *authCommandsImpl) Logout(ctx context.Context, sessionID string) error {
	return a.sessions.Delete(ctx, sessionID)
}

func (a *authCommandsImpl) openSession(ctx context.Context, view *queries.AuthorizedUserView, role user.Role) (*LoginResult, error) {
	now := a.clock.Now()
	sess := sessionstore.Session{
		ID:        uuid.NewString(),
		UserID:    view.ID,
		Role:      role.String(),
		CreatedAt: now,
		ExpiresAt: now.Add(a.sessionTTL),
	}
	if err := a.sessions.Save(ctx, sess); err != nil {
		return nil, errs.Wrap(err, "failed to save session")
	}

	token, err := a.jwtService.GenerateToken(view.ID, role, sess.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		User:        view,
		AccessToken: token,
		SessionID:   sess.ID,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.store.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration.
		return nil, ErrInvalidCredentials
	}

	if view == nil {
		return nil, ErrUserNotFound
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}
