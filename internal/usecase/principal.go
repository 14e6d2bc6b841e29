package usecase

import (
	"context"

	"learnhub-api/internal/domain/user"
	"learnhub-api/internal/infra/sessionstore"
	"learnhub-api/internal/pkg/errs"
	"learnhub-api/internal/pkg/jwt"
)

var ErrSessionRevoked = errs.New("session revoked or expired")

// ResolvedPrincipal pairs the request principal with the session that backs
// it, so a logout can name the session to revoke.
type ResolvedPrincipal struct {
	Principal user.Principal
	SessionID string
}

// PrincipalResolver turns a bearer token into the request principal. A token
// is only honored while its server-side session is alive, so logout takes
// effect immediately even for unexpired tokens.
type PrincipalResolver interface {
	Resolve(ctx context.Context, tokenString string) (ResolvedPrincipal, error)
}

type principalResolverImpl struct {
	jwtService *jwt.Service
	sessions   sessionstore.Store
}

func NewPrincipalResolver(jwtService *jwt.Service, sessions sessionstore.Store) PrincipalResolver {
	return &principalResolverImpl{
		jwtService: jwtService,
		sessions:   sessions,
	}
}

func (r *principalResolverImpl) Resolve(ctx context.Context, tokenString string) (ResolvedPrincipal, error) {
	claims, err := r.jwtService.ValidateToken(tokenString)
	if err != nil {
		return ResolvedPrincipal{}, errs.Mark(err, ErrSessionRevoked)
	}

	sess, err := r.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return ResolvedPrincipal{}, errs.Mark(err, ErrSessionRevoked)
	}
	if sess.UserID != claims.UserID {
		return ResolvedPrincipal{}, ErrSessionRevoked
	}

	// ParseRole is total: a stale token carrying a role that no longer
	// exists degrades to RoleUnknown and fails closed downstream.
	principal := user.Principal{
		ID:            claims.UserID,
		Role:          user.ParseRole(claims.Role),
		Authenticated: true,
	}

	return ResolvedPrincipal{Principal: principal, SessionID: sess.ID}, nil
}
