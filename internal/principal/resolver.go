package principal

import (
	"context"
	"net/http"

	"go-hrms/internal/security"
	"go-hrms/internal/shared/apperror"
)

var (
	ErrUserInactive = apperror.New(
		apperror.CodeUnauthorized,
		"user inactive or not found",
		http.StatusUnauthorized,
	)
	ErrMalformedToken = apperror.New(
		apperror.CodeUnauthorized,
		"malformed token",
		http.StatusUnauthorized,
	)
)

//go:generate mockgen -source=resolver.go -destination=mock/resolver_mock.go -package=mock

// Resolver turns a bearer token into a Principal. Roles and permissions are
// re-read from storage on every call; a revoked role takes effect on the
// next request at the cost of a query per request.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*Principal, error)
}

type resolver struct {
	tokens *security.TokenManager
	repo   Repository
}

func NewResolver(tokens *security.TokenManager, repo Repository) Resolver {
	return &resolver{tokens: tokens, repo: repo}
}

func (r *resolver) Resolve(ctx context.Context, token string) (*Principal, error) {
	claims, err := r.tokens.Decode(token)
	if err != nil {
		return nil, err
	}
	if err := security.AssertTokenType(claims, security.TokenTypeAccess); err != nil {
		return nil, err
	}

	sub, _ := claims["sub"].(string)
	orgID, _ := claims["org_id"].(string)
	if sub == "" || orgID == "" {
		return nil, ErrMalformedToken
	}

	user, err := r.repo.GetActiveUser(ctx, orgID, sub)
	if err != nil {
		return nil, ErrUserInactive
	}

	roles, err := r.repo.GetRoleNames(ctx, sub)
	if err != nil {
		return nil, err
	}
	permissions, err := r.repo.GetPermissionKeys(ctx, sub)
	if err != nil {
		return nil, err
	}
	employeeID, err := r.repo.GetEmployeeID(ctx, sub)
	if err != nil {
		return nil, err
	}

	return &Principal{
		UserID:      user.ID,
		OrgID:       user.OrgID,
		Roles:       roles,
		Permissions: permissions,
		EmployeeID:  employeeID,
	}, nil
}
