package auth

import (
	"context"
	"time"

	"go-hrms/internal/audit"
	autherrors "go-hrms/internal/auth/errors"
	"go-hrms/internal/principal"
	"go-hrms/internal/security"

	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest, meta RequestMeta) (TokenPairResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPairResponse, error)
	Me(ctx context.Context, p *principal.Principal) (*MeResponse, error)
}

type service struct {
	repo          Repository
	principalRepo principal.Repository
	tokens        *security.TokenManager
	audit         audit.Writer
	logger        *zap.Logger
}

func NewService(
	repo Repository,
	principalRepo principal.Repository,
	tokens *security.TokenManager,
	auditWriter audit.Writer,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		repo:          repo,
		principalRepo: principalRepo,
		tokens:        tokens,
		audit:         auditWriter,
		logger:        l,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest, meta RequestMeta) (TokenPairResponse, error) {
	s.logger.Debug("login requested", zap.String("org_slug", req.OrgSlug))

	org, err := s.repo.GetOrgBySlug(ctx, req.OrgSlug)
	if err != nil {
		return TokenPairResponse{}, autherrors.ErrInvalidOrg
	}

	user, err := s.repo.GetUserByEmail(ctx, org.ID.String(), req.Email)
	if err != nil || !user.IsActive {
		return TokenPairResponse{}, autherrors.ErrInvalidCredentials
	}
	if !security.VerifyPassword(req.Password, user.PasswordHash) {
		s.logger.Warn("login password mismatch", zap.String("org_id", org.ID.String()))
		return TokenPairResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := s.repo.UpdateLastLogin(ctx, user.ID.String(), time.Now().UTC()); err != nil {
		s.logger.Error("update last login failed", zap.Error(err))
		return TokenPairResponse{}, err
	}

	pair, err := s.issuePair(user.ID.String(), org.ID.String())
	if err != nil {
		return TokenPairResponse{}, err
	}

	s.audit.Write(ctx, audit.Entry{
		OrgID:       org.ID.String(),
		ActorUserID: user.ID.String(),
		Action:      "auth.login",
		EntityType:  "user",
		EntityID:    user.ID.String(),
		IP:          meta.IP,
		UserAgent:   meta.UserAgent,
		Metadata:    map[string]any{"email": req.Email},
	})

	s.logger.Info("login success", zap.String("org_id", org.ID.String()))
	return pair, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (TokenPairResponse, error) {
	claims, err := s.tokens.Decode(refreshToken)
	if err != nil {
		return TokenPairResponse{}, autherrors.ErrInvalidRefreshToken
	}
	if err := security.AssertTokenType(claims, security.TokenTypeRefresh); err != nil {
		return TokenPairResponse{}, autherrors.ErrInvalidRefreshToken
	}

	sub, _ := claims["sub"].(string)
	orgID, _ := claims["org_id"].(string)
	if sub == "" || orgID == "" {
		return TokenPairResponse{}, autherrors.ErrInvalidRefreshToken
	}

	user, err := s.repo.GetUserByID(ctx, orgID, sub)
	if err != nil || !user.IsActive {
		return TokenPairResponse{}, autherrors.ErrInvalidRefreshToken
	}

	return s.issuePair(sub, orgID)
}

// Me re-reads grants from storage so the response reflects role changes made
// after the token was issued.
func (s *service) Me(ctx context.Context, p *principal.Principal) (*MeResponse, error) {
	roles, err := s.principalRepo.GetRoleNames(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	permissions, err := s.principalRepo.GetPermissionKeys(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	employeeID, err := s.principalRepo.GetEmployeeID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	return &MeResponse{
		UserID:      p.UserID,
		OrgID:       p.OrgID,
		Roles:       roles,
		Permissions: permissions,
		EmployeeID:  employeeID,
	}, nil
}

func (s *service) issuePair(userID, orgID string) (TokenPairResponse, error) {
	access, err := s.tokens.CreateAccessToken(userID, orgID)
	if err != nil {
		return TokenPairResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refresh, err := s.tokens.CreateRefreshToken(userID, orgID)
	if err != nil {
		return TokenPairResponse{}, autherrors.ErrTokenGenerationFailed
	}
	return TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, nil
}
