package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/audit"
	autherrors "go-hrms/internal/auth/errors"
	"go-hrms/internal/principal"
	"go-hrms/internal/security"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	org             *Organization
	user            *User
	lastLoginUpdate *time.Time
}

func (f *fakeRepo) GetOrgBySlug(ctx context.Context, slug string) (*Organization, error) {
	if f.org == nil || f.org.Slug != slug {
		return nil, errors.New("record not found")
	}
	return f.org, nil
}

func (f *fakeRepo) GetUserByEmail(ctx context.Context, orgID, email string) (*User, error) {
	if f.user == nil || f.user.Email != email || f.user.OrgID.String() != orgID {
		return nil, errors.New("record not found")
	}
	return f.user, nil
}

func (f *fakeRepo) GetUserByID(ctx context.Context, orgID, userID string) (*User, error) {
	if f.user == nil || f.user.ID.String() != userID || f.user.OrgID.String() != orgID {
		return nil, errors.New("record not found")
	}
	return f.user, nil
}

func (f *fakeRepo) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	f.lastLoginUpdate = &at
	return nil
}

type fakePrincipalRepo struct {
	roles []string
	perms []string
	empID *string
}

func (f *fakePrincipalRepo) GetActiveUser(ctx context.Context, orgID, userID string) (*principal.UserRow, error) {
	return &principal.UserRow{ID: userID, OrgID: orgID, IsActive: true}, nil
}
func (f *fakePrincipalRepo) GetRoleNames(ctx context.Context, userID string) ([]string, error) {
	return f.roles, nil
}
func (f *fakePrincipalRepo) GetPermissionKeys(ctx context.Context, userID string) ([]string, error) {
	return f.perms, nil
}
func (f *fakePrincipalRepo) GetEmployeeID(ctx context.Context, userID string) (*string, error) {
	return f.empID, nil
}

type auditSpy struct {
	entries []audit.Entry
}

func (a *auditSpy) Write(ctx context.Context, entry audit.Entry) {
	a.entries = append(a.entries, entry)
}

func newFixture(t *testing.T, password string) (*fakeRepo, *security.TokenManager, *auditSpy, Service) {
	t.Helper()

	hash, err := security.HashPassword(password)
	assert.NoError(t, err)

	orgID := uuid.New()
	repo := &fakeRepo{
		org: &Organization{ID: orgID, Slug: "acme", Status: "active"},
		user: &User{
			ID:           uuid.New(),
			OrgID:        orgID,
			Email:        "jo@acme.test",
			PasswordHash: hash,
			IsActive:     true,
		},
	}
	tokens := security.NewTokenManager("unit-secret", 15*time.Minute, time.Hour)
	spy := &auditSpy{}
	svc := NewService(repo, &fakePrincipalRepo{}, tokens, spy)
	return repo, tokens, spy, svc
}

func TestService_Login(t *testing.T) {
	repo, tokens, spy, svc := newFixture(t, "s3cret!")

	pair, err := svc.Login(context.Background(), LoginRequest{
		OrgSlug:  "acme",
		Email:    "jo@acme.test",
		Password: "s3cret!",
	}, RequestMeta{IP: "10.0.0.1", UserAgent: "tests"})
	assert.NoError(t, err)
	assert.NotNil(t, repo.lastLoginUpdate)

	claims, err := tokens.Decode(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, repo.user.ID.String(), claims["sub"])
	assert.Equal(t, repo.org.ID.String(), claims["org_id"])
	assert.Equal(t, security.TokenTypeAccess, claims["type"])

	refreshClaims, err := tokens.Decode(pair.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, security.TokenTypeRefresh, refreshClaims["type"])

	assert.Len(t, spy.entries, 1)
	assert.Equal(t, "auth.login", spy.entries[0].Action)
	assert.Equal(t, "10.0.0.1", spy.entries[0].IP)
}

func TestService_LoginCredentialFailuresIndistinguishable(t *testing.T) {
	_, _, _, svc := newFixture(t, "s3cret!")

	_, wrongPassword := svc.Login(context.Background(), LoginRequest{
		OrgSlug: "acme", Email: "jo@acme.test", Password: "nope",
	}, RequestMeta{})
	_, unknownEmail := svc.Login(context.Background(), LoginRequest{
		OrgSlug: "acme", Email: "ghost@acme.test", Password: "s3cret!",
	}, RequestMeta{})

	assert.ErrorIs(t, wrongPassword, autherrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, autherrors.ErrInvalidCredentials)
}

func TestService_LoginInactiveUser(t *testing.T) {
	repo, _, spy, svc := newFixture(t, "s3cret!")
	repo.user.IsActive = false

	_, err := svc.Login(context.Background(), LoginRequest{
		OrgSlug: "acme", Email: "jo@acme.test", Password: "s3cret!",
	}, RequestMeta{})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	assert.Empty(t, spy.entries)
}

func TestService_LoginUnknownOrg(t *testing.T) {
	_, _, _, svc := newFixture(t, "s3cret!")

	_, err := svc.Login(context.Background(), LoginRequest{
		OrgSlug: "globex", Email: "jo@acme.test", Password: "s3cret!",
	}, RequestMeta{})
	assert.ErrorIs(t, err, autherrors.ErrInvalidOrg)
}

func TestService_Refresh(t *testing.T) {
	repo, tokens, _, svc := newFixture(t, "s3cret!")

	refresh, err := tokens.CreateRefreshToken(repo.user.ID.String(), repo.org.ID.String())
	assert.NoError(t, err)

	pair, err := svc.Refresh(context.Background(), refresh)
	assert.NoError(t, err)

	claims, err := tokens.Decode(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, security.TokenTypeAccess, claims["type"])
}

func TestService_RefreshRejectsAccessToken(t *testing.T) {
	repo, tokens, _, svc := newFixture(t, "s3cret!")

	access, err := tokens.CreateAccessToken(repo.user.ID.String(), repo.org.ID.String())
	assert.NoError(t, err)

	_, err = svc.Refresh(context.Background(), access)
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}

func TestService_RefreshRejectsInactiveUser(t *testing.T) {
	repo, tokens, _, svc := newFixture(t, "s3cret!")
	repo.user.IsActive = false

	refresh, err := tokens.CreateRefreshToken(repo.user.ID.String(), repo.org.ID.String())
	assert.NoError(t, err)

	_, err = svc.Refresh(context.Background(), refresh)
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}

func TestService_MeRefetchesGrants(t *testing.T) {
	repo, tokens, _, _ := newFixture(t, "s3cret!")

	empID := uuid.New().String()
	pRepo := &fakePrincipalRepo{
		roles: []string{"HR"},
		perms: []string{"employee.read", "leave.approve"},
		empID: &empID,
	}
	svc := NewService(repo, pRepo, tokens, &auditSpy{})

	resp, err := svc.Me(context.Background(), &principal.Principal{
		UserID: repo.user.ID.String(),
		OrgID:  repo.org.ID.String(),
		// stale token-time grants; response must come from the repo
		Permissions: []string{},
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"HR"}, resp.Roles)
	assert.Equal(t, []string{"employee.read", "leave.approve"}, resp.Permissions)
	assert.Equal(t, &empID, resp.EmployeeID)
}
