// internal/app/system/credentials/service.go

// Package credentials orchestrates signup, login, and token-based identity
// over the user store, organization store, password hasher, and token
// codec.
package credentials

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	orgstore "github.com/harmonyhealth/harmony/internal/app/store/organizations"
	userstore "github.com/harmonyhealth/harmony/internal/app/store/users"
	"github.com/harmonyhealth/harmony/internal/app/system/auditlog"
	"github.com/harmonyhealth/harmony/internal/app/system/normalize"
	"github.com/harmonyhealth/harmony/internal/app/system/password"
	"github.com/harmonyhealth/harmony/internal/app/system/token"
	"github.com/harmonyhealth/harmony/internal/domain/models"
)

var (
	// ErrMissingCredentials is returned when email or password is empty.
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrInvalidRole is returned for a role outside doctor|organization|admin.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidCredentials is returned for every login failure, unknown
	// email and wrong password alike, so callers cannot tell which factor
	// was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// profileOrgIDKey is the profile key that back-references the organization
// created during an organization-role signup.
const profileOrgIDKey = "organizationId"

// Service implements the credential and session operations.
type Service struct {
	users userstore.Store
	orgs  orgstore.Store
	codec *token.Codec
	audit *auditlog.Logger
	log   *zap.Logger
}

// New wires a credential service.
func New(users userstore.Store, orgs orgstore.Store, codec *token.Codec, audit *auditlog.Logger, logger *zap.Logger) *Service {
	return &Service{users: users, orgs: orgs, codec: codec, audit: audit, log: logger}
}

// Signup registers a new account and returns it with a fresh bearer token.
//
// For organization-role signups that carry an organization name in the
// profile, an Organization record is created and back-referenced from the
// user's profile. That linkage is best-effort: user creation is the primary
// effect, and a linkage failure is audited but never fails the signup.
func (s *Service) Signup(ctx context.Context, email, plaintext, role string, profile map[string]any) (models.User, string, error) {
	email = normalize.Email(email)
	if email == "" || plaintext == "" {
		return models.User{}, "", ErrMissingCredentials
	}

	role = normalize.Role(role)
	if role == "" {
		role = models.RoleDoctor
	}
	if !models.ValidRole(role) {
		return models.User{}, "", ErrInvalidRole
	}

	// Pre-check for a friendly conflict. Not atomic with the create; the
	// store's own uniqueness check catches the race below.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		s.audit.SignupConflict(ctx, email)
		return models.User{}, "", userstore.ErrDuplicateEmail
	} else if !errors.Is(err, userstore.ErrNotFound) {
		return models.User{}, "", fmt.Errorf("signup lookup: %w", err)
	}

	digest, err := password.Hash(plaintext)
	if err != nil {
		return models.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, models.User{
		Email:        email,
		PasswordHash: digest,
		Role:         role,
		Profile:      profile,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			s.audit.SignupConflict(ctx, email)
		}
		return models.User{}, "", err
	}

	if role == models.RoleOrganization {
		if orgName := user.OrganizationName(); orgName != "" {
			user = s.linkOrganization(ctx, user, orgName)
		}
	}

	tok, err := s.codec.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return models.User{}, "", fmt.Errorf("issue token: %w", err)
	}

	s.audit.SignupCompleted(ctx, user.ID, user.Email)
	return user, tok, nil
}

// linkOrganization creates (or finds) the organization named in the signup
// profile and attaches its ID to the user's profile. Every failure path is
// non-fatal: the user returned to the caller reflects whatever portion
// succeeded, and the failure is recorded through the audit side-channel.
func (s *Service) linkOrganization(ctx context.Context, user models.User, orgName string) models.User {
	org, err := s.orgs.Create(ctx, orgName, user.ID)
	if errors.Is(err, orgstore.ErrDuplicateSlug) {
		// The organization already exists; link to it instead.
		org, err = s.orgs.FindBySlug(ctx, normalize.Slug(orgName))
	}
	if err != nil {
		s.audit.OrgLinkageFailed(ctx, user.ID, user.Email, orgName, "create", err)
		return user
	}

	if err := s.users.UpdateProfile(ctx, user.ID, map[string]any{profileOrgIDKey: org.ID}); err != nil {
		s.audit.OrgLinkageFailed(ctx, user.ID, user.Email, orgName, "attach", err)
		return user
	}

	profile := user.CloneProfile()
	if profile == nil {
		profile = make(map[string]any, 1)
	}
	profile[profileOrgIDKey] = org.ID
	user.Profile = profile
	return user
}

// Login verifies credentials and returns the user with a fresh token. Every
// login issues a new token; there is no session reuse.
func (s *Service) Login(ctx context.Context, email, plaintext string) (models.User, string, error) {
	email = normalize.Email(email)
	if email == "" || plaintext == "" {
		return models.User{}, "", ErrMissingCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, userstore.ErrNotFound) {
		s.audit.LoginFailed(ctx, email, "user not found")
		return models.User{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, "", fmt.Errorf("login lookup: %w", err)
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		s.audit.LoginFailed(ctx, email, "wrong password")
		return models.User{}, "", ErrInvalidCredentials
	}

	tok, err := s.codec.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return models.User{}, "", fmt.Errorf("issue token: %w", err)
	}

	s.audit.LoginSuccess(ctx, user.ID, user.Email)
	return user, tok, nil
}

// Authenticate verifies a bearer token and returns its claims, or
// token.ErrInvalidToken.
func (s *Service) Authenticate(raw string) (token.Claims, error) {
	return s.codec.Verify(raw)
}

// CurrentUser resolves the account behind verified claims. The ID lookup
// falls back to email: a token issued against one backend may be presented
// after the active backend changed, in which case the email is the stable
// handle.
func (s *Service) CurrentUser(ctx context.Context, claims token.Claims) (models.User, error) {
	user, err := s.users.FindByID(ctx, claims.SubjectID())
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, userstore.ErrNotFound) {
		return models.User{}, fmt.Errorf("current user lookup: %w", err)
	}
	if claims.Email == "" {
		return models.User{}, userstore.ErrNotFound
	}
	return s.users.FindByEmail(ctx, claims.Email)
}

// Logout records the logout request. Tokens are stateless, so this cannot
// invalidate a still-live token server-side; clients discard the token.
func (s *Service) Logout(ctx context.Context, userID string) {
	s.audit.Logout(ctx, userID)
}
