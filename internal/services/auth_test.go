package services

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	authadapter "societyportal/internal/adapters/auth"
	"societyportal/internal/domain"

	"github.com/stretchr/testify/require"
)

// fakeUserRepo implements domain.UserRepository for service tests.
type fakeUserRepo struct {
	users   map[string]*domain.User
	getErr  error
	upserts int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Upsert(ctx context.Context, user *domain.User) (*domain.User, error) {
	f.upserts++
	cp := *user
	cp.UpdatedAt = time.Now()
	f.users[user.ID] = &cp
	return &cp, nil
}

// fakeSessionRepo implements domain.SessionRepository for service tests.
type fakeSessionRepo struct {
	sessions  map[string]*domain.Session
	createErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *s
	f.sessions[s.ID] = &cp
	return nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	s, ok := f.sessions[id]
	if !ok || s.Expired() {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessionRepo) DeleteExpired(ctx context.Context) error { return nil }

func newTestAuthService(t *testing.T, userRepo domain.UserRepository, sessionRepo domain.SessionRepository) domain.AuthService {
	t.Helper()
	hasher := authadapter.NewBcryptHasher(bcrypt.MinCost)
	provider, err := authadapter.NewStaticCredentialProvider(hasher, authadapter.DemoAccounts)
	require.NoError(t, err)
	return NewAuthService(provider, hasher, userRepo, sessionRepo, time.Hour)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	svc := newTestAuthService(t, userRepo, sessionRepo)
	require.NoError(t, svc.SeedDemoUsers(ctx))

	user, session, err := svc.Login(ctx, "admin@cssh.us", "admin123")
	require.NoError(t, err)
	require.Equal(t, "1", user.ID)
	require.NotEmpty(t, session.ID)
	require.Equal(t, "1", session.UserID)
	require.True(t, session.ExpiresAt.After(time.Now()))

	stored, ok := sessionRepo.sessions[session.ID]
	require.True(t, ok)
	require.Equal(t, "1", stored.UserID)
}

func TestAuthService_LoginInvalidPassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, newFakeUserRepo(), newFakeSessionRepo())
	require.NoError(t, svc.SeedDemoUsers(ctx))

	_, _, err := svc.Login(ctx, "admin@cssh.us", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(t, newFakeUserRepo(), newFakeSessionRepo())
	_, _, err := svc.Login(context.Background(), "nobody@cssh.us", "admin123")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_LoginUserRecordMissing(t *testing.T) {
	// Credentials match but no User row exists: distinct failure from bad
	// credentials, still rejected.
	svc := newTestAuthService(t, newFakeUserRepo(), newFakeSessionRepo())
	_, _, err := svc.Login(context.Background(), "admin@cssh.us", "admin123")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	svc := newTestAuthService(t, userRepo, sessionRepo)
	require.NoError(t, svc.SeedDemoUsers(ctx))

	_, session, err := svc.Login(ctx, "member@cssh.us", "member123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, session.ID))
	_, err = svc.CurrentUser(ctx, session.ID)
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	// Logout without a session still succeeds.
	require.NoError(t, svc.Logout(ctx, ""))
	require.NoError(t, svc.Logout(ctx, "never-existed"))
}

func TestAuthService_CurrentUser(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	svc := newTestAuthService(t, userRepo, sessionRepo)
	require.NoError(t, svc.SeedDemoUsers(ctx))

	_, session, err := svc.Login(ctx, "admin@cssh.us", "admin123")
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, "1", user.ID)

	_, err = svc.CurrentUser(ctx, "")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = svc.CurrentUser(ctx, "unknown-token")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_CurrentUserExpiredSession(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	svc := newTestAuthService(t, userRepo, sessionRepo)
	require.NoError(t, svc.SeedDemoUsers(ctx))

	sessionRepo.sessions["stale"] = &domain.Session{
		ID: "stale", UserID: "1", ExpiresAt: time.Now().Add(-time.Minute),
	}
	_, err := svc.CurrentUser(ctx, "stale")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_SeedDemoUsersIsIdempotent(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	svc := newTestAuthService(t, userRepo, newFakeSessionRepo())

	require.NoError(t, svc.SeedDemoUsers(ctx))
	require.Len(t, userRepo.users, 2)
	first := userRepo.upserts

	require.NoError(t, svc.SeedDemoUsers(ctx))
	require.Len(t, userRepo.users, 2)
	require.Equal(t, first, userRepo.upserts, "existing users must not be re-upserted")
}
