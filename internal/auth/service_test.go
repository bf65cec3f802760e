package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bosta-shop/bosta/internal/catalog"
)

// ============================================================================
// MOCKS
// ============================================================================

type mockRepository struct {
	session    Session
	hasSession bool
	creds      []Credentials
	hasCreds   bool
	deletes    int
}

func (m *mockRepository) LoadSession(ctx context.Context) (Session, bool) {
	return m.session, m.hasSession
}

func (m *mockRepository) SaveSession(ctx context.Context, session Session) error {
	m.session = session
	m.hasSession = true
	return nil
}

func (m *mockRepository) DeleteSession(ctx context.Context) error {
	m.session = Session{}
	m.hasSession = false
	m.deletes++
	return nil
}

func (m *mockRepository) LoadCredentials(ctx context.Context) ([]Credentials, bool) {
	return m.creds, m.hasCreds
}

func (m *mockRepository) SaveCredentials(ctx context.Context, creds []Credentials) error {
	m.creds = creds
	m.hasCreds = true
	return nil
}

type mockLoginAPI struct {
	token string
	err   error
	calls int
}

func (m *mockLoginAPI) Login(ctx context.Context, username, password string) (*catalog.LoginResponse, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &catalog.LoginResponse{Token: m.token}, nil
}

func TestLoginUpstreamSuccess(t *testing.T) {
	repo := &mockRepository{}
	api := &mockLoginAPI{token: "upstream-jwt"}
	svc := NewService(context.Background(), repo, api, nil)

	session, err := svc.Login(context.Background(), "mor_2314", "83r5^_")
	require.NoError(t, err)

	assert.Equal(t, "upstream-jwt", session.Token)
	require.NotNil(t, session.User)
	assert.Equal(t, "mor_2314", session.User.Username)

	assert.Equal(t, "upstream-jwt", svc.Token())
	assert.Equal(t, "upstream-jwt", repo.session.Token, "session written through")
}

func TestLoginRejectionFallsBackToLocalAccounts(t *testing.T) {
	repo := &mockRepository{}
	api := &mockLoginAPI{err: &catalog.APIError{Message: "username or password is incorrect", Status: http.StatusUnauthorized}}
	svc := NewService(context.Background(), repo, api, nil)

	require.NoError(t, svc.Signup(context.Background(), "alice", "s3cret"))

	session, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token, "a locally minted token is issued")
	require.NotNil(t, session.User)
	assert.Equal(t, "alice", session.User.Username)
}

func TestLoginRejectionWithoutLocalMatchFails(t *testing.T) {
	repo := &mockRepository{}
	api := &mockLoginAPI{err: &catalog.APIError{Message: "username or password is incorrect", Status: http.StatusUnauthorized}}
	svc := NewService(context.Background(), repo, api, nil)

	require.NoError(t, svc.Signup(context.Background(), "alice", "s3cret"))

	_, err := svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, svc.Token(), "failed login leaves no session behind")
}

func TestLoginTransportFailurePropagates(t *testing.T) {
	repo := &mockRepository{}
	upstreamErr := &catalog.APIError{Message: "connection refused", Status: 0}
	api := &mockLoginAPI{err: upstreamErr}
	svc := NewService(context.Background(), repo, api, nil)

	// A transport failure is not a rejection, so the local fallback must not
	// swallow it.
	require.NoError(t, svc.Signup(context.Background(), "alice", "s3cret"))
	_, err := svc.Login(context.Background(), "alice", "s3cret")
	assert.ErrorIs(t, err, upstreamErr)
}

func TestSignupRejectsDuplicateUsername(t *testing.T) {
	svc := NewService(context.Background(), &mockRepository{}, nil, nil)

	require.NoError(t, svc.Signup(context.Background(), "alice", "s3cret"))
	err := svc.Signup(context.Background(), "alice", "different")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestSignupStoresHashedPassword(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(context.Background(), repo, nil, nil)

	require.NoError(t, svc.Signup(context.Background(), "alice", "s3cret"))
	require.Len(t, repo.creds, 1)
	assert.NotContains(t, repo.creds[0].PasswordHash, "s3cret")
}

func TestLogoutClearsSessionEverywhere(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(context.Background(), repo, nil, nil)
	svc.SetAuth(context.Background(), "tok", &User{Username: "alice"})

	svc.Logout(context.Background())
	assert.Empty(t, svc.Token())
	assert.Nil(t, svc.Session().User)
	assert.Equal(t, 1, repo.deletes)
}

func TestSessionHydratesAtConstruction(t *testing.T) {
	repo := &mockRepository{
		session:    Session{Token: "persisted", User: &User{Username: "alice"}},
		hasSession: true,
	}
	svc := NewService(context.Background(), repo, nil, nil)
	assert.Equal(t, "persisted", svc.Token())
}

func TestLoginWithoutAPIUsesLocalAccounts(t *testing.T) {
	svc := NewService(context.Background(), &mockRepository{}, nil, nil)
	require.NoError(t, svc.Signup(context.Background(), "alice", "s3cret"))

	session, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
}
