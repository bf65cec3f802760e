package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bosta-shop/bosta/internal/catalog"
)

// ErrInvalidCredentials indicates login failure.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUsernameTaken indicates a signup collision in the local records.
var ErrUsernameTaken = errors.New("username already taken")

// LoginAPI is the slice of the upstream client used for authentication.
type LoginAPI interface {
	Login(ctx context.Context, username, password string) (*catalog.LoginResponse, error)
}

// Service is the session store plus the login/signup flows. The in-memory
// session is authoritative and written through to persistence on change;
// it hydrates once at construction so a restart stays logged in.
type Service struct {
	mu      sync.Mutex
	session Session

	repo   Repository
	api    LoginAPI
	logger *slog.Logger
}

// NewService constructs the auth service. The upstream client needs this
// service as its token source, so api is wired afterwards via SetAPI.
func NewService(ctx context.Context, repo Repository, api LoginAPI, logger *slog.Logger) *Service {
	s := &Service{repo: repo, api: api, logger: logger}
	if session, ok := repo.LoadSession(ctx); ok {
		s.session = session
	}
	return s
}

// SetAPI installs the upstream login client after construction.
func (s *Service) SetAPI(api LoginAPI) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.api = api
}

// SetAuth stores the token and optional user, replacing any prior session.
func (s *Service) SetAuth(ctx context.Context, token string, user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = Session{Token: token, User: user}
	if err := s.repo.SaveSession(ctx, s.session); err != nil && s.logger != nil {
		s.logger.Warn("persist session", slog.Any("error", err))
	}
}

// Logout clears the session in memory and in persistence.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = Session{}
	if err := s.repo.DeleteSession(ctx); err != nil && s.logger != nil {
		s.logger.Warn("clear session", slog.Any("error", err))
	}
}

// Token returns the current opaque token, empty when logged out. Satisfies
// catalog.TokenSource so outbound requests carry the bearer header.
func (s *Service) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Token
}

// Session returns a copy of the current session.
func (s *Service) Session() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Login authenticates against the upstream API; when the upstream rejects
// the credentials it falls back to the locally created signup records and
// mints a token itself. The token is opaque either way.
func (s *Service) Login(ctx context.Context, username, password string) (Session, error) {
	s.mu.Lock()
	api := s.api
	s.mu.Unlock()

	rejected := true
	if api != nil {
		res, err := api.Login(ctx, username, password)
		if err == nil {
			s.SetAuth(ctx, res.Token, &User{Username: username})
			return s.Session(), nil
		}
		var apiErr *catalog.APIError
		rejected = errors.As(err, &apiErr) &&
			(apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusBadRequest)
		if !rejected {
			return Session{}, err
		}
	}
	if !s.matchLocalCredentials(ctx, username, password) {
		return Session{}, ErrInvalidCredentials
	}
	s.SetAuth(ctx, uuid.NewString(), &User{Username: username})
	return s.Session(), nil
}

// Signup stores a hashed local credential record. The upstream supports no
// real signup, so accounts created here only authenticate on this client.
func (s *Service) Signup(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	creds, _ := s.repo.LoadCredentials(ctx)
	for _, c := range creds {
		if c.Username == username {
			return ErrUsernameTaken
		}
	}
	creds = append(creds, Credentials{Username: username, PasswordHash: string(hash)})
	return s.repo.SaveCredentials(ctx, creds)
}

func (s *Service) matchLocalCredentials(ctx context.Context, username, password string) bool {
	s.mu.Lock()
	creds, _ := s.repo.LoadCredentials(ctx)
	s.mu.Unlock()
	for _, c := range creds {
		if c.Username != username {
			continue
		}
		return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
	}
	return false
}
