package auth

import (
	"context"

	"github.com/bosta-shop/bosta/internal/platform/blob"
)

const (
	sessionKey     = "bosta:session"
	credentialsKey = "bosta:signup-credentials"
)

// Repository persists the session and the locally created credentials.
type Repository interface {
	LoadSession(ctx context.Context) (Session, bool)
	SaveSession(ctx context.Context, session Session) error
	DeleteSession(ctx context.Context) error
	LoadCredentials(ctx context.Context) ([]Credentials, bool)
	SaveCredentials(ctx context.Context, creds []Credentials) error
}

type blobRepository struct {
	store *blob.Store
}

// NewRepository builds a Repository over the shared blob store.
func NewRepository(store *blob.Store) Repository {
	return &blobRepository{store: store}
}

func (r *blobRepository) LoadSession(ctx context.Context) (Session, bool) {
	var session Session
	if !r.store.Load(ctx, sessionKey, &session) || session.Token == "" {
		return Session{}, false
	}
	return session, true
}

func (r *blobRepository) SaveSession(ctx context.Context, session Session) error {
	return r.store.Save(ctx, sessionKey, session)
}

func (r *blobRepository) DeleteSession(ctx context.Context) error {
	return r.store.Delete(ctx, sessionKey)
}

func (r *blobRepository) LoadCredentials(ctx context.Context) ([]Credentials, bool) {
	var creds []Credentials
	if !r.store.Load(ctx, credentialsKey, &creds) {
		return nil, false
	}
	return creds, true
}

func (r *blobRepository) SaveCredentials(ctx context.Context, creds []Credentials) error {
	return r.store.Save(ctx, credentialsKey, creds)
}
