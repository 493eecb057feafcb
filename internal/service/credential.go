package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/germangodoy93/FinanzasBackend/internal/models"
	"github.com/germangodoy93/FinanzasBackend/internal/store"
	"github.com/germangodoy93/FinanzasBackend/internal/util"
)

// CredentialService registers users and verifies logins. Secrets are stored
// only as salted one-way hashes, never verbatim.
type CredentialService struct {
	creds *store.Credentials
}

func NewCredentialService(creds *store.Credentials) *CredentialService {
	return &CredentialService{creds: creds}
}

// Register creates a new user. ErrInvalidInput on empty email or secret,
// ErrUserExists when the email is already registered.
func (s *CredentialService) Register(ctx context.Context, email, secret string) error {
	if email == "" || secret == "" {
		return ErrInvalidInput
	}

	hash, err := util.HashSecret(secret)
	if err != nil {
		return fmt.Errorf("hash secret: %w", err)
	}

	err = s.creds.Insert(ctx, &models.Credential{Email: email, SecretHash: hash})
	if errors.Is(err, store.ErrDuplicateKey) {
		return ErrUserExists
	}
	return err
}

// Login verifies email+secret. Email matching is byte-exact; the secret is
// checked against the stored hash in constant time. An unknown email and a
// wrong secret are indistinguishable to the caller.
func (s *CredentialService) Login(ctx context.Context, email, secret string) error {
	cred, err := s.creds.GetByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}

	if !util.CheckSecret(secret, cred.SecretHash) {
		return ErrInvalidCredentials
	}
	return nil
}
