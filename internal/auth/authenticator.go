package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is an authenticated admin.
type Session struct {
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (*Session, error)
}

// Account is an admin login from configuration.
type Account struct {
	Email        string `mapstructure:"email"`
	PasswordHash string `mapstructure:"password-hash"`
}

// StaticAuthenticator checks credentials against configured accounts.
type StaticAuthenticator struct {
	accounts  map[string]string
	passwords *Passwords
	tokens    *Tokens
	dummyHash string
}

var _ Authenticator = (*StaticAuthenticator)(nil)

func NewStaticAuthenticator(accounts []Account, passwords *Passwords, tokens *Tokens) (*StaticAuthenticator, error) {
	if passwords == nil || tokens == nil {
		return nil, errors.New("passwords and tokens are required")
	}

	byEmail := make(map[string]string, len(accounts))
	for i, a := range accounts {
		email := normalizeEmail(a.Email)
		if email == "" || strings.TrimSpace(a.PasswordHash) == "" {
			return nil, fmt.Errorf("admin account %d: email and password-hash are required", i)
		}
		byEmail[email] = strings.TrimSpace(a.PasswordHash)
	}

	// Unknown emails are compared against this hash so both paths cost one bcrypt run.
	seed := make([]byte, 16)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("generate dummy password: %w", err)
	}
	dummy, err := passwords.Hash(hex.EncodeToString(seed))
	if err != nil {
		return nil, err
	}

	return &StaticAuthenticator{
		accounts:  byEmail,
		passwords: passwords,
		tokens:    tokens,
		dummyHash: dummy,
	}, nil
}

func (a *StaticAuthenticator) Authenticate(ctx context.Context, creds Credentials) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	email := normalizeEmail(creds.Email)
	hash, known := a.accounts[email]
	if !known {
		hash = a.dummyHash
	}
	if !a.passwords.Verify(creds.Password, hash) || !known || creds.Password == "" {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := a.tokens.Issue(email)
	if err != nil {
		return nil, err
	}
	return &Session{Email: email, Token: token, ExpiresAt: expiresAt}, nil
}

// Accounts reports how many admin logins are configured.
func (a *StaticAuthenticator) Accounts() int {
	return len(a.accounts)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
