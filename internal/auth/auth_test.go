package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthenticator(t *testing.T) (*StaticAuthenticator, *Tokens) {
	t.Helper()

	passwords, err := NewPasswords(bcrypt.MinCost, "pepper")
	require.NoError(t, err)
	hash, err := passwords.Hash("s3cret-pass")
	require.NoError(t, err)

	tokens, err := NewTokens("test-secret", time.Hour)
	require.NoError(t, err)

	a, err := NewStaticAuthenticator([]Account{{Email: "Admin@Example.com", PasswordHash: hash}}, passwords, tokens)
	require.NoError(t, err)
	return a, tokens
}

func TestPasswordsPepper(t *testing.T) {
	p, err := NewPasswords(bcrypt.MinCost, "pepper")
	require.NoError(t, err)

	hash, err := p.Hash("pw")
	require.NoError(t, err)
	assert.True(t, p.Verify("pw", hash))
	assert.False(t, p.Verify("pw2", hash))

	noPepper := &Passwords{Cost: bcrypt.MinCost}
	assert.False(t, noPepper.Verify("pw", hash))
}

func TestNewPasswordsCostRange(t *testing.T) {
	p, err := NewPasswords(0, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultBcryptCost, p.Cost)

	_, err = NewPasswords(99, "")
	assert.Error(t, err)
}

func TestAuthenticateSuccess(t *testing.T) {
	a, tokens := testAuthenticator(t)

	session, err := a.Authenticate(context.Background(), Credentials{Email: " admin@example.com ", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", session.Email)
	assert.NotEmpty(t, session.Token)

	claims, err := tokens.Validate(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.WithinDuration(t, session.ExpiresAt, claims.ExpiresAt.Time, time.Second)
}

func TestAuthenticateFailure(t *testing.T) {
	a, _ := testAuthenticator(t)

	cases := []Credentials{
		{Email: "admin@example.com", Password: "wrong"},
		{Email: "other@example.com", Password: "s3cret-pass"},
		{Email: "admin@example.com", Password: ""},
		{},
	}
	for _, c := range cases {
		session, err := a.Authenticate(context.Background(), c)
		assert.ErrorIs(t, err, ErrInvalidCredentials, "credentials %+v", c)
		assert.Nil(t, session)
	}
}

func TestNoBuiltInAccounts(t *testing.T) {
	passwords, _ := NewPasswords(bcrypt.MinCost, "")
	tokens, _ := NewTokens("secret", 0)
	a, err := NewStaticAuthenticator(nil, passwords, tokens)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Accounts())

	_, err = a.Authenticate(context.Background(), Credentials{Email: "admin@lendaria.com", Password: "888"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestNewStaticAuthenticatorRejectsIncompleteAccount(t *testing.T) {
	passwords, _ := NewPasswords(bcrypt.MinCost, "")
	tokens, _ := NewTokens("secret", 0)
	_, err := NewStaticAuthenticator([]Account{{Email: "a@b.c"}}, passwords, tokens)
	assert.Error(t, err)
}

func TestTokensValidate(t *testing.T) {
	tokens, err := NewTokens("secret", time.Minute)
	require.NoError(t, err)

	signed, _, err := tokens.Issue("a@b.c")
	require.NoError(t, err)

	other, _ := NewTokens("other-secret", time.Minute)
	_, err = other.Validate(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokens.Validate("")
	assert.ErrorIs(t, err, ErrInvalidToken)

	tampered := signed[:strings.LastIndex(signed, ".")] + ".AAAA"
	_, err = tokens.Validate(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)

	tokens.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = tokens.Validate(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokensRejectNonAdminRole(t *testing.T) {
	tokens, _ := NewTokens("secret", time.Minute)

	claims := &Claims{
		Email: "a@b.c",
		Role:  "candidate",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = tokens.Validate(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
