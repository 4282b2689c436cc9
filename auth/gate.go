// Package auth implements the shared-passcode admin gate. It is a
// convenience lock for a single shop owner, not user authentication.
package auth

import (
	"errors"
	"time"

	"github.com/o1egl/paseto"
	"golang.org/x/crypto/bcrypt"

	"connectfit-backend/models"
)

const (
	tokenFooter  = "connectfit-admin"
	tokenSubject = "adm"
	DefaultTTL   = 24 * time.Hour
)

var (
	ErrWrongPasscode = errors.New("wrong passcode")
	ErrInvalidToken  = errors.New("invalid or expired token")
)

// Gate checks the admin passcode and issues PASETO v2 local tokens for the
// ADM role.
type Gate struct {
	hash []byte
	key  []byte
	ttl  time.Duration
	now  func() time.Time
}

// NewGate hashes passcode once; key must be 32 bytes.
func NewGate(passcode string, key []byte, ttl time.Duration) (*Gate, error) {
	if len(key) != 32 {
		return nil, errors.New("token key must be 32 bytes")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Gate{hash: hash, key: key, ttl: ttl, now: time.Now}, nil
}

// Check reports whether passcode matches the configured one.
func (g *Gate) Check(passcode string) bool {
	return bcrypt.CompareHashAndPassword(g.hash, []byte(passcode)) == nil
}

// Login runs the session transition and, on success, returns a token that
// proves the ADM role on later requests.
func (g *Gate) Login(session models.Session, passcode string) (models.Session, string, error) {
	ok := g.Check(passcode)
	next := session.Login(passcode, func(string) bool { return ok })
	if !ok {
		return next, "", ErrWrongPasscode
	}
	token, _, err := g.Issue()
	if err != nil {
		return session, "", err
	}
	return next, token, nil
}

// Issue creates a fresh admin token and returns its expiry.
func (g *Gate) Issue() (string, time.Time, error) {
	now := g.now()
	exp := now.Add(g.ttl)
	jsonToken := paseto.JSONToken{
		Subject:    tokenSubject,
		IssuedAt:   now,
		NotBefore:  now,
		Expiration: exp,
	}
	jsonToken.Set("role", string(models.RoleAdmin))
	token, err := paseto.NewV2().Encrypt(g.key, jsonToken, tokenFooter)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// Verify decrypts token and checks that it is a current admin token.
func (g *Gate) Verify(token string) error {
	var (
		jsonToken paseto.JSONToken
		footer    string
	)
	if err := paseto.NewV2().Decrypt(token, g.key, &jsonToken, &footer); err != nil {
		return ErrInvalidToken
	}
	if footer != tokenFooter {
		return ErrInvalidToken
	}
	if err := jsonToken.Validate(paseto.ValidAt(g.now()), paseto.Subject(tokenSubject)); err != nil {
		return ErrInvalidToken
	}
	if jsonToken.Get("role") != string(models.RoleAdmin) {
		return ErrInvalidToken
	}
	return nil
}
