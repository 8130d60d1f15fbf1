package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	jose "github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"wayfinder/internal/domain"
)

// clockSkew is the allowed margin between issuer and validator clocks when
// checking expiry.
const clockSkew = 5 * time.Minute

// encryptionKeyLen is the A256KW key-wrapping key length in bytes.
const encryptionKeyLen = 32

// Identity is the payload carried inside a validated token. It is
// reconstructed per request and never persisted.
type Identity struct {
	UserID int64
	Email  string
}

type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and validates encrypted, signed bearer tokens. The
// claims are signed with HS256 and the resulting compact JWS is wrapped in a
// compact JWE (A256KW key wrap, A256CBC-HS512 content encryption), so the
// token is opaque without the encryption key and tamper-evident under the
// signing key.
type TokenService struct {
	signingKey    []byte
	encryptionKey []byte
	issuer        string
	audience      string
	ttl           time.Duration
	encrypter     jose.Encrypter
}

// NewTokenService builds a TokenService. A blank signing or encryption secret
// is a fatal configuration error reported here, not at first use.
//
// The encryption secret is truncated or right-padded with '0' to the 32 bytes
// A256KW requires. That is a carry-over simplification, not a hardening
// measure; secrets from low-entropy sources should go through a KDF instead.
func NewTokenService(signingKey, encryptionKey, issuer, audience string, ttl time.Duration) (*TokenService, error) {
	if strings.TrimSpace(signingKey) == "" {
		return nil, errors.New("token signing key is required")
	}
	if strings.TrimSpace(encryptionKey) == "" {
		return nil, errors.New("token encryption key is required")
	}

	key := padKey(encryptionKey, encryptionKeyLen)

	encrypter, err := jose.NewEncrypter(
		jose.A256CBC_HS512,
		jose.Recipient{Algorithm: jose.A256KW, Key: key},
		(&jose.EncrypterOptions{}).WithContentType("JWT"),
	)
	if err != nil {
		return nil, fmt.Errorf("build token encrypter: %w", err)
	}

	return &TokenService{
		signingKey:    []byte(signingKey),
		encryptionKey: key,
		issuer:        issuer,
		audience:      audience,
		ttl:           ttl,
		encrypter:     encrypter,
	}, nil
}

// Issue creates a token for the given user. Each call produces a distinct
// token (fresh jti and timestamps).
func (s *TokenService) Issue(userID int64, email string) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	obj, err := s.encrypter.Encrypt([]byte(signed))
	if err != nil {
		return "", fmt.Errorf("encrypt token: %w", err)
	}

	compact, err := obj.CompactSerialize()
	if err != nil {
		return "", fmt.Errorf("serialize token: %w", err)
	}
	return compact, nil
}

// Validate decrypts and verifies a token and returns the embedded identity.
// Every failure, whatever the stage or cause, collapses to
// domain.ErrInvalidToken so callers cannot be used as a validation oracle.
func (s *TokenService) Validate(token string) (identity Identity, err error) {
	defer func() {
		// A crypto or parsing fault must never escape this boundary.
		if r := recover(); r != nil {
			identity = Identity{}
			err = domain.ErrInvalidToken
		}
	}()

	obj, err := jose.ParseEncrypted(token,
		[]jose.KeyAlgorithm{jose.A256KW},
		[]jose.ContentEncryption{jose.A256CBC_HS512},
	)
	if err != nil {
		return Identity{}, domain.ErrInvalidToken
	}

	inner, err := obj.Decrypt(s.encryptionKey)
	if err != nil {
		return Identity{}, domain.ErrInvalidToken
	}

	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(string(inner), claims,
		func(*jwt.Token) (any, error) { return s.signingKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithLeeway(clockSkew),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return Identity{}, domain.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return Identity{}, domain.ErrInvalidToken
	}

	return Identity{UserID: userID, Email: claims.Email}, nil
}

// ExpirationTime reports when a token issued now would expire. It is response
// metadata only; validation relies solely on the exp claim.
func (s *TokenService) ExpirationTime() time.Time {
	return time.Now().UTC().Add(s.ttl)
}

func padKey(key string, length int) []byte {
	if len(key) >= length {
		return []byte(key[:length])
	}
	padded := make([]byte, length)
	copy(padded, key)
	for i := len(key); i < length; i++ {
		padded[i] = '0'
	}
	return padded
}
