package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/inklet-app/inklet/pkg/internal/models"
)

// TokenValidity is the fixed lifetime of issued bearer tokens.
const TokenValidity = 24 * time.Hour

type AuthClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Auth issues and validates the service's own bearer tokens. The subject
// claim carries the internal account id, not the Google subject.
type Auth struct {
	secret   []byte
	accounts *Accounts
}

func NewAuth(secret []byte, accounts *Accounts) *Auth {
	return &Auth{secret: secret, accounts: accounts}
}

func (s *Auth) IssueToken(account models.Account) (string, error) {
	claims := AuthClaims{
		Email: account.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(account.ID), 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenValidity)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return token, fmt.Errorf("unable to sign token: %w", err)
	}
	return token, nil
}

// Authenticate resolves a bearer credential to the owning account. Any
// parse, signature, expiry or lookup failure collapses into
// ErrUnauthenticated; callers get no hint which check failed.
func (s *Auth) Authenticate(credential string) (models.Account, error) {
	var claims AuthClaims

	token, err := jwt.ParseWithClaims(
		credential,
		&claims,
		func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return models.Account{}, fmt.Errorf("%w: invalid credential", ErrUnauthenticated)
	}

	uid, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: malformed subject claim", ErrUnauthenticated)
	}

	account, err := s.accounts.GetAccount(uint(uid))
	if err != nil {
		return account, fmt.Errorf("%w: credential subject does not resolve", ErrUnauthenticated)
	}

	return account, nil
}

// AuthorizeOwner is the single ownership rule of the whole system: strict
// id equality between the acting account and the resource owner.
func AuthorizeOwner(actor models.Account, ownerID uint) error {
	if actor.ID != ownerID {
		return fmt.Errorf("%w: you are not the owner of this resource", ErrNotAuthorized)
	}
	return nil
}
