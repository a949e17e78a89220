package services

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

// GoogleIdentity is the verified payload of a Google-issued ID token. It
// carries facts from the trust boundary only; resolving it to a local
// account is the directory's job.
type GoogleIdentity struct {
	Subject    string
	Name       string
	GivenName  string
	FamilyName string
	Email      string
	Picture    string
}

// IdentityVerifier validates an externally issued identity assertion.
// The production implementation talks to Google; tests substitute their own.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, rawToken string) (GoogleIdentity, error)
}

type GoogleVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewGoogleVerifier discovers Google's OIDC configuration and prepares a
// verifier bound to our OAuth client id, the same audience check the
// original web client relies on.
func NewGoogleVerifier(ctx context.Context, clientID string) (*GoogleVerifier, error) {
	if len(clientID) == 0 {
		return nil, fmt.Errorf("google client id is not configured")
	}

	provider, err := oidc.NewProvider(ctx, "https://accounts.google.com")
	if err != nil {
		return nil, fmt.Errorf("unable to discover google oidc provider: %w", err)
	}

	return &GoogleVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
	}, nil
}

func (v *GoogleVerifier) VerifyIDToken(ctx context.Context, rawToken string) (GoogleIdentity, error) {
	var identity GoogleIdentity

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return identity, fmt.Errorf("%w: google id token verification failed: %v", ErrUnauthenticated, err)
	}

	var claims struct {
		Name       string `json:"name"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
		Email      string `json:"email"`
		Picture    string `json:"picture"`
	}
	if err := token.Claims(&claims); err != nil {
		return identity, fmt.Errorf("%w: unable to parse google id token claims: %v", ErrUnauthenticated, err)
	}

	identity = GoogleIdentity{
		Subject:    token.Subject,
		Name:       claims.Name,
		GivenName:  claims.GivenName,
		FamilyName: claims.FamilyName,
		Email:      claims.Email,
		Picture:    claims.Picture,
	}

	if len(identity.Subject) == 0 {
		return identity, fmt.Errorf("%w: google id token has no subject", ErrUnauthenticated)
	}

	return identity, nil
}
