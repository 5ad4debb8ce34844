package google

import (
	"context"
	"errors"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

var ErrInvalidIDToken = errors.New("invalid google id token")

// Profile is the subset of the Google identity the engine needs
type Profile struct {
	Email         string
	Name          string
	EmailVerified bool
}

// TokenVerifier validates a Google ID token and extracts the profile
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*Profile, error)
}

// Verifier validates ID tokens against the configured OAuth client id
type Verifier struct {
	clientID string
}

// NewVerifier creates a new ID token verifier
func NewVerifier(clientID string) *Verifier {
	return &Verifier{clientID: clientID}
}

// Verify checks the token signature and audience with Google and returns
// the embedded profile claims.
func (v *Verifier) Verify(ctx context.Context, token string) (*Profile, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, ErrInvalidIDToken
	}

	profile := &Profile{}
	if email, ok := payload.Claims["email"].(string); ok {
		profile.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		profile.Name = name
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		profile.EmailVerified = verified
	}
	if profile.Email == "" {
		return nil, ErrInvalidIDToken
	}
	return profile, nil
}

// CodeExchanger drives the browser redirect flow: it hands out the
// consent URL and turns the returned authorization code into an ID token.
type CodeExchanger interface {
	AuthURL(state string) string
	IDToken(ctx context.Context, code string) (string, error)
}

// Exchanger implements CodeExchanger over the Google OAuth endpoints
type Exchanger struct {
	config *oauth2.Config
}

// NewExchanger creates a code exchanger for the configured OAuth client
func NewExchanger(clientID, clientSecret, redirectURL string) *Exchanger {
	return &Exchanger{config: OAuthConfig(clientID, clientSecret, redirectURL)}
}

// AuthURL returns the Google consent page URL carrying the CSRF state
func (e *Exchanger) AuthURL(state string) string {
	return e.config.AuthCodeURL(state)
}

// IDToken exchanges the authorization code and extracts the id_token
func (e *Exchanger) IDToken(ctx context.Context, code string) (string, error) {
	token, err := e.config.Exchange(ctx, code)
	if err != nil {
		return "", ErrInvalidIDToken
	}
	return IDTokenFromExchange(token)
}

// OAuthConfig builds the oauth2 config for the browser redirect flow. The
// callback handler exchanges the code and reads the id_token extra.
func OAuthConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: googleoauth.Endpoint,
	}
}

// IDTokenFromExchange extracts the id_token from an exchanged oauth2 token.
func IDTokenFromExchange(token *oauth2.Token) (string, error) {
	raw, ok := token.Extra("id_token").(string)
	if !ok || raw == "" {
		return "", ErrInvalidIDToken
	}
	return raw, nil
}
