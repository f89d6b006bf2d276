// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-mail-sync/internal/config"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
)

// oauthClient implements [OAuthAdapter] against the Microsoft identity
// platform v2.0 endpoints.
type oauthClient struct {
	client *resty.Client

	clientID     string
	clientSecret string
	redirectURI  string
	authorizeURL string
	tokenURL     string
	scope        string

	logger *logger.Logger
}

// NewOAuthClient constructs an [OAuthAdapter] from the registered OAuth
// application settings.
func NewOAuthClient(cfg config.Outlook, log *logger.Logger) OAuthAdapter {
	return &oauthClient{
		client:       resty.New(),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		redirectURI:  cfg.RedirectURI,
		authorizeURL: cfg.AuthorizeURL,
		tokenURL:     cfg.TokenURL,
		scope:        cfg.Scope,
		logger:       log,
	}
}

// BuildAuthorizeURL implements [OAuthAdapter]. The returned URL sends the
// user through the consent screen and back to the registered redirect URI
// with an authorization code.
func (o *oauthClient) BuildAuthorizeURL(state string) string {
	params := url.Values{}
	params.Set("client_id", o.clientID)
	params.Set("response_type", "code")
	params.Set("redirect_uri", o.redirectURI)
	params.Set("scope", o.scope)
	params.Set("state", state)
	params.Set("prompt", "consent")

	return o.authorizeURL + "?" + params.Encode()
}

// ExchangeCode implements [OAuthAdapter]: a form-encoded POST of the
// authorization code to the token endpoint. A response missing either the
// access or refresh token is rejected with [ErrMissingTokens].
func (o *oauthClient) ExchangeCode(ctx context.Context, code string) (TokenSet, error) {
	var tokens TokenSet

	resp, err := o.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"client_id":     o.clientID,
			"client_secret": o.clientSecret,
			"grant_type":    "authorization_code",
			"code":          code,
			"redirect_uri":  o.redirectURI,
			"scope":         o.scope,
		}).
		SetResult(&tokens).
		Post(o.tokenURL)
	if err != nil {
		return TokenSet{}, fmt.Errorf("token exchange request: %w", err)
	}
	if resp.IsError() {
		return TokenSet{}, httpError(resp)
	}

	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		return TokenSet{}, ErrMissingTokens
	}

	return tokens, nil
}

// EmailFromIDToken implements [OAuthAdapter]. The ID token arrives over the
// TLS channel of the token exchange, so its claims are read without
// signature verification.
func (o *oauthClient) EmailFromIDToken(idToken string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidIDToken, err)
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		// Some tenants publish the address under preferred_username instead.
		email, ok = claims["preferred_username"].(string)
		if !ok || email == "" {
			return "", fmt.Errorf("%w: no email claim", ErrInvalidIDToken)
		}
	}

	return email, nil
}
