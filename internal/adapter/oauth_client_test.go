package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mail-sync/internal/config"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
)

func testOutlookConfig(tokenURL string) config.Outlook {
	return config.Outlook{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "https://app.example.com/api/auth/callback",
		AuthorizeURL: "https://login.example.com/oauth2/v2.0/authorize",
		TokenURL:     tokenURL,
		Scope:        "openid profile email offline_access Mail.Read",
	}
}

// unsignedIDToken builds an alg=none JWT carrying the given claims.
func unsignedIDToken(t *testing.T, claims map[string]any) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))

	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + "."
}

func TestOAuthClient_BuildAuthorizeURL(t *testing.T) {
	client := NewOAuthClient(testOutlookConfig("https://login.example.com/token"), logger.Nop())

	raw := client.BuildAuthorizeURL("state-123")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "https", parsed.Scheme)
	assert.Equal(t, "login.example.com", parsed.Host)

	query := parsed.Query()
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "https://app.example.com/api/auth/callback", query.Get("redirect_uri"))
	assert.Equal(t, "openid profile email offline_access Mail.Read", query.Get("scope"))
	assert.Equal(t, "state-123", query.Get("state"))
	assert.Equal(t, "consent", query.Get("prompt"))
}

func TestOAuthClient_ExchangeCode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "auth-code", r.PostForm.Get("code"))
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "client-secret", r.PostForm.Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "access-token",
			"refresh_token": "refresh-token",
			"id_token": "id-token"
		}`))
	}))
	defer srv.Close()

	client := NewOAuthClient(testOutlookConfig(srv.URL), logger.Nop())

	tokens, err := client.ExchangeCode(context.Background(), "auth-code")
	require.NoError(t, err)

	assert.Equal(t, "access-token", tokens.AccessToken)
	assert.Equal(t, "refresh-token", tokens.RefreshToken)
	assert.Equal(t, "id-token", tokens.IDToken)
}

func TestOAuthClient_ExchangeCode_MissingTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "access-token"}`))
	}))
	defer srv.Close()

	client := NewOAuthClient(testOutlookConfig(srv.URL), logger.Nop())

	_, err := client.ExchangeCode(context.Background(), "auth-code")
	assert.ErrorIs(t, err, ErrMissingTokens)
}

func TestOAuthClient_ExchangeCode_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": "invalid_grant"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewOAuthClient(testOutlookConfig(srv.URL), logger.Nop())

	_, err := client.ExchangeCode(context.Background(), "expired-code")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 400")
}

func TestOAuthClient_EmailFromIDToken(t *testing.T) {
	client := NewOAuthClient(testOutlookConfig("https://login.example.com/token"), logger.Nop())

	tests := []struct {
		name    string
		token   string
		want    string
		wantErr bool
	}{
		{
			name:  "email claim",
			token: unsignedIDToken(t, map[string]any{"email": "user@example.com"}),
			want:  "user@example.com",
		},
		{
			name: "preferred_username fallback",
			token: unsignedIDToken(t, map[string]any{
				"preferred_username": "user@example.com",
			}),
			want: "user@example.com",
		},
		{
			name:    "no email claim",
			token:   unsignedIDToken(t, map[string]any{"sub": "abc"}),
			wantErr: true,
		},
		{
			name:    "not a jwt",
			token:   "garbage",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := client.EmailFromIDToken(tt.token)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidIDToken)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, email)
		})
	}
}
