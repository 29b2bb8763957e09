package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fotogestor/fotogestor-api/internal/application/auth"
	"github.com/fotogestor/fotogestor-api/internal/domain"
	"github.com/fotogestor/fotogestor-api/pkg/reqctx"
)

// Verificação em tempo de compilação de que AuthClient implementa o gateway.
var _ auth.Gateway = (*AuthClient)(nil)

// AuthClient adaptador do serviço de autenticação hospedado (GoTrue).
// Cadastro, login, logout e sessão são delegados integralmente ao serviço;
// nenhuma senha é armazenada ou verificada localmente.
type AuthClient struct {
	c *Client
}

// NewAuthClient constrói o adaptador sobre o cliente REST.
func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

// ── Estruturas do protocolo GoTrue ───────────────────────────────────────────

type gotrueUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

type gotrueSession struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int         `json:"expires_in"`
	User         *gotrueUser `json:"user"`

	// Resposta de signup com confirmação de e-mail pendente: o corpo é o
	// próprio usuário, sem tokens.
	gotrueUser
}

func (s *gotrueSession) toSession() *auth.Session {
	out := &auth.Session{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresIn:    s.ExpiresIn,
	}
	u := s.User
	if u == nil {
		u = &s.gotrueUser
	}
	out.User = toAuthUser(u)
	return out
}

func toAuthUser(u *gotrueUser) auth.User {
	meta := make(map[string]string, len(u.UserMetadata))
	for k, v := range u.UserMetadata {
		if s, ok := v.(string); ok {
			meta[k] = s
		}
	}
	return auth.User{ID: u.ID, Email: u.Email, Metadata: meta}
}

// ── Implementação do gateway ─────────────────────────────────────────────────

// SignUp cria a conta no serviço hospedado com metadados de perfil.
func (a *AuthClient) SignUp(ctx context.Context, email, password string, metadata map[string]string) (*auth.Session, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
	}
	if len(metadata) > 0 {
		data := make(map[string]any, len(metadata))
		for k, v := range metadata {
			data[k] = v
		}
		body["data"] = data
	}
	var resp gotrueSession
	if err := a.c.do(ctx, http.MethodPost, authBasePath+"/signup", nil, body, &resp); err != nil {
		return nil, fmt.Errorf("auth signup: %w", err)
	}
	return resp.toSession(), nil
}

// SignIn autentica por e-mail/senha (grant_type=password).
func (a *AuthClient) SignIn(ctx context.Context, email, password string) (*auth.Session, error) {
	q := url.Values{}
	q.Set("grant_type", "password")
	body := map[string]string{"email": email, "password": password}
	var resp gotrueSession
	if err := a.c.do(ctx, http.MethodPost, authBasePath+"/token", q, body, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnauthorized) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth login: %w", err)
	}
	return resp.toSession(), nil
}

// SignOut revoga a sessão do token no serviço hospedado.
func (a *AuthClient) SignOut(ctx context.Context, accessToken string) error {
	ctx = reqctx.WithAccessToken(ctx, accessToken)
	if err := a.c.do(ctx, http.MethodPost, authBasePath+"/logout", nil, nil, nil); err != nil {
		return fmt.Errorf("auth logout: %w", err)
	}
	return nil
}

// CurrentUser recupera o usuário dono do access token.
func (a *AuthClient) CurrentUser(ctx context.Context, accessToken string) (*auth.User, error) {
	ctx = reqctx.WithAccessToken(ctx, accessToken)
	var u gotrueUser
	if err := a.c.do(ctx, http.MethodGet, authBasePath+"/user", nil, nil, &u); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth user: %w", err)
	}
	out := toAuthUser(&u)
	return &out, nil
}
