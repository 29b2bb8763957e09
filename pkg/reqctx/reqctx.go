// Package reqctx transporta dados por requisição via context: o access token
// do usuário autenticado, repassado como Bearer ao backend hospedado para que
// as políticas de acesso por linha sejam aplicadas lá.
package reqctx

import "context"

type ctxKey int

const accessTokenKey ctxKey = iota

// WithAccessToken anexa o access token ao contexto.
func WithAccessToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, accessTokenKey, token)
}

// AccessToken devolve o token do contexto ("" se ausente).
func AccessToken(ctx context.Context) string {
	if v := ctx.Value(accessTokenKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
