package auth

import "context"

// User usuário do serviço de autenticação hospedado.
type User struct {
	ID       string            `json:"id"`
	Email    string            `json:"email"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Session sessão emitida pelo serviço de autenticação. AccessToken é o JWT
// usado como Bearer nas chamadas subsequentes.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
	User         User   `json:"user"`
}

// Gateway contrato mínimo do serviço de autenticação hospedado.
// Implementado por supabase.AuthClient; a interface evita acoplar o caso de
// uso à infraestrutura.
type Gateway interface {
	// SignUp cria a conta com metadados de perfil (nome, telefone). Dependendo
	// da configuração do projeto, a sessão pode vir vazia (confirmação por
	// e-mail pendente).
	SignUp(ctx context.Context, email, password string, metadata map[string]string) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, accessToken string) error
	// CurrentUser devolve o usuário dono do access token.
	CurrentUser(ctx context.Context, accessToken string) (*User, error)
}
