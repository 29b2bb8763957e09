package dto

// SignUpRequest cadastro de conta no serviço de autenticação hospedado.
// Name e Phone viajam como metadados de perfil.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone"`
}

// LoginRequest login por e-mail/senha.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileUpdateRequest edição do perfil do fotógrafo (nome e telefone).
type ProfileUpdateRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
}

// UserResponse usuário autenticado.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// SessionResponse sessão devolvida por signup/login.
type SessionResponse struct {
	AccessToken  string       `json:"access_token,omitempty"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	ExpiresIn    int          `json:"expires_in,omitempty"`
	User         UserResponse `json:"user"`
}
