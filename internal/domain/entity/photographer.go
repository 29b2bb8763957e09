package entity

import "time"

// Photographer perfil do fotógrafo dono da conta. UserID referencia o usuário
// do serviço de autenticação hospedado.
type Photographer struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
