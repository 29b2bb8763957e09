package entity

import "time"

// BusinessInfo dados do negócio exibidos no contrato e no painel.
type BusinessInfo struct {
	ID             string    `json:"id"`
	PhotographerID string    `json:"photographer_id"`
	BusinessName   string    `json:"business_name"`
	Documento      string    `json:"documento,omitempty"` // CPF ou CNPJ
	Endereco       string    `json:"endereco,omitempty"`
	Cidade         string    `json:"cidade,omitempty"`
	Telefone       string    `json:"telefone,omitempty"`
	Email          string    `json:"email,omitempty"`
	UpdatedAt      time.Time `json:"updated_at,omitempty"`
}
