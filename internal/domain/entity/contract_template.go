package entity

import "time"

// ContractTemplate modelo textual de contrato com placeholders {{token}}.
// Há no máximo um modelo ativo por tipo de evento; a busca na renderização
// é feita por EventTypeID.
type ContractTemplate struct {
	ID          string    `json:"id"`
	EventTypeID string    `json:"event_type_id"`
	Name        string    `json:"name"`
	Content     string    `json:"content"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}
