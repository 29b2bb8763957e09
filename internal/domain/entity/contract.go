package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status do contrato. Rótulos de apresentação; nenhuma regra de transição
// é imposta (draft pode ir direto a cancelled, etc.).
const (
	StatusDraft     = "draft"     // criado pelo formulário, ainda não enviado
	StatusSent      = "sent"      // enviado ao cliente
	StatusSigned    = "signed"    // assinado; conta como receita realizada
	StatusCancelled = "cancelled" // cancelado
)

// ContractStatuses lista fechada de status aceitos.
var ContractStatuses = []string{StatusDraft, StatusSent, StatusSigned, StatusCancelled}

// ValidStatus informa se s é um dos quatro rótulos aceitos.
func ValidStatus(s string) bool {
	for _, v := range ContractStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Contract registro persistido ("contrato"): snapshot achatado dos dados do
// cliente, do evento e do preço resolvido no momento da criação.
//
// Invariante: o snapshot é imutável em relação ao catálogo: edições
// posteriores de pacote ou forma de pagamento não alteram contratos já salvos.
// FinalPrice é sempre derivado (nunca digitado): base * (1 - desconto/100),
// onde base é o final_price do vínculo pacote/forma de pagamento.
type Contract struct {
	ID             string `json:"id"`
	PhotographerID string `json:"photographer_id"`

	// Dados do cliente
	NomeCompleto   string `json:"nome_completo"`
	CPF            string `json:"cpf"` // somente dígitos; formatado na renderização
	Email          string `json:"email"`
	Whatsapp       string `json:"whatsapp"` // somente dígitos, com DDD
	Endereco       string `json:"endereco"`
	Cidade         string `json:"cidade"`
	DataNascimento string `json:"data_nascimento,omitempty"` // AAAA-MM-DD

	// Dados do evento
	EventTypeID   string `json:"event_type_id"`
	TipoEvento    string `json:"tipo_evento"` // rótulo do tipo no momento do snapshot
	DataEvento    string `json:"data_evento"` // AAAA-MM-DD
	HorarioEvento string `json:"horario_evento"`
	LocalFesta    string `json:"local_festa"`

	// Campos condicionais por tipo de evento
	NomeNoivos         string `json:"nome_noivos,omitempty"`
	NomeAniversariante string `json:"nome_aniversariante,omitempty"`
	LocalPreWedding    string `json:"local_pre_wedding,omitempty"`
	LocalMakingOf      string `json:"local_making_of,omitempty"`
	LocalCerimonia     string `json:"local_cerimonia,omitempty"`

	// Snapshot de preço
	PackageID          string          `json:"package_id"`
	PackageName        string          `json:"package_name"`
	PackageFeatures    []string        `json:"package_features"`
	PaymentMethodID    string          `json:"payment_method_id"`
	PaymentMethodName  string          `json:"payment_method_name"`
	PackagePrice       decimal.Decimal `json:"package_price"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	FinalPrice         decimal.Decimal `json:"final_price"`
	AdjustedPrice      decimal.Decimal `json:"adjusted_price"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
