package dto

import "github.com/shopspring/decimal"

// CreateContractRequest formulário de criação de contrato. O preço final NÃO
// é aceito do cliente: é sempre recalculado no servidor a partir do vínculo
// pacote/forma de pagamento e do desconto.
type CreateContractRequest struct {
	// Dados do cliente
	NomeCompleto   string `json:"nome_completo" validate:"required"`
	CPF            string `json:"cpf" validate:"required,cpf"`
	Email          string `json:"email" validate:"required,email"`
	Whatsapp       string `json:"whatsapp" validate:"required,telefonebr"`
	Endereco       string `json:"endereco" validate:"required"`
	Cidade         string `json:"cidade" validate:"required"`
	DataNascimento string `json:"data_nascimento" validate:"omitempty,databr"`

	// Dados do evento
	EventTypeID   string `json:"event_type_id" validate:"required"`
	DataEvento    string `json:"data_evento" validate:"required,databr"`
	HorarioEvento string `json:"horario_evento"`
	LocalFesta    string `json:"local_festa"`

	// Campos condicionais por tipo de evento
	NomeNoivos         string `json:"nome_noivos"`
	NomeAniversariante string `json:"nome_aniversariante"`
	LocalPreWedding    string `json:"local_pre_wedding"`
	LocalMakingOf      string `json:"local_making_of"`
	LocalCerimonia     string `json:"local_cerimonia"`

	// Seleção de preço
	PackageID          string          `json:"package_id" validate:"required"`
	PaymentMethodID    string          `json:"payment_method_id" validate:"required"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
}

// UpdateContractStatusRequest troca do rótulo de status.
type UpdateContractStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
