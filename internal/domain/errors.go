package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound                  = errors.New("recurso não encontrado")
	ErrTemplateNotFound          = errors.New("modelo de contrato não encontrado para o tipo de evento")
	ErrIncompatiblePaymentMethod = errors.New("forma de pagamento não configurada para o pacote selecionado")
	ErrPackageNotInEventType     = errors.New("pacote não pertence ao tipo de evento selecionado")
	ErrInvalidDiscount           = errors.New("percentual de desconto fora do intervalo 0-100")
	ErrInvalidStatus             = errors.New("status de contrato inválido")
	ErrInvalidInput              = errors.New("entrada inválida")
	ErrDuplicate                 = errors.New("recurso duplicado")
	ErrUnauthorized              = errors.New("não autorizado")
	ErrForbidden                 = errors.New("acesso negado")
	ErrBackendConfig             = errors.New("configuração do backend ausente ou inválida")
	ErrBackendUnavailable        = errors.New("backend de dados indisponível")
)
