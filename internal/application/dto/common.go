package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse erro de validação de formulário: os problemas são
// coletados campo a campo e bloqueiam o envio localmente; nada chega ao
// backend enquanto houver campo inválido.
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}
