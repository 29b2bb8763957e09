package contracts

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fotogestor/fotogestor-api/internal/application/dto"
	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
	"github.com/fotogestor/fotogestor-api/internal/domain/format"
)

// validate instância única do validador com as regras brasileiras registradas.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Nome do campo nas mensagens = tag json (o formulário fala json, não Go).
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		_, err := format.CPF(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("telefonebr", func(fl validator.FieldLevel) bool {
		_, err := format.WhatsApp(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("databr", func(fl validator.FieldLevel) bool {
		_, err := format.ParseDate(fl.Field().String())
		return err == nil
	})
	return v
}

// mensagens por tag de validação.
func message(tag string) string {
	switch tag {
	case "required":
		return "campo obrigatório"
	case "email":
		return "e-mail inválido"
	case "cpf":
		return "CPF deve ter 11 dígitos"
	case "telefonebr":
		return "telefone deve ter 10 ou 11 dígitos com DDD"
	case "databr":
		return "data inválida (use AAAA-MM-DD ou dd/mm/aaaa)"
	default:
		return "valor inválido"
	}
}

// ValidateCreate valida o formulário campo a campo. Devolve um mapa
// campo → mensagem; o envio é bloqueado localmente enquanto o mapa não
// estiver vazio; nada chega ao backend.
//
// Além das regras estruturais, aplica o conjunto de campos obrigatórios da
// variante do tipo de evento: casamento exige o nome dos noivos, aniversário
// o nome do aniversariante.
func ValidateCreate(in *dto.CreateContractRequest, kind entity.EventKind) map[string]string {
	fields := map[string]string{}

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fe.Field()] = message(fe.Tag())
			}
		} else {
			fields["_"] = "formulário inválido"
		}
	}

	switch kind {
	case entity.KindCasamento:
		if strings.TrimSpace(in.NomeNoivos) == "" {
			fields["nome_noivos"] = "campo obrigatório para casamento"
		}
	case entity.KindAniversario:
		if strings.TrimSpace(in.NomeAniversariante) == "" {
			fields["nome_aniversariante"] = "campo obrigatório para aniversário"
		}
	}
	return fields
}
