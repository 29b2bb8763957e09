package contracts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fotogestor/fotogestor-api/internal/application/contracts"
	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
)

func TestValidateCreate_FormularioValido(t *testing.T) {
	fields := contracts.ValidateCreate(validRequest(), entity.KindCasamento)
	assert.Empty(t, fields)
}

// As mensagens são indexadas pelo nome json do campo, não pelo nome Go.
func TestValidateCreate_NomesJSON(t *testing.T) {
	in := validRequest()
	in.NomeCompleto = ""
	in.Whatsapp = "99"

	fields := contracts.ValidateCreate(in, entity.KindCasamento)
	assert.Contains(t, fields, "nome_completo")
	assert.Contains(t, fields, "whatsapp")
	assert.NotContains(t, fields, "NomeCompleto")
}

func TestValidateCreate_DataAceitaDoisFormatos(t *testing.T) {
	in := validRequest()
	in.DataEvento = "05/10/2026"
	assert.Empty(t, contracts.ValidateCreate(in, entity.KindCasamento))

	in.DataEvento = "outubro"
	fields := contracts.ValidateCreate(in, entity.KindCasamento)
	assert.Contains(t, fields, "data_evento")
}

func TestValidateCreate_VarianteAniversario(t *testing.T) {
	in := validRequest()
	in.EventTypeID = "et-aniversario"
	in.NomeNoivos = ""
	in.NomeAniversariante = ""

	fields := contracts.ValidateCreate(in, entity.KindAniversario)
	assert.Contains(t, fields, "nome_aniversariante")
	assert.NotContains(t, fields, "nome_noivos")
}

// Ensaio e formatura não têm campos condicionais obrigatórios.
func TestValidateCreate_VariantesSemCondicionais(t *testing.T) {
	in := validRequest()
	in.NomeNoivos = ""

	assert.Empty(t, contracts.ValidateCreate(in, entity.KindEnsaio))
	assert.Empty(t, contracts.ValidateCreate(in, entity.KindFormatura))
	assert.Empty(t, contracts.ValidateCreate(in, entity.KindOutro))
}

func TestValidateCreate_DataNascimentoOpcional(t *testing.T) {
	in := validRequest()
	in.DataNascimento = ""
	assert.Empty(t, contracts.ValidateCreate(in, entity.KindCasamento))

	in.DataNascimento = "1990-13-45"
	fields := contracts.ValidateCreate(in, entity.KindCasamento)
	assert.Contains(t, fields, "data_nascimento")
}
