package render_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotogestor/fotogestor-api/internal/domain"
	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
	"github.com/fotogestor/fotogestor-api/internal/domain/render"
)

// Token conhecido substituído, token desconhecido removido, nenhuma chave
// literal sobra no documento.
func TestSubstitute_TokenDesconhecidoRemovido(t *testing.T) {
	c := &entity.Contract{
		NomeCompleto: "Ana",
		PackagePrice: decimal.RequireFromString("100"),
	}

	out := render.Substitute("Olá {{nome_completo}}, valor {{package_price}}, {{unknown_token}}", render.TokenValues(c))

	assert.Equal(t, "Olá Ana, valor R$ 100,00, ", out)
	assert.NotContains(t, out, "{{")
	assert.NotContains(t, out, "}}")
}

// Espaços dentro do token são tolerados.
func TestSubstitute_EspacosNoToken(t *testing.T) {
	c := &entity.Contract{NomeCompleto: "Bia"}
	out := render.Substitute("Contratante: {{ nome_completo }}", render.TokenValues(c))
	assert.Equal(t, "Contratante: Bia", out)
}

// A substituição é de passagem única: valor contendo sintaxe de template não
// é reexaminado.
func TestSubstitute_PassagemUnica(t *testing.T) {
	c := &entity.Contract{NomeCompleto: "{{cpf}}"}
	out := render.Substitute("{{nome_completo}}", render.TokenValues(c))
	assert.Equal(t, "{{cpf}}", out)
}

func TestTokenValues_FormatacaoDosCampos(t *testing.T) {
	c := &entity.Contract{
		NomeCompleto:    "Carla Dias",
		CPF:             "12345678901",
		Whatsapp:        "11987654321",
		DataEvento:      "2026-10-05",
		PackagePrice:    decimal.RequireFromString("1234.56"),
		PackageFeatures: []string{"Álbum 30x30", "200 fotos tratadas"},
	}

	v := render.TokenValues(c)

	assert.Equal(t, "123.456.789-01", v["cpf"])
	assert.Equal(t, "(11) 98765-4321", v["whatsapp"])
	assert.Equal(t, "05/10/2026", v["data_evento"])
	assert.Equal(t, "R$ 1.234,56", v["package_price"])
	assert.Equal(t, "• Álbum 30x30\n• 200 fotos tratadas", v["package_features"])
}

// Campos condicionais vazios não entram no mapa; o token some na substituição.
func TestTokenValues_CondicionaisAusentes(t *testing.T) {
	c := &entity.Contract{NomeCompleto: "Duda"}

	v := render.TokenValues(c)
	_, temNoivos := v["nome_noivos"]
	_, temAniversariante := v["nome_aniversariante"]
	assert.False(t, temNoivos)
	assert.False(t, temAniversariante)

	out := render.Substitute("Noivos: {{nome_noivos}}.", v)
	assert.Equal(t, "Noivos: .", out)
}

func TestContract_ModeloDoTipoDeEvento(t *testing.T) {
	c := &entity.Contract{
		EventTypeID:  "et-casamento",
		NomeCompleto: "Ana",
		NomeNoivos:   "Ana e Bruno",
	}
	templates := map[string]*entity.ContractTemplate{
		"et-casamento": {ID: "tpl-1", EventTypeID: "et-casamento", Content: "Noivos: {{nome_noivos}}"},
	}

	out, err := render.Contract(c, templates)
	require.NoError(t, err)
	assert.Equal(t, "Noivos: Ana e Bruno", out)
}

func TestContract_SemModeloParaOTipo(t *testing.T) {
	c := &entity.Contract{EventTypeID: "et-ensaio"}
	_, err := render.Contract(c, map[string]*entity.ContractTemplate{})
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}
