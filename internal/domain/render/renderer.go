// Package render gera o texto do contrato substituindo os tokens {{...}} do
// modelo pelos valores do registro.
package render

import (
	"regexp"
	"strings"

	"github.com/fotogestor/fotogestor-api/internal/domain"
	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
	"github.com/fotogestor/fotogestor-api/internal/domain/format"
)

// tokenRe captura qualquer placeholder {{ nome }} (espaços tolerados).
var tokenRe = regexp.MustCompile(`\{\{[^{}]*\}\}`)

// Contract renderiza o contrato usando o mapa de modelos indexado por
// event_type_id. Devolve domain.ErrTemplateNotFound se não houver modelo
// para o tipo de evento do contrato.
//
// A substituição é literal, token a token, em passagem única: o texto já
// substituído não é reexaminado. Depois dos tokens conhecidos, qualquer
// {{...}} remanescente é removido, política deliberada de não vazar
// sintaxe de template no documento final, não é condição de erro.
func Contract(c *entity.Contract, templates map[string]*entity.ContractTemplate) (string, error) {
	if c == nil {
		return "", domain.ErrInvalidInput
	}
	tpl, ok := templates[c.EventTypeID]
	if !ok || tpl == nil {
		return "", domain.ErrTemplateNotFound
	}
	return Substitute(tpl.Content, TokenValues(c)), nil
}

// Substitute aplica o mapa de valores sobre o conteúdo em uma única passagem.
// Tokens sem valor correspondente viram string vazia.
func Substitute(content string, values map[string]string) string {
	return tokenRe.ReplaceAllStringFunc(content, func(tok string) string {
		name := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(tok, "{{"), "}}"))
		return values[name]
	})
}

// TokenValues monta o mapa token → valor de exibição para o contrato.
// Campos condicionais (nome_noivos, nome_aniversariante, locais de casamento)
// só entram quando preenchidos; o token correspondente em outros tipos de
// evento é simplesmente removido na substituição.
func TokenValues(c *entity.Contract) map[string]string {
	v := map[string]string{
		"nome_completo":  c.NomeCompleto,
		"cpf":            formatOrRaw(c.CPF, format.CPF),
		"email":          c.Email,
		"whatsapp":       formatOrRaw(c.Whatsapp, format.WhatsApp),
		"endereco":       c.Endereco,
		"cidade":         c.Cidade,
		"tipo_evento":    c.TipoEvento,
		"data_evento":    format.DateBRFromString(c.DataEvento),
		"horario_evento": c.HorarioEvento,
		"local_festa":    c.LocalFesta,
		"package_name":   c.PackageName,
		"package_price":  format.BRL(c.PackagePrice),
	}
	if c.DataNascimento != "" {
		v["data_nascimento"] = format.DateBRFromString(c.DataNascimento)
	}
	if len(c.PackageFeatures) > 0 {
		v["package_features"] = BulletList(c.PackageFeatures)
	}

	setIfNotEmpty(v, "nome_noivos", c.NomeNoivos)
	setIfNotEmpty(v, "nome_aniversariante", c.NomeAniversariante)
	setIfNotEmpty(v, "local_pre_wedding", c.LocalPreWedding)
	setIfNotEmpty(v, "local_making_of", c.LocalMakingOf)
	setIfNotEmpty(v, "local_cerimonia", c.LocalCerimonia)
	return v
}

// BulletList junta os itens da lista de serviços do pacote com marcadores.
func BulletList(items []string) string {
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("• ")
		b.WriteString(it)
	}
	return b.String()
}

func setIfNotEmpty(m map[string]string, key, val string) {
	if strings.TrimSpace(val) != "" {
		m[key] = val
	}
}

// formatOrRaw aplica o formatador; se o valor bruto não for formatável
// (registro antigo, dado importado), exibe-o como está.
func formatOrRaw(raw string, fn func(string) (string, error)) string {
	out, err := fn(raw)
	if err != nil {
		return raw
	}
	return out
}
