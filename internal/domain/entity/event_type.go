package entity

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// EventKind enumeração fechada dos tipos de evento suportados.
// Substitui comparações soltas de string ("Casamento", "casamento", ...)
// que geravam campos condicionais por typo.
type EventKind string

const (
	KindCasamento   EventKind = "casamento"
	KindAniversario EventKind = "aniversario"
	KindEnsaio      EventKind = "ensaio"
	KindFormatura   EventKind = "formatura"
	KindOutro       EventKind = "outro"
)

// ParseEventKind normaliza o nome do tipo de evento (caixa e acentos)
// e devolve a variante fechada. Nomes desconhecidos caem em KindOutro.
func ParseEventKind(name string) EventKind {
	switch foldName(name) {
	case "casamento":
		return KindCasamento
	case "aniversario":
		return KindAniversario
	case "ensaio", "ensaio fotografico":
		return KindEnsaio
	case "formatura":
		return KindFormatura
	default:
		return KindOutro
	}
}

// foldName minúsculas + remoção de diacríticos ("Aniversário" -> "aniversario").
func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return out
}

// EventType categoria de evento fotografado (casamento, aniversário, ensaio, formatura).
// O nome é usado como rótulo de exibição; a lógica condicional usa Kind().
type EventType struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Kind devolve a variante fechada correspondente ao nome.
func (e EventType) Kind() EventKind {
	return ParseEventKind(e.Name)
}
