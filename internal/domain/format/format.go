// Package format formatadores de exibição pt-BR: CPF, WhatsApp, moeda e data.
// O cálculo de preço preserva a precisão decimal; a formatação acontece
// somente aqui, na hora de exibir.
package format

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	// ErrInvalidCPF CPF sem exatamente 11 dígitos.
	ErrInvalidCPF = errors.New("cpf deve ter 11 dígitos")
	// ErrInvalidPhone telefone sem 10 ou 11 dígitos (DDD + número).
	ErrInvalidPhone = errors.New("telefone deve ter 10 ou 11 dígitos com DDD")

	brPrinter = message.NewPrinter(language.BrazilianPortuguese)
)

// Digits devolve apenas os dígitos de s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CPF formata 11 dígitos como ###.###.###-##.
func CPF(s string) (string, error) {
	d := Digits(s)
	if len(d) != 11 {
		return "", ErrInvalidCPF
	}
	return fmt.Sprintf("%s.%s.%s-%s", d[0:3], d[3:6], d[6:9], d[9:11]), nil
}

// WhatsApp formata o número com DDD: (##) #####-#### para celular (11 dígitos)
// ou (##) ####-#### para fixo (10 dígitos).
func WhatsApp(s string) (string, error) {
	d := Digits(s)
	switch len(d) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", d[0:2], d[2:7], d[7:11]), nil
	case 10:
		return fmt.Sprintf("(%s) %s-%s", d[0:2], d[2:6], d[6:10]), nil
	default:
		return "", ErrInvalidPhone
	}
}

// BRL formata o valor em reais: "R$ 1.234,56".
func BRL(v decimal.Decimal) string {
	f, _ := v.Float64()
	return brPrinter.Sprintf("R$ %v", number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// DateBR formata a data como dd/mm/aaaa.
func DateBR(t time.Time) string {
	return t.Format("02/01/2006")
}

// ParseDate aceita datas em AAAA-MM-DD (formato do backend) ou dd/mm/aaaa.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse("02/01/2006", s)
}

// DateBRFromString converte uma data do backend para exibição; se o valor
// não for uma data reconhecível, devolve-o inalterado.
func DateBRFromString(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return DateBR(t)
}
