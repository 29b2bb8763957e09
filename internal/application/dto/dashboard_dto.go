package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resposta de GET /api/dashboard/summary: visão geral dos
// contratos e da receita do fotógrafo.
type DashboardSummaryDTO struct {
	TotalContracts int            `json:"total_contracts"`
	ByStatus       map[string]int `json:"by_status"` // draft/sent/signed/cancelled

	// Receita realizada: soma do preço final dos contratos assinados.
	SignedRevenue decimal.Decimal `json:"signed_revenue"`
	// Receita potencial: contratos em rascunho ou enviados.
	PendingRevenue decimal.Decimal `json:"pending_revenue"`

	// Contratos do mês corrente (por data de criação).
	MonthContracts int    `json:"month_contracts"`
	DateLabel      string `json:"date_label"` // ex.: "Agosto 2026"
}
