// Package analytics caso de uso do painel: visão geral dos contratos e da
// receita do fotógrafo.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fotogestor/fotogestor-api/internal/application/dto"
	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
	"github.com/fotogestor/fotogestor-api/internal/domain/repository"
	"github.com/fotogestor/fotogestor-api/pkg/logger"
)

// DashboardUseCase agrega os contratos do fotógrafo em um resumo: total,
// contagem por status, receita assinada, receita pendente e contratos do mês.
//
// Falha de leitura do backend degrada para um resumo vazio com aviso no log;
// o painel abre mesmo com o backend fora do ar.
type DashboardUseCase struct {
	contracts repository.ContractRepository
	log       *logger.Logger
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(contracts repository.ContractRepository, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{contracts: contracts, log: log}
}

// GetSummary monta o DashboardSummaryDTO do fotógrafo indicado.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, photographerID string) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	list, err := uc.contracts.ListByPhotographer(ctx, photographerID)
	if err != nil {
		uc.log.Warn().Err(err).Str("photographer_id", photographerID).
			Msg("painel: falha ao listar contratos, exibindo resumo vazio")
		list = nil
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	byStatus := make(map[string]int, len(entity.ContractStatuses))
	for _, s := range entity.ContractStatuses {
		byStatus[s] = 0
	}

	signed := decimal.Zero
	pending := decimal.Zero
	monthCount := 0

	for _, c := range list {
		byStatus[c.Status]++
		switch c.Status {
		case entity.StatusSigned:
			signed = signed.Add(c.FinalPrice)
		case entity.StatusDraft, entity.StatusSent:
			pending = pending.Add(c.FinalPrice)
		}
		if !c.CreatedAt.Before(monthStart) {
			monthCount++
		}
	}

	return &dto.DashboardSummaryDTO{
		TotalContracts: len(list),
		ByStatus:       byStatus,
		SignedRevenue:  signed.Round(2),
		PendingRevenue: pending.Round(2),
		MonthContracts: monthCount,
		DateLabel:      monthLabel(now),
	}, nil
}

// monthLabel devolve o rótulo legível do mês, ex.: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
