package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/bekzodm/dayplan/internal/models"
	"github.com/bekzodm/dayplan/internal/repository"
)

const financeWindowDays = 30

type financeService struct {
	data  repository.DailyDataRepository
	txs   repository.FinanceRepository
	clock Clock
}

// NewFinanceService creates the finance health advisor and rollups.
func NewFinanceService(data repository.DailyDataRepository, txs repository.FinanceRepository, clock Clock) FinanceService {
	return &financeService{data: data, txs: txs, clock: clock}
}

// HealthReport computes burn rate and passive-income coverage over the
// trailing 30 days.
func (s *financeService) HealthReport(ctx context.Context, ownerID string) (*models.FinanceHealth, error) {
	today := dayStart(s.clock.Now())
	start := today.AddDate(0, 0, -financeWindowDays)

	logs, err := s.data.FinanceTransactions(ctx, ownerID, start, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get finance transactions: %w", err)
	}

	var income, passive, expense float64
	for _, tx := range logs {
		switch tx.Kind {
		case models.FinanceActiveIncome:
			income += tx.Amount
		case models.FinancePassiveIncome:
			income += tx.Amount
			passive += tx.Amount
		case models.FinanceExpense:
			expense += tx.Amount
		}
	}

	// Burn rate divides by the fixed window length, not days with data.
	burnRate := 0.0
	if len(logs) > 0 {
		burnRate = expense / financeWindowDays
	}

	// Nothing to cover means fully covered.
	coverage := 100.0
	if expense > 0 {
		coverage = passive / expense * 100
	}

	warnings := []string{}
	if expense > income && income > 0 {
		warnings = append(warnings, msgExpenseOverIncome)
	}

	return &models.FinanceHealth{
		BurnRateDaily:         round2(burnRate),
		PassiveIncomeCoverage: round1(coverage),
		Warnings:              warnings,
	}, nil
}

// DailyStats sums today's income and expense.
func (s *financeService) DailyStats(ctx context.Context, ownerID string) (*models.DailyFinanceStat, error) {
	today := dayStart(s.clock.Now())

	logs, err := s.data.FinanceTransactions(ctx, ownerID, today, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get finance transactions: %w", err)
	}

	var income, expense float64
	for _, tx := range logs {
		if tx.Kind.IsIncome() {
			income += tx.Amount
		} else if tx.Kind == models.FinanceExpense {
			expense += tx.Amount
		}
	}

	return &models.DailyFinanceStat{
		Date:         dateKey(today),
		TotalIncome:  income,
		TotalExpense: expense,
	}, nil
}

// MonthlyStats groups the owner's full transaction history by calendar
// month, oldest first.
func (s *financeService) MonthlyStats(ctx context.Context, ownerID string) ([]models.MonthlyFinanceStat, error) {
	logs, err := s.txs.AllTransactions(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get finance transactions: %w", err)
	}

	type sums struct{ income, expense float64 }
	byMonth := make(map[string]*sums)
	for _, tx := range logs {
		key := tx.Date.Format("2006-01")
		m, ok := byMonth[key]
		if !ok {
			m = &sums{}
			byMonth[key] = m
		}
		if tx.Kind.IsIncome() {
			m.income += tx.Amount
		} else if tx.Kind == models.FinanceExpense {
			m.expense += tx.Amount
		}
	}

	months := make([]string, 0, len(byMonth))
	for key := range byMonth {
		months = append(months, key)
	}
	sort.Strings(months)

	stats := make([]models.MonthlyFinanceStat, 0, len(months))
	for _, key := range months {
		stats = append(stats, models.MonthlyFinanceStat{
			Month:        key,
			TotalIncome:  byMonth[key].income,
			TotalExpense: byMonth[key].expense,
		})
	}
	return stats, nil
}
