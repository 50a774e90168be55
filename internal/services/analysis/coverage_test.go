package analysis

import (
	"testing"

	"github.com/tomasvidela/solva/internal/models"
)

func monthlyRule(balance, installment models.Amount, count int, first string, currency models.Currency) models.FinancingRule {
	return models.FinancingRule{
		Currency:          currency,
		BalanceToFinance:  balance,
		InstallmentCount:  count,
		Periodicity:       models.PeriodicityMonthly,
		InstallmentAmount: installment,
		FirstDueDate:      first,
		Active:            true,
	}
}

func TestComputeCoverage_MissingTargetDate(t *testing.T) {
	plan := models.FinancingPlan{
		GroupA: []models.FinancingRule{monthlyRule(120000, 10000, 12, "2024-01-01", models.CurrencyARS)},
	}
	pct, estimated := ComputeCoverage(plan, "", 1000)
	if !estimated {
		t.Error("estimated = false, want true for missing target date")
	}
	if pct != 85 {
		t.Errorf("pct = %v, want the 85 placeholder", pct)
	}
}

func TestComputeCoverage_EmptyPlan(t *testing.T) {
	pct, estimated := ComputeCoverage(models.FinancingPlan{}, "2024-06-01", 1000)
	if estimated {
		t.Error("estimated = true, want false")
	}
	if pct != 100 {
		t.Errorf("pct = %v, want 100 when there is nothing to cover", pct)
	}
}

func TestComputeCoverage_RulesWithoutBalance(t *testing.T) {
	// A plan exists but declares no balance yet: 0%, not 100%.
	plan := models.FinancingPlan{
		GroupA: []models.FinancingRule{monthlyRule(0, 0, 12, "2024-01-01", models.CurrencyARS)},
	}
	pct, _ := ComputeCoverage(plan, "2024-06-01", 1000)
	if pct != 0 {
		t.Errorf("pct = %v, want 0 until a balance exists", pct)
	}
}

func TestComputeCoverage_DownPaymentsOnly(t *testing.T) {
	// Down payments with no rules leave nothing to cover: 100%, like an
	// empty plan, and not an estimate.
	plan := models.FinancingPlan{
		DownPayments: []models.DownPayment{{Amount: 50000, Currency: models.CurrencyARS}},
	}
	pct, estimated := ComputeCoverage(plan, "2024-06-01", 1000)
	if estimated {
		t.Error("estimated = true, want false")
	}
	if pct != 100 {
		t.Errorf("pct = %v, want 100 with no rules and no required balance", pct)
	}
}

func TestComputeCoverage_SingleGroup(t *testing.T) {
	// Six of twelve monthly installments due by 2024-06-01: 50%.
	plan := models.FinancingPlan{
		GroupA: []models.FinancingRule{monthlyRule(120000, 10000, 12, "2024-01-01", models.CurrencyARS)},
	}
	pct, estimated := ComputeCoverage(plan, "2024-06-01", 1000)
	if estimated {
		t.Error("estimated = true, want false")
	}
	if pct != 50 {
		t.Errorf("pct = %v, want 50", pct)
	}
}

func TestComputeCoverage_MixedCurrenciesAndDownPayments(t *testing.T) {
	// rate 1000 ARS/USD.
	// Group A (ARS): balance 1,000,000; 5 of 10 installments of 100,000 due → 500,000 paid.
	// Group B (USD): balance 1,000; 5 of 10 installments of 100 due → 500 USD = 500,000 ARS.
	// Down payment: 100 USD = 100,000 ARS.
	// totalPaid = 1,100,000; totalToFinance = 2,000,000 → 55%.
	plan := models.FinancingPlan{
		GroupA:         []models.FinancingRule{monthlyRule(1000000, 100000, 10, "2024-01-01", models.CurrencyARS)},
		GroupB:         []models.FinancingRule{monthlyRule(1000, 100, 10, "2024-01-01", models.CurrencyUSD)},
		GroupBCurrency: models.CurrencyUSD,
		DownPayments:   []models.DownPayment{{Amount: 100, Currency: models.CurrencyUSD}},
	}
	pct, _ := ComputeCoverage(plan, "2024-05-01", 1000)
	if pct != 55 {
		t.Errorf("pct = %v, want 55", pct)
	}
}

func TestComputeCoverage_InactiveRulesIgnored(t *testing.T) {
	inactive := monthlyRule(1000000, 100000, 10, "2024-01-01", models.CurrencyARS)
	inactive.Active = false

	plan := models.FinancingPlan{
		GroupA: []models.FinancingRule{
			monthlyRule(120000, 10000, 12, "2024-01-01", models.CurrencyARS),
			inactive,
		},
	}
	pct, _ := ComputeCoverage(plan, "2024-06-01", 1000)
	if pct != 50 {
		t.Errorf("pct = %v, want 50 with inactive rule excluded", pct)
	}
}

func TestComputeCoverage_ClampedAt100(t *testing.T) {
	// Down payments above the financed total must not report over 100%.
	plan := models.FinancingPlan{
		GroupA:       []models.FinancingRule{monthlyRule(100000, 10000, 10, "2024-01-01", models.CurrencyARS)},
		DownPayments: []models.DownPayment{{Amount: 500000, Currency: models.CurrencyARS}},
	}
	pct, _ := ComputeCoverage(plan, "2024-12-01", 1000)
	if pct != 100 {
		t.Errorf("pct = %v, want clamped 100", pct)
	}
}

func TestComputeCoverage_UnparseableTargetStillComputes(t *testing.T) {
	// An unparseable (but present) target date substitutes one year from
	// now; everything in this plan is due well before that.
	plan := models.FinancingPlan{
		GroupA: []models.FinancingRule{monthlyRule(120000, 10000, 12, "2020-01-01", models.CurrencyARS)},
	}
	pct, estimated := ComputeCoverage(plan, "someday soon", 1000)
	if estimated {
		t.Error("estimated = true, want false for a present-but-bad date")
	}
	if pct != 100 {
		t.Errorf("pct = %v, want 100 for a long-finished schedule", pct)
	}
}
