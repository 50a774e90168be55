package analysis

import (
	"testing"

	"github.com/tomasvidela/solva/internal/models"
)

func individual() models.Client {
	return models.Client{ID: "c1", Name: "Test", PersonType: models.PersonIndividual}
}

func entity() models.Client {
	return models.Client{ID: "c2", Name: "Test SA", PersonType: models.PersonEntity}
}

func categoryResult(t *testing.T, r models.CalculationResult, key models.CategoryKey) models.CategoryResult {
	t.Helper()
	for _, cr := range r.Categories {
		if cr.Key == key {
			return cr
		}
	}
	t.Fatalf("category %s missing from result", key)
	return models.CategoryResult{}
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		ratio float64
		want  models.Classification
	}{
		{2.5, models.ClassExcellent},
		{2.00001, models.ClassExcellent},
		{2.0, models.ClassGood},
		{1.50001, models.ClassGood},
		{1.5, models.ClassAcceptable}, // strict >, not >=
		{1.2, models.ClassAcceptable},
		{1.1, models.ClassCaution},
		{1.05, models.ClassCaution},
		{1.0, models.ClassRisk},
		{0.3, models.ClassRisk},
		{0, models.ClassRisk},
	}
	for _, tt := range tests {
		if got := Classify(tt.ratio); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.ratio, got, tt.want)
		}
	}
}

func TestCompute_REMAdjustment(t *testing.T) {
	// Monotributo base 50000 with REM 10% → 55000 before custom fields.
	orig := MonotributoScale["A"]
	MonotributoScale["A"] = 50000
	defer func() { MonotributoScale["A"] = orig }()

	fd := models.FinancialData{Monotributo: models.MonotributoIncome{Category: "A"}}
	settings := models.AnalysisSettings{
		Weights:    map[models.CategoryKey]float64{models.CategoryMonotributo: 100},
		Simulation: models.SimulationParams{REMPercent: 10},
	}

	result := Compute(individual(), fd, settings, 1000)
	cr := categoryResult(t, result, models.CategoryMonotributo)
	if cr.BaseRaw != 50000 {
		t.Errorf("BaseRaw = %v, want 50000", cr.BaseRaw)
	}
	if !approxEqual(cr.BaseAdjusted, 55000, 0.001) {
		t.Errorf("BaseAdjusted = %v, want 55000", cr.BaseAdjusted)
	}
}

func TestCompute_REMNotAppliedToOtherCategories(t *testing.T) {
	fd := models.FinancialData{Rentals: models.RentalIncome{AnnualRent: 100000}}
	settings := models.AnalysisSettings{
		Weights:    map[models.CategoryKey]float64{models.CategoryRentals: 100},
		Simulation: models.SimulationParams{REMPercent: 50},
	}

	result := Compute(individual(), fd, settings, 1000)
	cr := categoryResult(t, result, models.CategoryRentals)
	if cr.BaseAdjusted != 100000 {
		t.Errorf("BaseAdjusted = %v, want 100000 (REM must not apply)", cr.BaseAdjusted)
	}
}

func TestCompute_CustomFieldsAfterREM(t *testing.T) {
	// REM multiplies the frozen base only; custom fields are added after.
	fd := models.FinancialData{
		Salary: models.SalaryIncome{AnnualNet: 100000},
		CustomFields: map[models.CategoryKey][]models.CustomField{
			models.CategorySalary: {{Label: "extra", Value: 10000, Currency: models.CurrencyARS}},
		},
	}
	settings := models.AnalysisSettings{
		Weights:    map[models.CategoryKey]float64{models.CategorySalary: 100},
		Simulation: models.SimulationParams{REMPercent: 10},
	}

	result := Compute(individual(), fd, settings, 1000)
	cr := categoryResult(t, result, models.CategorySalary)
	// 100000*1.10 + 10000 = 120000, not (100000+10000)*1.10 = 121000
	if !approxEqual(cr.BaseAdjusted, 120000, 0.001) {
		t.Errorf("BaseAdjusted = %v, want 120000", cr.BaseAdjusted)
	}
}

func TestCompute_WeightLinearity(t *testing.T) {
	fd := models.FinancialData{Fees: models.FeeIncome{AnnualFees: 500000}}
	settings := func(w float64) models.AnalysisSettings {
		return models.AnalysisSettings{Weights: map[models.CategoryKey]float64{models.CategoryFees: w}}
	}

	r1 := Compute(individual(), fd, settings(30), 1000)
	r2 := Compute(individual(), fd, settings(60), 1000)

	s1 := categoryResult(t, r1, models.CategoryFees).Subtotal
	s2 := categoryResult(t, r2, models.CategoryFees).Subtotal
	if !approxEqual(s2, 2*s1, 0.001) {
		t.Errorf("doubling weight: subtotal %v -> %v, want exactly double", s1, s2)
	}
}

func TestCompute_BalanceSheetNotReweighted(t *testing.T) {
	fd := models.FinancialData{
		BalanceSheet: models.BalanceSheetIncome{
			CashAndBanks:  1000000,
			CashWeightPct: 50,
		},
	}
	// A configured weight for the balance category must be ignored; it is
	// already internally weighted.
	settings := models.AnalysisSettings{
		Weights: map[models.CategoryKey]float64{models.CategoryBalanceSheet: 10},
	}

	result := Compute(entity(), fd, settings, 1000)
	cr := categoryResult(t, result, models.CategoryBalanceSheet)
	if !approxEqual(cr.Subtotal, 500000, 0.001) {
		t.Errorf("Subtotal = %v, want 500000 at full base amount", cr.Subtotal)
	}
	if cr.BalanceBranch != models.BranchWeighted {
		t.Errorf("BalanceBranch = %q, want weighted", cr.BalanceBranch)
	}
}

func TestCompute_PersonTypeGating(t *testing.T) {
	fd := models.FinancialData{
		Salary:       models.SalaryIncome{AnnualNet: 1000000},
		BalanceSheet: models.BalanceSheetIncome{CashAndBanks: 1000000, CashWeightPct: 100},
	}
	settings := models.AnalysisSettings{
		Weights: map[models.CategoryKey]float64{models.CategorySalary: 100},
	}

	// Entity: salary inapplicable, balance counts.
	r := Compute(entity(), fd, settings, 1000)
	if cr := categoryResult(t, r, models.CategorySalary); cr.Applicable || cr.Subtotal != 0 {
		t.Errorf("salary for entity: applicable=%v subtotal=%v, want inapplicable zero", cr.Applicable, cr.Subtotal)
	}
	if !approxEqual(r.TotalCapacityARS, 1000000, 0.001) {
		t.Errorf("entity total = %v, want 1000000", r.TotalCapacityARS)
	}

	// Individual: balance inapplicable, salary counts.
	r = Compute(individual(), fd, settings, 1000)
	if cr := categoryResult(t, r, models.CategoryBalanceSheet); cr.Applicable || cr.Subtotal != 0 {
		t.Errorf("balance for individual: applicable=%v subtotal=%v, want inapplicable zero", cr.Applicable, cr.Subtotal)
	}
	if !approxEqual(r.TotalCapacityARS, 1000000, 0.001) {
		t.Errorf("individual total = %v, want 1000000", r.TotalCapacityARS)
	}
}

func TestCompute_SimulationAndSolvency(t *testing.T) {
	// Capacity: 24,000,000 ARS at rate 1000 → 24,000 USD.
	// Operation: 120,000 USD − 20,000 contribution = 100,000 to finance.
	// 100 installments → 1000 base; CAC 20% → 1200 adjusted.
	// Solvency = 24000/1200 = 20 months; ratio = 20/12 ≈ 1.667 → good.
	fd := models.FinancialData{Fees: models.FeeIncome{AnnualFees: 24000000}}
	settings := models.AnalysisSettings{
		Weights: map[models.CategoryKey]float64{models.CategoryFees: 100},
		Simulation: models.SimulationParams{
			OperationAmount:  120000,
			Contribution:     20000,
			InstallmentCount: 100,
			CACPercent:       20,
		},
	}

	r := Compute(individual(), fd, settings, 1000)
	if !approxEqual(r.TotalCapacityUSD, 24000, 0.001) {
		t.Errorf("TotalCapacityUSD = %v, want 24000", r.TotalCapacityUSD)
	}
	if !approxEqual(r.BalanceToFinance, 100000, 0.001) {
		t.Errorf("BalanceToFinance = %v, want 100000", r.BalanceToFinance)
	}
	if !approxEqual(r.BaseInstallment, 1000, 0.001) {
		t.Errorf("BaseInstallment = %v, want 1000", r.BaseInstallment)
	}
	if !approxEqual(r.AdjustedInstallment, 1200, 0.001) {
		t.Errorf("AdjustedInstallment = %v, want 1200", r.AdjustedInstallment)
	}
	if !approxEqual(r.SolvencyMonths, 20, 0.001) {
		t.Errorf("SolvencyMonths = %v, want 20", r.SolvencyMonths)
	}
	if r.Classification != models.ClassGood {
		t.Errorf("Classification = %s, want good", r.Classification)
	}
}

func TestCompute_DegenerateSimulation(t *testing.T) {
	fd := models.FinancialData{Fees: models.FeeIncome{AnnualFees: 1000000}}
	settings := models.AnalysisSettings{
		Weights: map[models.CategoryKey]float64{models.CategoryFees: 100},
		Simulation: models.SimulationParams{
			OperationAmount:  50000,
			Contribution:     80000, // over-contributed
			InstallmentCount: 0,
		},
	}

	r := Compute(individual(), fd, settings, 1000)
	if r.BalanceToFinance != 0 {
		t.Errorf("BalanceToFinance = %v, want 0 when contribution exceeds operation", r.BalanceToFinance)
	}
	if r.BaseInstallment != 0 || r.AdjustedInstallment != 0 {
		t.Errorf("installments = %v/%v, want 0 with zero count", r.BaseInstallment, r.AdjustedInstallment)
	}
	if r.SolvencyMonths != 0 {
		t.Errorf("SolvencyMonths = %v, want 0 with no installment", r.SolvencyMonths)
	}
	if r.Classification != models.ClassRisk {
		t.Errorf("Classification = %s, want risk at zero ratio", r.Classification)
	}
}

func TestCompute_ZeroExchangeRateGuard(t *testing.T) {
	fd := models.FinancialData{Fees: models.FeeIncome{AnnualFees: 1000}}
	settings := models.AnalysisSettings{
		Weights: map[models.CategoryKey]float64{models.CategoryFees: 100},
	}

	r := Compute(individual(), fd, settings, 0)
	if r.ExchangeRate != 1 {
		t.Errorf("ExchangeRate = %v, want sanitized 1", r.ExchangeRate)
	}
	if r.TotalCapacityUSD != r.TotalCapacityARS {
		t.Errorf("USD %v != ARS %v at rate 1", r.TotalCapacityUSD, r.TotalCapacityARS)
	}
}
