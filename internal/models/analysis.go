// Package models defines domain types for Solva
package models

import "time"

// Currency identifies one of the two operating currencies.
type Currency string

const (
	CurrencyARS Currency = "ARS" // base / reporting currency
	CurrencyUSD Currency = "USD" // foreign / operation currency
)

// IsForeign reports whether amounts in this currency need conversion before
// aggregation in the base currency.
func (c Currency) IsForeign() bool {
	return c == CurrencyUSD
}

// PersonType gates which income categories apply to a client.
type PersonType string

const (
	PersonIndividual PersonType = "individual"
	PersonEntity     PersonType = "entity"
)

// CategoryKey identifies one declared income category.
type CategoryKey string

const (
	CategorySalary       CategoryKey = "sueldos"      // payroll net income (individuals)
	CategoryMonotributo  CategoryKey = "monotributo"  // presumed tax liability by scale letter (individuals)
	CategoryIVA          CategoryKey = "iva"          // taxable base estimated from fiscal debits
	CategoryFees         CategoryKey = "honorarios"   // professional fees
	CategoryRentals      CategoryKey = "alquileres"   // rental income
	CategoryAssetSales   CategoryKey = "venta_bienes" // asset sales net of consumed amount
	CategoryBalanceSheet CategoryKey = "balance"      // balance sheet capacity (entities only)
)

// AllCategories lists every category key in display order.
var AllCategories = []CategoryKey{
	CategorySalary,
	CategoryMonotributo,
	CategoryIVA,
	CategoryFees,
	CategoryRentals,
	CategoryAssetSales,
	CategoryBalanceSheet,
}

// AppliesTo reports whether the category is declarable by the given person type.
// Salary and monotributo exist only for individuals; the balance sheet
// category exists only for entities. Everything else applies to both.
func (k CategoryKey) AppliesTo(pt PersonType) bool {
	switch k {
	case CategorySalary, CategoryMonotributo:
		return pt == PersonIndividual
	case CategoryBalanceSheet:
		return pt == PersonEntity
	default:
		return true
	}
}

// Client is the analysed party. Only the fields the engine needs are kept here;
// identity documents live with the host application.
type Client struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	PersonType PersonType `json:"person_type"`
}

// CustomField is an arbitrary extra income line attachable to any category.
// Values declared in USD are normalized to ARS before aggregation.
type CustomField struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Value    Amount   `json:"value"`
	Currency Currency `json:"currency"`
}

// SalaryIncome holds the payroll category inputs (annual figures in ARS).
type SalaryIncome struct {
	AnnualNet   Amount `json:"annual_net"`
	AnnualBonus Amount `json:"annual_bonus"`
}

// MonotributoIncome holds the single-letter scale code ("A".."K").
type MonotributoIncome struct {
	Category string `json:"category"`
}

// IVAIncome holds the declared monthly fiscal debits used to estimate the
// underlying taxable base.
type IVAIncome struct {
	MonthlyFiscalDebits []Amount `json:"monthly_fiscal_debits"`
}

// FeeIncome holds invoiced professional fees (annual, ARS).
type FeeIncome struct {
	AnnualFees Amount `json:"annual_fees"`
}

// RentalIncome holds declared rental income (annual, ARS).
type RentalIncome struct {
	AnnualRent Amount `json:"annual_rent"`
}

// AssetSaleIncome holds proceeds of declared asset sales and the portion
// already consumed, which is deducted.
type AssetSaleIncome struct {
	Proceeds       Amount `json:"proceeds"`
	ConsumedAmount Amount `json:"consumed_amount"`
}

// BalanceSheetIncome holds the entity balance sheet inputs plus the
// per-analysis weighting settings the compliance officer can tune.
type BalanceSheetIncome struct {
	CashAndBanks Amount `json:"cash_and_banks"`
	Revenue      Amount `json:"revenue"`
	Cost         Amount `json:"cost"`
	NetWorth     Amount `json:"net_worth"`

	// UseGrossResult switches the income term between plain revenue and
	// revenue minus cost.
	UseGrossResult bool `json:"use_gross_result"`

	CashWeightPct   Amount `json:"cash_weight_pct"`
	IncomeWeightPct Amount `json:"income_weight_pct"`
	NetWorthPct     Amount `json:"net_worth_pct"`
}

// FinancialData is the per-analysis snapshot of everything the client
// declared. It is owned by one Analysis and replaced wholesale on save.
type FinancialData struct {
	Salary       SalaryIncome                  `json:"sueldos"`
	Monotributo  MonotributoIncome             `json:"monotributo"`
	IVA          IVAIncome                     `json:"iva"`
	Fees         FeeIncome                     `json:"honorarios"`
	Rentals      RentalIncome                  `json:"alquileres"`
	AssetSales   AssetSaleIncome               `json:"venta_bienes"`
	BalanceSheet BalanceSheetIncome            `json:"balance"`
	CustomFields map[CategoryKey][]CustomField `json:"custom_fields,omitempty"`
}

// SimulationParams describe the hypothetical purchase used only for the
// solvency ratio, never for the declared-capacity total. Amounts are in USD.
type SimulationParams struct {
	OperationAmount  Amount `json:"importe_operacion"`
	Contribution     Amount `json:"aporte_operacion"`
	InstallmentCount int    `json:"cantidad_cuotas"`
	REMPercent       Amount `json:"rem_percent"`
	CACPercent       Amount `json:"cac_percent"`
}

// AnalysisSettings hold the per-category weights (0-100, independently
// configurable, not required to sum to 100) and the simulation parameters.
type AnalysisSettings struct {
	Weights    map[CategoryKey]float64 `json:"weights"`
	Simulation SimulationParams        `json:"simulacion"`
}

// Periodicity is the installment cadence of a financing rule.
type Periodicity string

const (
	PeriodicityMonthly       Periodicity = "monthly"
	PeriodicitySemiannual    Periodicity = "semiannual"
	PeriodicityQuarterly     Periodicity = "quarterly"
	PeriodicityAnnual        Periodicity = "annual"
	PeriodicitySinglePayment Periodicity = "single"
)

// Months returns the number of calendar months between installments, or 0
// for single payment and unknown values.
func (p Periodicity) Months() int {
	switch p {
	case PeriodicityMonthly:
		return 1
	case PeriodicityQuarterly:
		return 3
	case PeriodicitySemiannual:
		return 6
	case PeriodicityAnnual:
		return 12
	default:
		return 0
	}
}

// FinancingRule describes one financing line: how a balance is paid off over
// time. Rules are created and edited by the operator, never split or merged
// automatically.
type FinancingRule struct {
	ID                 string      `json:"id"`
	Currency           Currency    `json:"currency"`
	BalanceToFinance   Amount      `json:"balance_to_finance"`
	InstallmentCount   int         `json:"installment_count"`
	Periodicity        Periodicity `json:"periodicity"`
	InstallmentAmount  Amount      `json:"installment_amount"`
	FirstDueDate       string      `json:"first_due_date"` // day/month/year or ISO
	LastDueDate        string      `json:"last_due_date,omitempty"`
	Active             bool        `json:"active"`
	CoveragePctOfTotal Amount      `json:"coverage_pct_of_total,omitempty"`
	CoveragePctOfGroup Amount      `json:"coverage_pct_of_group,omitempty"`
}

// DownPayment is a flat payment made outside the financing rules.
type DownPayment struct {
	Label    string   `json:"label,omitempty"`
	Amount   Amount   `json:"amount"`
	Currency Currency `json:"currency"`
}

// FinancingPlan holds the two parallel rule groups plus down payments.
// Group A is nominally in ARS; group B's nominal currency is configurable.
type FinancingPlan struct {
	GroupA         []FinancingRule `json:"group_a"`
	GroupB         []FinancingRule `json:"group_b"`
	GroupBCurrency Currency        `json:"group_b_currency"`
	DownPayments   []DownPayment   `json:"down_payments,omitempty"`
}

// HasRules reports whether either group carries at least one rule. Down
// payments alone do not count: they are payments, not obligations.
func (p FinancingPlan) HasRules() bool {
	return len(p.GroupA) > 0 || len(p.GroupB) > 0
}

// Analysis is the persisted record: the client plus the declared snapshot.
// The CalculationResult is never stored; it is recomputed on every read.
type Analysis struct {
	ID            string           `json:"id" badgerhold:"key"`
	Client        Client           `json:"client"`
	FinancialData FinancialData    `json:"financial_data"`
	Settings      AnalysisSettings `json:"settings"`
	Plan          FinancingPlan    `json:"plan"`
	ExchangeRate  float64          `json:"exchange_rate"` // ARS per USD
	TargetDate    string           `json:"target_date,omitempty"`
	Version       int              `json:"version"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// Classification is the risk tier derived from the coverage ratio.
type Classification string

const (
	ClassExcellent  Classification = "excellent"
	ClassGood       Classification = "good"
	ClassAcceptable Classification = "acceptable"
	ClassCaution    Classification = "caution"
	ClassRisk       Classification = "risk"
)

// BalanceBranch records which arm of the balance sheet formula won.
type BalanceBranch string

const (
	BranchWeighted BalanceBranch = "weighted"
	BranchFloor    BalanceBranch = "floor"
)

// CategoryResult is the per-category audit trail inside a CalculationResult.
type CategoryResult struct {
	Key        CategoryKey `json:"key"`
	Applicable bool        `json:"applicable"`

	// BaseRaw is the category formula output before index adjustment and
	// before custom fields. BaseAdjusted includes the REM adjustment where
	// it applies, plus the normalized custom field total.
	BaseRaw          float64 `json:"base_raw"`
	BaseAdjusted     float64 `json:"base_adjusted"`
	CustomFieldTotal float64 `json:"custom_field_total"`

	WeightPct float64 `json:"weight_pct"`
	Subtotal  float64 `json:"subtotal"`

	// BalanceBranch is set only for the balance sheet category.
	BalanceBranch BalanceBranch `json:"balance_branch,omitempty"`
}

// CalculationResult is the full derived output. It is never persisted.
type CalculationResult struct {
	Categories []CategoryResult `json:"categories"`

	TotalCapacityARS float64 `json:"total_capacity_ars"`
	TotalCapacityUSD float64 `json:"total_capacity_usd"`
	ExchangeRate     float64 `json:"exchange_rate"`

	BalanceToFinance    float64 `json:"balance_to_finance"` // USD
	BaseInstallment     float64 `json:"base_installment"`
	AdjustedInstallment float64 `json:"adjusted_installment"` // CAC applied

	SolvencyMonths float64        `json:"solvency_months"`
	CoverageRatio  float64        `json:"coverage_ratio"`
	Classification Classification `json:"classification"`

	// PercentPaid is the paid-by-target-date share of the amount financed.
	// When no target date was supplied it holds the documented placeholder
	// and PercentPaidEstimated is true.
	PercentPaid          float64 `json:"percent_paid"`
	PercentPaidEstimated bool    `json:"percent_paid_estimated"`
}
