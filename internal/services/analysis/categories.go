package analysis

import (
	"strings"

	"github.com/tomasvidela/solva/internal/models"
)

// ivaStatutoryRate is the VAT rate used to gross declared fiscal debits up
// to the underlying taxable base.
const ivaStatutoryRate = 0.21

// MonotributoScale maps the statutory scale letter to the annual gross
// income cap for that letter. The table is a frozen statutory snapshot;
// unknown letters yield 0.
var MonotributoScale = map[string]float64{
	"A": 6450000,
	"B": 9450000,
	"C": 13250000,
	"D": 16450000,
	"E": 19350000,
	"F": 24250000,
	"G": 29000000,
	"H": 44000000,
	"I": 49250000,
	"J": 56400000,
	"K": 68000000,
}

// salaryBase sums the declared payroll sub-amounts.
func salaryBase(in models.SalaryIncome) float64 {
	return in.AnnualNet.Float() + in.AnnualBonus.Float()
}

// monotributoBase looks the presumed annual capacity up from the scale table.
func monotributoBase(in models.MonotributoIncome) float64 {
	letter := strings.ToUpper(strings.TrimSpace(in.Category))
	return MonotributoScale[letter]
}

// ivaBase estimates the annual taxable base behind the declared monthly
// fiscal debits: average the months, project to a year, then gross up by
// the statutory rate. No declared months means no estimate.
func ivaBase(in models.IVAIncome) float64 {
	if len(in.MonthlyFiscalDebits) == 0 {
		return 0
	}
	var sum float64
	for _, m := range in.MonthlyFiscalDebits {
		sum += m.Float()
	}
	mean := sum / float64(len(in.MonthlyFiscalDebits))
	return (mean * 12) / ivaStatutoryRate
}

func feesBase(in models.FeeIncome) float64 {
	return in.AnnualFees.Float()
}

func rentalsBase(in models.RentalIncome) float64 {
	return in.AnnualRent.Float()
}

// assetSalesBase deducts the consumed amount from declared proceeds. The
// result may go negative when consumption exceeds proceeds; that is kept as
// declared rather than floored.
func assetSalesBase(in models.AssetSaleIncome) float64 {
	return in.Proceeds.Float() - in.ConsumedAmount.Float()
}

// balanceSheetBase computes the entity capacity: the greater of the weighted
// liquidity/income term and the net worth floor. The chosen branch is
// returned for audit display.
func balanceSheetBase(in models.BalanceSheetIncome) (float64, models.BalanceBranch) {
	income := in.Revenue.Float()
	if in.UseGrossResult {
		income = in.Revenue.Float() - in.Cost.Float()
	}

	weighted := in.CashAndBanks.Float()*(in.CashWeightPct.Float()/100) +
		income*(in.IncomeWeightPct.Float()/100)
	floor := in.NetWorth.Float() * (in.NetWorthPct.Float() / 100)

	if weighted >= floor {
		return weighted, models.BranchWeighted
	}
	return floor, models.BranchFloor
}

// customFieldTotal normalizes each extra income line to ARS and sums them.
func customFieldTotal(fields []models.CustomField, rate float64) float64 {
	var total float64
	for _, f := range fields {
		total += ToBase(f.Value.Float(), f.Currency, rate)
	}
	return total
}

// remAdjusted reports whether the category's base is a legally frozen
// nominal value that the REM index must be applied to.
func remAdjusted(key models.CategoryKey) bool {
	return key == models.CategorySalary || key == models.CategoryMonotributo
}

// categoryBase dispatches to the calculator for one category and returns
// the raw base before index adjustment and custom fields.
func categoryBase(key models.CategoryKey, fd models.FinancialData) (float64, models.BalanceBranch) {
	switch key {
	case models.CategorySalary:
		return salaryBase(fd.Salary), ""
	case models.CategoryMonotributo:
		return monotributoBase(fd.Monotributo), ""
	case models.CategoryIVA:
		return ivaBase(fd.IVA), ""
	case models.CategoryFees:
		return feesBase(fd.Fees), ""
	case models.CategoryRentals:
		return rentalsBase(fd.Rentals), ""
	case models.CategoryAssetSales:
		return assetSalesBase(fd.AssetSales), ""
	case models.CategoryBalanceSheet:
		return balanceSheetBase(fd.BalanceSheet)
	default:
		return 0, ""
	}
}
