package analysis

import (
	"github.com/tomasvidela/solva/internal/models"
)

// Classify maps a coverage ratio to a risk tier. Thresholds are strict
// greater-than, evaluated top-down: a ratio of exactly 1.5 is acceptable,
// not good.
func Classify(ratio float64) models.Classification {
	switch {
	case ratio > 2:
		return models.ClassExcellent
	case ratio > 1.5:
		return models.ClassGood
	case ratio > 1.1:
		return models.ClassAcceptable
	case ratio > 1:
		return models.ClassCaution
	default:
		return models.ClassRisk
	}
}

// Compute runs the declared-capacity and solvency calculation over one
// snapshot. It does not touch the financing plan; ComputeCoverage is
// independent and its output is merged by the caller.
func Compute(client models.Client, fd models.FinancialData, settings models.AnalysisSettings, rate float64) models.CalculationResult {
	rate = SanitizeRate(rate)
	remPct := settings.Simulation.REMPercent.Float()
	cacPct := settings.Simulation.CACPercent.Float()

	result := models.CalculationResult{
		ExchangeRate: rate,
	}

	var totalARS float64
	for _, key := range models.AllCategories {
		cr := models.CategoryResult{Key: key}

		if !key.AppliesTo(client.PersonType) {
			result.Categories = append(result.Categories, cr)
			continue
		}
		cr.Applicable = true

		raw, branch := categoryBase(key, fd)
		cr.BaseRaw = raw
		cr.BalanceBranch = branch

		// Frozen nominal values are brought forward by the REM index
		// before custom fields enter.
		adjusted := raw
		if remAdjusted(key) {
			adjusted = raw * (1 + remPct/100)
		}

		cr.CustomFieldTotal = customFieldTotal(fd.CustomFields[key], rate)
		adjusted += cr.CustomFieldTotal
		cr.BaseAdjusted = adjusted

		if key == models.CategoryBalanceSheet {
			// Already internally weighted; contributes at full value.
			cr.WeightPct = 100
			cr.Subtotal = adjusted
		} else {
			cr.WeightPct = settings.Weights[key]
			cr.Subtotal = adjusted * (cr.WeightPct / 100)
		}

		totalARS += cr.Subtotal
		result.Categories = append(result.Categories, cr)
	}

	result.TotalCapacityARS = totalARS
	result.TotalCapacityUSD = totalARS / rate

	// Simulated operation, always expressed in USD.
	sim := settings.Simulation
	balance := sim.OperationAmount.Float() - sim.Contribution.Float()
	if balance < 0 {
		balance = 0
	}
	result.BalanceToFinance = balance

	if sim.InstallmentCount > 0 {
		result.BaseInstallment = balance / float64(sim.InstallmentCount)
	}
	result.AdjustedInstallment = result.BaseInstallment * (1 + cacPct/100)

	if result.AdjustedInstallment > 0 {
		result.SolvencyMonths = result.TotalCapacityUSD / result.AdjustedInstallment
	}
	result.CoverageRatio = result.SolvencyMonths / 12
	result.Classification = Classify(result.CoverageRatio)

	return result
}
