package analysis

import (
	"strings"
	"time"

	"github.com/tomasvidela/solva/internal/models"
)

// missingTargetPlaceholder is reported when no target date is known. It is a
// documented conservative placeholder, not a computed value: presenting 0%
// as if certified would be worse than an explicit estimate, so callers must
// check the estimated flag before treating it as derived from accrual data.
const missingTargetPlaceholder = 85.0

// ComputeCoverage returns the share (0-100, two decimals) of the total
// amount financed that will have been paid by the target date, across both
// rule groups and any down payments.
//
// estimated is true when the placeholder was returned because targetDate
// was absent. An unparseable (but present) targetDate is substituted with
// one year from now and computed normally.
func ComputeCoverage(plan models.FinancingPlan, targetDate string, rate float64) (percent float64, estimated bool) {
	if strings.TrimSpace(targetDate) == "" {
		return missingTargetPlaceholder, true
	}

	target, ok := ParseFlexibleDate(targetDate)
	if !ok {
		target = time.Now().AddDate(1, 0, 0)
	}

	rate = SanitizeRate(rate)

	var totalDown float64
	for _, dp := range plan.DownPayments {
		totalDown += ToBase(dp.Amount.Float(), dp.Currency, rate)
	}

	paidA, totalA := groupTotals(plan.GroupA, target, rate)
	paidB, totalB := groupTotals(plan.GroupB, target, rate)

	totalPaid := totalDown + paidA + paidB
	totalToFinance := totalA + totalB

	if totalToFinance == 0 {
		if !plan.HasRules() {
			// No rules and no required balance: nothing to cover, even
			// when down payments were recorded.
			return 100, false
		}
		// Rules exist but no balance does yet.
		return 0, false
	}

	return clamp(round2(totalPaid/totalToFinance*100), 0, 100), false
}

// groupTotals sums accrued and total-to-finance amounts for the active rules
// of one group, normalized to ARS using each rule's own currency flag.
func groupTotals(rules []models.FinancingRule, target time.Time, rate float64) (paid, total float64) {
	for _, rule := range rules {
		if !rule.Active {
			continue
		}
		paid += ToBase(AccruedAmount(rule, target), rule.Currency, rate)
		total += ToBase(rule.BalanceToFinance.Float(), rule.Currency, rate)
	}
	return paid, total
}
