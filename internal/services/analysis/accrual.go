package analysis

import (
	"strings"
	"time"

	"github.com/tomasvidela/solva/internal/models"
)

// dateLayouts are the accepted due-date formats, tried in order. Day comes
// before month in the slash and dash forms (locale convention of the source
// documents).
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"02/01/2006",
	"02/01/06",
	"02-01-2006",
	"02-01-06",
}

// ParseFlexibleDate parses a due or target date string. Two-digit years are
// assumed to be 2000-based ("05/03/24" is 2024-03-05, never 1924). Returns
// ok=false for anything unparseable.
func ParseFlexibleDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		twoDigitYear := strings.HasSuffix(layout, "/06") || strings.HasSuffix(layout, "-06")
		if twoDigitYear && t.Year() < 2000 {
			// Go maps two-digit years 69-99 to 19xx; the source domain
			// has no pre-2000 due dates. Four-digit years stay as given.
			t = t.AddDate(100, 0, 0)
		}
		return t, true
	}
	return time.Time{}, false
}

// AccruedAmount computes how much of one financing rule's balance will have
// been paid by the target date.
//
// The first installment is always counted once its due date has passed;
// subsequent installments are assumed strictly sequential and non-skippable.
// Annual periodicity steps whole years to preserve calendar-day alignment.
// Any date parse failure yields 0: nothing is proven paid yet.
func AccruedAmount(rule models.FinancingRule, target time.Time) float64 {
	if target.IsZero() {
		return 0
	}

	first, ok := ParseFlexibleDate(rule.FirstDueDate)
	if !ok {
		return 0
	}
	if first.After(target) {
		return 0
	}

	balance := rule.BalanceToFinance.Float()
	if rule.Periodicity == models.PeriodicitySinglePayment {
		// The one due date has passed, the full balance is paid.
		return balance
	}

	step := rule.Periodicity.Months()
	if step == 0 {
		return 0
	}

	count := 1
	for i := 1; i < rule.InstallmentCount; i++ {
		var due time.Time
		if rule.Periodicity == models.PeriodicityAnnual {
			due = first.AddDate(i, 0, 0)
		} else {
			due = first.AddDate(0, i*step, 0)
		}
		if due.After(target) {
			break
		}
		count++
	}

	accrued := float64(count) * rule.InstallmentAmount.Float()
	if accrued > balance {
		// Rounding drift in declared installment amounts must not report
		// more than 100% of the balance paid.
		accrued = balance
	}
	return accrued
}
