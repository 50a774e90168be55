package models

import (
	"encoding/json"
	"testing"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `123.45`, 123.45},
		{"quoted number", `"123.45"`, 123.45},
		{"integer string", `"5000"`, 5000},
		{"comma decimal", `"123,45"`, 123.45},
		{"empty string", `""`, 0},
		{"whitespace string", `"  "`, 0},
		{"null", `null`, 0},
		{"garbage", `"abc"`, 0},
		{"negative", `-42`, -42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			if err := json.Unmarshal([]byte(tt.in), &a); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tt.in, err)
			}
			if a.Float() != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, a.Float(), tt.want)
			}
		})
	}
}

func TestAmount_UnmarshalInStruct(t *testing.T) {
	// Mixed representations inside one snapshot must not fail decoding.
	var si SalaryIncome
	raw := `{"annual_net": "1200000", "annual_bonus": null}`
	if err := json.Unmarshal([]byte(raw), &si); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if si.AnnualNet.Float() != 1200000 {
		t.Errorf("AnnualNet = %v, want 1200000", si.AnnualNet.Float())
	}
	if si.AnnualBonus.Float() != 0 {
		t.Errorf("AnnualBonus = %v, want 0", si.AnnualBonus.Float())
	}
}

func TestParseNumber_ThousandsNotMangled(t *testing.T) {
	// "1,234.56" carries a dot, so commas are not decimal separators here;
	// ParseFloat rejects it and the value degrades to 0.
	if got := ParseNumber("1,234.56"); got != 0 {
		t.Errorf("ParseNumber(1,234.56) = %v, want 0", got)
	}
}

func TestCategoryKey_AppliesTo(t *testing.T) {
	if CategorySalary.AppliesTo(PersonEntity) {
		t.Error("sueldos should not apply to entities")
	}
	if !CategorySalary.AppliesTo(PersonIndividual) {
		t.Error("sueldos should apply to individuals")
	}
	if CategoryBalanceSheet.AppliesTo(PersonIndividual) {
		t.Error("balance should not apply to individuals")
	}
	if !CategoryBalanceSheet.AppliesTo(PersonEntity) {
		t.Error("balance should apply to entities")
	}
	if !CategoryRentals.AppliesTo(PersonIndividual) || !CategoryRentals.AppliesTo(PersonEntity) {
		t.Error("alquileres should apply to both person types")
	}
}

func TestPeriodicity_Months(t *testing.T) {
	cases := map[Periodicity]int{
		PeriodicityMonthly:       1,
		PeriodicityQuarterly:     3,
		PeriodicitySemiannual:    6,
		PeriodicityAnnual:        12,
		PeriodicitySinglePayment: 0,
		Periodicity("bogus"):     0,
	}
	for p, want := range cases {
		if got := p.Months(); got != want {
			t.Errorf("%s.Months() = %d, want %d", p, got, want)
		}
	}
}
