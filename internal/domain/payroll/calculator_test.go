package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestCalculate(t *testing.T) {
	cases := []struct {
		name                                       string
		basic, allowances, deductions, bonus, ot   int64
		gross, tax, pf, esi, totalDeductions, nett string
	}{
		{
			// Both thresholds are strict: at exactly 50000 no tax applies,
			// and 50000 > 21000 so ESI does.
			name:  "tax boundary at exactly 50000",
			basic: 50000,
			gross: "50000", tax: "0", pf: "6000", esi: "875",
			totalDeductions: "6875", nett: "43125",
		},
		{
			name:  "above tax threshold",
			basic: 60000,
			gross: "60000", tax: "6000", pf: "7200", esi: "1050",
			totalDeductions: "14250", nett: "45750",
		},
		{
			name:  "esi boundary at exactly 21000",
			basic: 21000,
			gross: "21000", tax: "0", pf: "2520", esi: "0",
			totalDeductions: "2520", nett: "18480",
		},
		{
			name:  "below both thresholds",
			basic: 20000,
			gross: "20000", tax: "0", pf: "2400", esi: "0",
			totalDeductions: "2400", nett: "17600",
		},
		{
			name:  "allowances and bonus push gross over tax threshold",
			basic: 40000, allowances: 8000, bonus: 5000, ot: 2000,
			gross: "55000", tax: "5500", pf: "4800", esi: "962.5",
			totalDeductions: "11262.5", nett: "43737.5",
		},
		{
			name:  "manual deductions are pre-tax and additive",
			basic: 60000, deductions: 1000,
			gross: "60000", tax: "6000", pf: "7200", esi: "1050",
			totalDeductions: "15250", nett: "44750",
		},
		{
			name:  "zero everything",
			gross: "0", tax: "0", pf: "0", esi: "0",
			totalDeductions: "0", nett: "0",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Calculate(d(c.basic), d(c.allowances), d(c.deductions), d(c.bonus), d(c.ot))

			assert.True(t, got.GrossSalary.Equal(decimal.RequireFromString(c.gross)),
				"gross = %s, want %s", got.GrossSalary, c.gross)
			assert.True(t, got.Tax.Equal(decimal.RequireFromString(c.tax)),
				"tax = %s, want %s", got.Tax, c.tax)
			assert.True(t, got.PF.Equal(decimal.RequireFromString(c.pf)),
				"pf = %s, want %s", got.PF, c.pf)
			assert.True(t, got.ESI.Equal(decimal.RequireFromString(c.esi)),
				"esi = %s, want %s", got.ESI, c.esi)
			assert.True(t, got.TotalDeductions.Equal(decimal.RequireFromString(c.totalDeductions)),
				"total deductions = %s, want %s", got.TotalDeductions, c.totalDeductions)
			assert.True(t, got.NetSalary.Equal(decimal.RequireFromString(c.nett)),
				"net = %s, want %s", got.NetSalary, c.nett)
		})
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	a := Calculate(d(60000), d(1500), d(200), d(3000), d(750))
	b := Calculate(d(60000), d(1500), d(200), d(3000), d(750))
	assert.True(t, a.NetSalary.Equal(b.NetSalary))
	assert.True(t, a.TotalDeductions.Equal(b.TotalDeductions))
}
