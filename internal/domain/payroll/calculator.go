package payroll

import "github.com/shopspring/decimal"

// Salary computation constants. The tax is a single flat bracket, not
// marginal tiers.
var (
	taxThreshold = decimal.NewFromInt(50000)
	taxRate      = decimal.NewFromFloat(0.10)
	pfRate       = decimal.NewFromFloat(0.12)
	esiThreshold = decimal.NewFromInt(21000)
	esiRate      = decimal.NewFromFloat(0.0175)
)

// SalaryBreakdown is the result of a salary computation.
type SalaryBreakdown struct {
	GrossSalary     decimal.Decimal `json:"gross_salary"`
	Tax             decimal.Decimal `json:"tax"`
	PF              decimal.Decimal `json:"pf"`
	ESI             decimal.Decimal `json:"esi"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
}

// Calculate computes the salary breakdown:
//
//	gross = basic + allowances + bonus + overtime
//	tax   = 10% of gross when gross exceeds 50000, else 0
//	pf    = 12% of basic
//	esi   = 1.75% of gross when gross exceeds 21000, else 0
//	net   = gross - (deductions + tax + pf + esi)
//
// Thresholds are strict: gross of exactly 50000 pays no tax, exactly 21000
// pays no ESI. No rounding is applied; presentation-layer rounding happens
// where amounts are displayed. Negative inputs are not rejected here;
// validation is the caller's responsibility.
func Calculate(basic, allowances, deductions, bonus, overtime decimal.Decimal) SalaryBreakdown {
	gross := basic.Add(allowances).Add(bonus).Add(overtime)

	tax := decimal.Zero
	if gross.GreaterThan(taxThreshold) {
		tax = gross.Mul(taxRate)
	}

	pf := basic.Mul(pfRate)

	esi := decimal.Zero
	if gross.GreaterThan(esiThreshold) {
		esi = gross.Mul(esiRate)
	}

	totalDeductions := deductions.Add(tax).Add(pf).Add(esi)

	return SalaryBreakdown{
		GrossSalary:     gross,
		Tax:             tax,
		PF:              pf,
		ESI:             esi,
		TotalDeductions: totalDeductions,
		NetSalary:       gross.Sub(totalDeductions),
	}
}
