package accounting

import (
	"github.com/shopspring/decimal"
)

// CustomCompanyAmount values a payment amount in company currency using the
// partner's custom rate. The rate is interpreted as payment-currency units per
// one company-currency unit, so the conversion is a division.
// Callers must guard against a zero rate.
func CustomCompanyAmount(amount, customRate decimal.Decimal) decimal.Decimal {
	return amount.Div(customRate)
}

// ExchangeDifference computes the delta between valuing a payment at the
// standard (official) rate and at the partner's custom rate, in company
// currency. A positive result is a gain (the standard conversion yields more
// company-currency value), a negative result a loss.
//
// When the custom rate is zero/unset, or the payment is already in company
// currency, no foreign-exchange adjustment applies and the difference is zero.
// No rounding is applied here; rounding happens at booking time.
func ExchangeDifference(amount decimal.Decimal, paymentCurrency, companyCurrency string, customRate, standardCompanyAmount decimal.Decimal) decimal.Decimal {
	if customRate.IsZero() || paymentCurrency == companyCurrency {
		return decimal.Zero
	}
	return standardCompanyAmount.Sub(CustomCompanyAmount(amount, customRate))
}

// AdjustmentAmounts are the rounded figures booked by the ledger adjustment.
// The invariant Reduced + Exchange == Custom holds at two decimal places.
type AdjustmentAmounts struct {
	Custom   decimal.Decimal // round(amount / rate, 2): the credit side total
	Exchange decimal.Decimal // round(abs(difference), 2): the carved-out gain/loss
	Reduced  decimal.Decimal // round(custom - exchange, 2): the remaining debit
}

// ComputeAdjustment derives the booking amounts for an exchange difference
// from the payment amount, the custom rate and the unrounded difference.
// Callers must guard against a zero rate.
func ComputeAdjustment(amount, customRate, difference decimal.Decimal) AdjustmentAmounts {
	custom := CustomCompanyAmount(amount, customRate).Round(2)
	exchange := difference.Abs().Round(2)
	return AdjustmentAmounts{
		Custom:   custom,
		Exchange: exchange,
		Reduced:  custom.Sub(exchange).Round(2),
	}
}
