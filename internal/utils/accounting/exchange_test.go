package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/partnerfx/partner_fx_app/internal/utils/accounting"
)

func TestCustomCompanyAmount(t *testing.T) {
	amount := decimal.NewFromInt(131000)
	rate := decimal.NewFromInt(1310)

	got := accounting.CustomCompanyAmount(amount, rate)

	assert.True(t, decimal.NewFromInt(100).Equal(got), "131000 / 1310 should be 100, got %s", got)
}

func TestExchangeDifference_Loss(t *testing.T) {
	// Standard conversion values the payment lower than the custom rate does:
	// the difference is negative (a loss for the company).
	diff := accounting.ExchangeDifference(
		decimal.NewFromInt(131000), "IQD", "USD",
		decimal.NewFromInt(1310), decimal.NewFromInt(95),
	)

	assert.True(t, decimal.NewFromInt(-5).Equal(diff), "expected -5, got %s", diff)
}

func TestExchangeDifference_Gain(t *testing.T) {
	diff := accounting.ExchangeDifference(
		decimal.NewFromInt(131000), "IQD", "USD",
		decimal.NewFromInt(1310), decimal.NewFromInt(105),
	)

	assert.True(t, decimal.NewFromInt(5).Equal(diff), "expected 5, got %s", diff)
}

func TestExchangeDifference_ZeroRate(t *testing.T) {
	diff := accounting.ExchangeDifference(
		decimal.NewFromInt(131000), "IQD", "USD",
		decimal.Zero, decimal.NewFromInt(95),
	)

	assert.True(t, diff.IsZero())
}

func TestExchangeDifference_SameCurrency(t *testing.T) {
	diff := accounting.ExchangeDifference(
		decimal.NewFromInt(100), "USD", "USD",
		decimal.NewFromInt(1310), decimal.NewFromInt(100),
	)

	assert.True(t, diff.IsZero())
}

func TestComputeAdjustment_Loss(t *testing.T) {
	amounts := accounting.ComputeAdjustment(
		decimal.NewFromInt(131000),
		decimal.NewFromInt(1310),
		decimal.NewFromInt(-5),
	)

	assert.True(t, decimal.NewFromInt(100).Equal(amounts.Custom), "custom: %s", amounts.Custom)
	assert.True(t, decimal.NewFromInt(5).Equal(amounts.Exchange), "exchange: %s", amounts.Exchange)
	assert.True(t, decimal.NewFromInt(95).Equal(amounts.Reduced), "reduced: %s", amounts.Reduced)
}

func TestComputeAdjustment_Gain(t *testing.T) {
	amounts := accounting.ComputeAdjustment(
		decimal.NewFromInt(131000),
		decimal.NewFromInt(1310),
		decimal.NewFromInt(5),
	)

	// The exchange amount is the absolute difference regardless of sign.
	assert.True(t, decimal.NewFromInt(100).Equal(amounts.Custom))
	assert.True(t, decimal.NewFromInt(5).Equal(amounts.Exchange))
	assert.True(t, decimal.NewFromInt(95).Equal(amounts.Reduced))
}

func TestComputeAdjustment_Rounding(t *testing.T) {
	// 100000 / 1317 = 75.9301... rounds to 75.93.
	amounts := accounting.ComputeAdjustment(
		decimal.NewFromInt(100000),
		decimal.NewFromInt(1317),
		decimal.RequireFromString("-0.437"),
	)

	assert.True(t, decimal.RequireFromString("75.93").Equal(amounts.Custom), "custom: %s", amounts.Custom)
	assert.True(t, decimal.RequireFromString("0.44").Equal(amounts.Exchange), "exchange: %s", amounts.Exchange)
	assert.True(t, decimal.RequireFromString("75.49").Equal(amounts.Reduced), "reduced: %s", amounts.Reduced)
}

func TestComputeAdjustment_BalancesAgainstCredit(t *testing.T) {
	// After the rewrite the entry nets: reduced debit + exchange debit = custom credit.
	amounts := accounting.ComputeAdjustment(
		decimal.NewFromInt(131000),
		decimal.NewFromInt(1310),
		decimal.NewFromInt(-5),
	)

	total := amounts.Reduced.Add(amounts.Exchange)
	assert.True(t, amounts.Custom.Equal(total), "debits %s should equal credit %s", total, amounts.Custom)
}
