package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func ZeroMoney(unit currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: unit}
}

// Times returns m multiplied by a whole quantity.
func (m Money) Times(quantity int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(quantity))),
		Currency: m.Currency,
	}
}

// Plus adds o to m. Currencies are expected to match, the catalog guarantees it.
func (m Money) Plus(o Money) Money {
	return Money{
		Amount:   m.Amount.Add(o.Amount),
		Currency: m.Currency,
	}
}

// Fixed formats the amount with exactly two decimals, e.g. "999.98".
func (m Money) Fixed() string {
	return m.Amount.StringFixed(2)
}

// String renders the currency symbol followed by the fixed amount, e.g. "$399.99".
// Only the symbol goes through x/text, its amount formatting takes floats.
func (m Money) String() string {
	return moneyPrinter.Sprint(currency.Symbol(m.Currency)) + m.Fixed()
}
