package session_test

import (
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/shopspring/decimal"
)

var moneyComparer = cmp.Comparer(func(x, y domain.Money) bool {
	return x.Amount.Equal(y.Amount) && x.Currency.String() == y.Currency.String()
})

func decimalOf(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
