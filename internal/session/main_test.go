package session_test

import (
	"context"
	"testing"

	"github.com/nikolayk812/storefront-demo/internal/catalog"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"go.uber.org/goleak"
	"golang.org/x/text/currency"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func gadgets(t *testing.T) domain.Catalog {
	t.Helper()

	c, err := catalog.Load(context.Background(), catalog.Static(currency.USD))
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}

	return c
}
