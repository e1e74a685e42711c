package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/erp-backend/internal/dto"
	"github.com/yungbote/erp-backend/internal/realtime"
)

func TestFinancialTransactionServiceCRUD(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()
	when := time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC)

	created, err := f.txns.Create(ctx, dto.FinancialTransaction{
		OrderID:         77,
		TransactionDate: when,
		TransactionType: "Payment",
		Amount:          decimal.RequireFromString("29.97"),
	})
	require.NoError(t, err)
	require.NotZero(t, created.TransactionID)

	got, err := f.txns.Get(ctx, created.TransactionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(77), got.OrderID)
	assert.True(t, got.TransactionDate.Equal(when))
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("29.97")))

	got.TransactionType = "Refund"
	ok, err := f.txns.Update(ctx, *got)
	require.NoError(t, err)
	assert.True(t, ok)

	list, err := f.txns.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Refund", list[0].TransactionType)

	ok, err = f.txns.Delete(ctx, created.TransactionID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.txns.Update(ctx, *got)
	require.NoError(t, err)
	assert.False(t, ok)

	events := f.bus.Events()
	require.Len(t, events, 3)
	assert.Equal(t, realtime.EntityFinancialTransaction, events[0].Entity)
}
