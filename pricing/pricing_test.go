package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCheckoutTotals(t *testing.T) {
	// subtotal above the free-shipping threshold
	require.Equal(t, 960.0, Tax(6000))
	require.Equal(t, 0.0, Shipping(6000))
	require.Equal(t, 6960.0, Total(6000))

	// subtotal below the threshold pays flat shipping
	require.Equal(t, 320.0, Tax(2000))
	require.Equal(t, 500.0, Shipping(2000))
	require.Equal(t, 2820.0, Total(2000))
}

func TestShippingThresholdIsExclusive(t *testing.T) {
	// exactly at the threshold still pays shipping
	require.Equal(t, ShippingFee, Shipping(FreeShippingThreshold))
	require.Equal(t, 0.0, Shipping(FreeShippingThreshold+0.01))
}

func TestTotalRoundsToTwoDecimals(t *testing.T) {
	// 1234.555 * 0.16 = 197.5288 -> 197.53
	require.InDelta(t, 197.53, Tax(1234.555), 0.001)
	require.Equal(t, 1660.0, Total(1000))
}

func TestDiscountDisplay(t *testing.T) {
	require.Equal(t, 20, DiscountPercent(1000, 1250))
	require.Equal(t, 250.0, Savings(1000, 1250))

	// no original price or original below price means no discount
	require.Equal(t, 0, DiscountPercent(1000, 0))
	require.Equal(t, 0, DiscountPercent(1000, 900))
	require.Equal(t, 0.0, Savings(1000, 900))
}

func TestTrackingNumberFormat(t *testing.T) {
	placed := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)
	require.Equal(t, "ORD-2026-000042", TrackingNumber(42, placed))
	require.Equal(t, "ORD-2026-1234567", TrackingNumber(1234567, placed))
}
