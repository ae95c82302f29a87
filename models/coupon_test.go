package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCouponNormalizesCode(t *testing.T) {
	for _, raw := range []string{"primeira", " PRIMEIRA ", "Primeira"} {
		coupon, err := LookupCoupon(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, "PRIMEIRA", coupon.Code)
		assert.Equal(t, 10.0, coupon.DiscountPercent)
	}
}

func TestLookupCouponUnknownCode(t *testing.T) {
	_, err := LookupCoupon("DESCONTO50")
	assert.ErrorIs(t, err, ErrUnknownCoupon)
}

func TestCouponTable(t *testing.T) {
	expected := map[string]float64{
		"PRIMEIRA":    10,
		"ABREAI10":    10,
		"ABREAI15":    15,
		"ABREAI20":    20,
		"FRETEGRATIS": 0,
	}
	all := Coupons()
	require.Len(t, all, len(expected))
	for _, coupon := range all {
		pct, ok := expected[coupon.Code]
		require.True(t, ok, coupon.Code)
		assert.Equal(t, pct, coupon.DiscountPercent, coupon.Code)
		assert.Equal(t, coupon.Code == "FRETEGRATIS", coupon.FreeShipping, coupon.Code)
	}
}
