package models

import (
	"errors"
	"strings"
)

// ErrUnknownCoupon is returned for codes missing from the coupon table
var ErrUnknownCoupon = errors.New("unknown coupon code")

// Coupon is a static discount rule. At most one coupon is applied to a
// checkout session at a time; applying a new one replaces the previous.
type Coupon struct {
	Code            string  `json:"code"`
	Label           string  `json:"label"`
	DiscountPercent float64 `json:"discount_percent"`
	FreeShipping    bool    `json:"free_shipping"`
}

// The marketing coupon table. Codes are the external contract; do not
// rename without telling marketing.
var coupons = []Coupon{
	{Code: "PRIMEIRA", Label: "10% OFF - Primeira Compra", DiscountPercent: 10},
	{Code: "ABREAI10", Label: "10% OFF", DiscountPercent: 10},
	{Code: "ABREAI15", Label: "15% OFF", DiscountPercent: 15},
	{Code: "ABREAI20", Label: "20% OFF", DiscountPercent: 20},
	{Code: "FRETEGRATIS", Label: "Frete Grátis", DiscountPercent: 0, FreeShipping: true},
}

// LookupCoupon finds a coupon by code, case-insensitively
func LookupCoupon(code string) (Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, coupon := range coupons {
		if coupon.Code == code {
			return coupon, nil
		}
	}
	return Coupon{}, ErrUnknownCoupon
}

// Coupons returns the full coupon table
func Coupons() []Coupon {
	out := make([]Coupon, len(coupons))
	copy(out, coupons)
	return out
}
