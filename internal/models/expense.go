package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ExpenseForm is the in-progress expense entry of a session: one flag and one
// sub-amount per category, the free-text purpose for "other", and the "none"
// override.
type ExpenseForm struct {
	Travelling       bool            `json:"travelling"`
	TravellingAmount decimal.Decimal `json:"travelling_amt"`
	Mobile           bool            `json:"mobile"`
	MobileAmount     decimal.Decimal `json:"mobile_amt"`
	Food             bool            `json:"food"`
	FoodAmount       decimal.Decimal `json:"food_amt"`
	Other            bool            `json:"other"`
	OtherAmount      decimal.Decimal `json:"other_amt"`
	OtherPurpose     string          `json:"other_purpose"`
	None             bool            `json:"none"`
}

// Expense is the reduced form stored on a TaskRecord
type Expense struct {
	Purpose      string
	OtherPurpose string
	Amount       decimal.Decimal
}

// SetNone toggles the "none" override. Turning it on clears every category
// flag, sub-amount and the other-purpose text.
func (f *ExpenseForm) SetNone(on bool) {
	if on {
		*f = ExpenseForm{}
	}
	f.None = on
}

// Select turns a category on with the given sub-amount and drops the "none"
// override.
func (f *ExpenseForm) Select(c ExpenseCategory, amount decimal.Decimal) {
	f.None = false
	switch c {
	case CategoryTravelling:
		f.Travelling, f.TravellingAmount = true, amount
	case CategoryMobileRecharge:
		f.Mobile, f.MobileAmount = true, amount
	case CategoryFood:
		f.Food, f.FoodAmount = true, amount
	case CategoryOther:
		f.Other, f.OtherAmount = true, amount
	}
}

// Deselect turns a category off and drops its sub-amount. Deselecting
// "other" also drops its purpose.
func (f *ExpenseForm) Deselect(c ExpenseCategory) {
	switch c {
	case CategoryTravelling:
		f.Travelling, f.TravellingAmount = false, decimal.Zero
	case CategoryMobileRecharge:
		f.Mobile, f.MobileAmount = false, decimal.Zero
	case CategoryFood:
		f.Food, f.FoodAmount = false, decimal.Zero
	case CategoryOther:
		f.Other, f.OtherAmount, f.OtherPurpose = false, decimal.Zero, ""
	}
}

// Selected reports whether category c is ticked
func (f *ExpenseForm) Selected(c ExpenseCategory) bool {
	switch c {
	case CategoryTravelling:
		return f.Travelling
	case CategoryMobileRecharge:
		return f.Mobile
	case CategoryFood:
		return f.Food
	case CategoryOther:
		return f.Other
	}
	return false
}

// AmountFor returns the sub-amount entered for category c
func (f *ExpenseForm) AmountFor(c ExpenseCategory) decimal.Decimal {
	switch c {
	case CategoryTravelling:
		return f.TravellingAmount
	case CategoryMobileRecharge:
		return f.MobileAmount
	case CategoryFood:
		return f.FoodAmount
	case CategoryOther:
		return f.OtherAmount
	}
	return decimal.Zero
}

// IsEmpty reports whether nothing has been entered yet
func (f *ExpenseForm) IsEmpty() bool {
	if f.None || f.OtherPurpose != "" {
		return false
	}
	for _, c := range ExpenseCategories {
		if f.Selected(c) {
			return false
		}
	}
	return true
}

// Validate rejects negative sub-amounts on selected categories and an "other"
// selection without a purpose.
func (f *ExpenseForm) Validate() error {
	if f.None {
		return nil
	}
	for _, c := range ExpenseCategories {
		if f.Selected(c) && f.AmountFor(c).IsNegative() {
			return ErrNegativeAmount
		}
	}
	if f.Other && strings.TrimSpace(f.OtherPurpose) == "" {
		return ErrMissingOtherPurpose
	}
	return nil
}

// Reduce collapses the form into the stored expense fields. Only selected
// categories contribute to the amount, and a form with no category ticked
// reduces to "none".
func (f *ExpenseForm) Reduce() Expense {
	var purposes []string
	total := decimal.Zero
	for _, c := range ExpenseCategories {
		if !f.Selected(c) {
			continue
		}
		purposes = append(purposes, string(c))
		total = total.Add(f.AmountFor(c))
	}
	if f.None || len(purposes) == 0 {
		return Expense{Purpose: ExpenseNone, Amount: decimal.Zero}
	}

	exp := Expense{
		Purpose: strings.Join(purposes, ExpensePurposeSeparator),
		Amount:  total,
	}
	if f.Other {
		exp.OtherPurpose = strings.TrimSpace(f.OtherPurpose)
	}
	return exp
}
