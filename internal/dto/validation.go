package dto

import (
	"reflect"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidations teaches a validator about decimal amounts and adds the "money" tag:
// a non-negative value with at most two decimal places.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	return v.RegisterValidation("money", validateMoney)
}

// decimalValue exposes a decimal to the validator as its string form.
// The zero value maps to nil so that "required" rejects it and "omitempty" skips it.
func decimalValue(field reflect.Value) interface{} {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok || d.IsZero() {
		return nil
	}
	return d.String()
}

func validateMoney(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	d, err := decimal.NewFromString(field.String())
	if err != nil {
		return false
	}
	return !d.IsNegative() && domain.HasMoneyScale(d)
}
