package dto

import (
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator for Echo
// swagger:ignore
type Validator struct {
	validator *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	// max 以 rune 計算，bcrypt 的上限是 bytes
	_ = v.RegisterValidation("maxbytes", maxBytes)
	return &Validator{validator: v}
}

// Validate calls the underlying validator
func (v *Validator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	f := fl.Field()
	if f.Kind() != reflect.String {
		return false
	}
	return len(f.String()) <= limit
}
