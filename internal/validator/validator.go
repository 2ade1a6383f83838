// Package validator は go-playground/validator のラッパー。
package validator

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// 入力が不正
var ErrInvalidInput = errors.New("invalid input")

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()
	// 前後空白だけの値を弾く
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &Validator{v: v}
}

// Struct はタグで検証し、失敗時は ErrInvalidInput を包んで返す
func (val *Validator) Struct(s interface{}) error {
	if err := val.v.Struct(s); err != nil {
		return errors.Join(ErrInvalidInput, err)
	}
	return nil
}

func (val *Validator) Var(field interface{}, tag string) error {
	if err := val.v.Var(field, tag); err != nil {
		return errors.Join(ErrInvalidInput, err)
	}
	return nil
}
