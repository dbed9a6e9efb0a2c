package dto

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterBindingValidators installs the custom binding validators the DTOs
// use: "isodate" (YYYY-MM-DD) and "yearmonth" (YYYY-MM). It must run once
// before any binding happens.
func RegisterBindingValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	if err := v.RegisterValidation("isodate", isISODate); err != nil {
		return err
	}
	return v.RegisterValidation("yearmonth", isYearMonth)
}

func isISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}

func isYearMonth(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01", fl.Field().String())
	return err == nil
}
