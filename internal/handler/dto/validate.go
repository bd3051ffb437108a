package dto

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/maazimam/parkeasy-sub000/internal/interval"
)

// RegisterValidators adds the calendar tags used by request bodies to gin's validator
// and makes JSON binding reject fields the request types do not declare.
func RegisterValidators() error {
	binding.EnableDecoderDisallowUnknownFields = true

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	tags := map[string]validator.Func{
		"isodate":  isoDate,
		"halfhour": halfHour,
		"isostamp": isoStamp,
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := interval.ParseDate(fl.Field().String())
	return err == nil
}

func halfHour(fl validator.FieldLevel) bool {
	_, err := interval.ParseClock(fl.Field().String())
	return err == nil
}

func isoStamp(fl validator.FieldLevel) bool {
	_, err := interval.ParseStamp(fl.Field().String())
	return err == nil
}
