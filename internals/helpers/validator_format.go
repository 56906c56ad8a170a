package helper

import (
	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors mengubah validator.ValidationErrors jadi map per-field
// yang siap dikirim lewat JsonValidationError.
func FormatValidationErrors(err error) map[string][]string {
	out := map[string][]string{}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fieldErr := range validationErrs {
		field := fieldErr.Field()
		var msg string
		switch fieldErr.Tag() {
		case "required":
			msg = field + " wajib diisi."
		case "email":
			msg = "Format email tidak valid."
		case "min":
			msg = field + " minimal " + fieldErr.Param() + "."
		case "max":
			msg = field + " maksimal " + fieldErr.Param() + "."
		case "oneof":
			msg = field + " harus salah satu dari: " + fieldErr.Param() + "."
		case "gte":
			msg = field + " minimal " + fieldErr.Param() + "."
		case "lte":
			msg = field + " maksimal " + fieldErr.Param() + "."
		case "dive":
			msg = "Isi " + field + " tidak valid."
		default:
			msg = field + " tidak valid."
		}
		out[field] = append(out[field], msg)
	}
	return out
}
