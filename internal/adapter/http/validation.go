package http

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	expenseDomain "expense-approval-service/internal/domain/expense"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var (
	reHex32    = regexp.MustCompile(`^[a-f0-9]{32}$`)
	reCurrency = regexp.MustCompile(`^[A-Z]{3}$`)
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// public id = 32-char lowercase hex
	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return reHex32.MatchString(fl.Field().String())
	})
	// 3-letter uppercase currency code
	_ = v.RegisterValidation("currency3", func(fl validator.FieldLevel) bool {
		return reCurrency.MatchString(fl.Field().String())
	})
	// member of the closed expense category set
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return expenseDomain.Category(fl.Field().String()).Valid()
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "hex32":
			out = append(out, FieldError{Field: field, Message: "must be 32-char lowercase hex"})
		case "currency3":
			out = append(out, FieldError{Field: field, Message: "must be a 3-letter uppercase currency code"})
		case "category":
			out = append(out, FieldError{Field: field, Message: "is not a known expense category"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email address"})
		case "oneof":
			out = append(out, FieldError{Field: field, Message: "must be one of: " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
