package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DonationInput is the client-supplied part of a donation.
// swagger:model DonationInput
type DonationInput struct {
	DonorName     string  `json:"donorName" validate:"required"`
	ContactNumber string  `json:"contactNumber" validate:"required,min=10"`
	FoodType      string  `json:"foodType" validate:"required,oneof=Cooked Packed"`
	Quantity      string  `json:"quantity" validate:"required"`
	City          string  `json:"city" validate:"required,city"`
	Area          *string `json:"area"`
	// IsFresh confirms the food was prepared within the last two hours.
	IsFresh *bool `json:"isFresh" validate:"required,eq=true"`
}

// Validate returns a *ValidationError for the first invalid field, or nil.
func (in *DonationInput) Validate() error {
	return validateStruct(in)
}

// NgoRequestInput is the client-supplied part of an NGO request.
// swagger:model NgoRequestInput
type NgoRequestInput struct {
	NgoName       string `json:"ngoName" validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required,min=10"`
	Requirements  string `json:"requirements" validate:"required"`
	City          string `json:"city" validate:"required,city"`
}

// Validate returns a *ValidationError for the first invalid field, or nil.
func (in *NgoRequestInput) Validate() error {
	return validateStruct(in)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("city", func(fl validator.FieldLevel) bool {
		return IsKnownCity(fl.Field().String())
	})
	return v
}

// IsKnownCity reports whether city is one of Cities.
func IsKnownCity(city string) bool {
	for _, c := range Cities {
		if c == city {
			return true
		}
	}
	return false
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return NewValidationError(fe.Field(), fieldMessage(fe))
}

// requiredMessages holds the text shown when a field is missing or empty.
// Fields without an entry report "Required".
var requiredMessages = map[string]string{
	"donorName":     "Donor name is required",
	"contactNumber": "Contact number must be at least 10 digits",
	"quantity":      "Quantity is required",
	"ngoName":       "NGO name is required",
	"requirements":  "Requirements are required",
}

// fieldMessage maps a failed rule to the message shown to the user.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if msg, ok := requiredMessages[fe.Field()]; ok {
			return msg
		}
		return "Required"
	case "min":
		if fe.Field() == "contactNumber" {
			return "Contact number must be at least 10 digits"
		}
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "eq":
		if fe.Field() == "isFresh" {
			return "You must confirm the food was prepared within the last two hours."
		}
		return fmt.Sprintf("%s must be %s", fe.Field(), fe.Param())
	case "oneof":
		return "Invalid enum value. Expected one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "city":
		return "Invalid enum value. Expected one of: " + strings.Join(Cities, ", ")
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
