package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldError mirrors one entry of a 422 response body.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type ValidationResponse struct {
	Detail []FieldError `json:"detail"`
}

// RegisterValidators installs the custom binding tags on gin's validator.
// It is safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	if err := v.RegisterValidation("decimal", validateDecimal); err != nil {
		return err
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return nil
}

func validateDecimal(fl validator.FieldLevel) bool {
	_, err := decimal.NewFromString(fl.Field().String())
	return err == nil
}

// RespondValidationError writes a 422 describing why the body could not be bound.
func RespondValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	var details []FieldError
	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			details = append(details, FieldError{
				Loc:  []string{"body", fe.Field()},
				Msg:  fieldMessage(fe),
				Type: fieldType(fe),
			})
		}
	case errors.As(err, &typeErr):
		details = append(details, FieldError{
			Loc:  []string{"body", typeErr.Field},
			Msg:  "value is not a valid " + typeErr.Type.String(),
			Type: "type_error",
		})
	case errors.As(err, &syntaxErr):
		details = append(details, FieldError{
			Loc:  []string{"body"},
			Msg:  syntaxErr.Error(),
			Type: "value_error.jsondecode",
		})
	default:
		details = append(details, FieldError{
			Loc:  []string{"body"},
			Msg:  err.Error(),
			Type: "value_error",
		})
	}

	c.JSON(http.StatusUnprocessableEntity, ValidationResponse{Detail: details})
}

// RespondPathError writes a 422 for a path parameter that is not a valid id.
func RespondPathError(c *gin.Context, param string) {
	c.JSON(http.StatusUnprocessableEntity, ValidationResponse{Detail: []FieldError{{
		Loc:  []string{"path", param},
		Msg:  "value is not a valid integer",
		Type: "type_error.integer",
	}}})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "decimal":
		return "value is not a valid decimal"
	case "max":
		return "ensure this value has at most " + fe.Param() + " characters"
	default:
		return "invalid value"
	}
}

func fieldType(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "value_error.missing"
	case "decimal":
		return "type_error.decimal"
	case "max":
		return "value_error.any_str.max_length"
	default:
		return "value_error"
	}
}
