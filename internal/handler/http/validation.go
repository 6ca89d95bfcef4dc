package http

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-blog-platform/internal/utils"
	"github.com/MKhiriev/go-blog-platform/models"
	"github.com/go-playground/validator/v10"
)

var loginPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]*$`)

// newValidator returns a validator that reports fields by their JSON names
// and understands the "login" and "maxbytes" tags.
func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// the tag name is fixed and the func is non-nil, so registration cannot fail
	_ = validate.RegisterValidation("login", func(fl validator.FieldLevel) bool {
		return loginPattern.MatchString(fl.Field().String())
	})

	// max counts runes; bcrypt limits the encoded length in bytes
	_ = validate.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})

	return validate
}

// decodeRequest reads the JSON body into dst and validates it. On failure it
// returns the field errors to answer with.
func (h *Handler) decodeRequest(r *http.Request, dst any) (models.APIErrorResult, bool) {
	if err := utils.DecodeJSON(r, dst); err != nil {
		return models.NewAPIErrorResult("body", "invalid JSON was passed"), false
	}

	err := h.validate.Struct(dst)
	if err == nil {
		return models.APIErrorResult{}, true
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return models.NewAPIErrorResult("body", err.Error()), false
	}

	result := models.APIErrorResult{ErrorsMessages: make([]models.FieldError, 0, len(validationErrors))}
	for _, fe := range validationErrors {
		result.ErrorsMessages = append(result.ErrorsMessages, models.FieldError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
		})
	}

	return result, false
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "maxbytes":
		return fmt.Sprintf("%s must be at most %s bytes", fe.Field(), fe.Param())
	case "email":
		return "invalid email format"
	case "login":
		return "login contains invalid characters"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
