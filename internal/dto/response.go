package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ===========================================================================
// Response DTOs (Data Transfer Objects)
// Success bodies are the resources themselves; errors share one shape
// ===========================================================================

// ErrorResponse body of every failed request
type ErrorResponse struct {
	// Code machine readable code (e.g. "NOT_FOUND", "INVALID_INPUT")
	Code string `json:"code"`

	// Message human readable message
	Message string `json:"message"`
}

// Error builds an error body
func Error(code, message string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message}
}

// CountResponse {count}
type CountResponse struct {
	Count int64 `json:"count"`
}

// HealthResponse GET /health
type HealthResponse struct {
	Status  string    `json:"status"`
	Storage string    `json:"storage"`
	Time    time.Time `json:"time"`
}

// ===========================================================================
// Validation messages
// ===========================================================================

// RegisterJSONFieldNames makes validator errors use json field names
// (fullName rather than FullName). Call once at startup.
func RegisterJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
}

// ValidationMessage renders a binding error as one readable sentence
// naming every offending field
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fieldMessage(fe))
		}
		return strings.Join(parts, "; ")
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return "request body is not valid JSON"
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type.String())
	}
	if errors.Is(err, io.EOF) {
		return "request body is required"
	}
	return err.Error()
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "url":
		return field + " must be a valid URL"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
