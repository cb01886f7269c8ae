// Package validation checks request DTOs declared with `validate` struct tags
// and reports failures as *apperrors.ValidationError.
//
// Besides the stock validator rules two are registered here:
//
//	notblank      string is not empty after trimming whitespace
//	nonnegdecimal string parses as a finite decimal >= 0
//
// A `label` tag names the field in messages; it defaults to the json name.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/studentmanagement/students-api/internal/apperrors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("nonnegdecimal", func(fl validator.FieldLevel) bool {
		_, err := ParseNonNegativeDecimal(fl.Field().String())
		return err == nil
	})
	return &Validator{v: v}
}

// Struct validates s, which must be a struct or a pointer to one.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := &apperrors.ValidationError{}
	seen := map[string]bool{}
	for _, fe := range ves {
		// report only the first failing rule of each field
		if seen[fe.Field()] {
			continue
		}
		seen[fe.Field()] = true
		out.Add(fe.Field(), message(label(t, fe), fe.Tag()))
	}
	return out
}

func label(t reflect.Type, fe validator.FieldError) string {
	if f, ok := t.FieldByName(fe.StructField()); ok {
		if l := f.Tag.Get("label"); l != "" {
			return l
		}
	}
	return fe.Field()
}

func message(label, tag string) string {
	switch tag {
	case "required", "notblank":
		return label + " is required"
	case "nonnegdecimal":
		return label + " must be a non-negative decimal"
	}
	return fmt.Sprintf("%s is invalid (%s)", label, tag)
}

// ParseNonNegativeDecimal parses s as a finite decimal that is not below zero.
// The decimal keeps the scale it was written with, so "150.00" stays "150.00".
func ParseNonNegativeDecimal(s string) (primitive.Decimal128, error) {
	d, err := primitive.ParseDecimal128(strings.TrimSpace(s))
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	if d.IsNaN() || d.IsInf() != 0 {
		return primitive.Decimal128{}, fmt.Errorf("decimal %q is not finite", s)
	}
	coef, _, err := d.BigInt()
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("decimal %q: %w", s, err)
	}
	if coef.Sign() < 0 {
		return primitive.Decimal128{}, fmt.Errorf("decimal %q is negative", s)
	}
	if coef.Sign() == 0 {
		// "-0.00" keeps its scale but loses the sign
		h, l := d.GetBytes()
		d = primitive.NewDecimal128(h&^(1<<63), l)
	}
	return d, nil
}
