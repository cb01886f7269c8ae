package validation

import (
	"errors"
	"testing"

	"github.com/studentmanagement/students-api/internal/apperrors"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `json:"name" validate:"notblank" label:"Course name"`
	Fee  string `json:"fee" validate:"notblank,nonnegdecimal" label:"Fee"`
	City string `json:"city" validate:"notblank"`
}

func TestStructValid(t *testing.T) {
	v := New()
	require.NoError(t, v.Struct(sample{Name: "Algebra", Fee: "150.00", City: "X"}))
	require.NoError(t, v.Struct(&sample{Name: "Algebra", Fee: "0", City: "X"}))
}

func TestStructReportsFieldsInOrder(t *testing.T) {
	v := New()
	err := v.Struct(&sample{Name: "   ", Fee: "-5"})
	require.True(t, errors.Is(err, apperrors.ErrValidation))

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, []apperrors.FieldError{
		{Field: "name", Reason: "Course name is required"},
		{Field: "fee", Reason: "Fee must be a non-negative decimal"},
		{Field: "city", Reason: "city is required"},
	}, verr.Fields)
}

func TestStructBlankFeeReportsRequiredOnly(t *testing.T) {
	err := New().Struct(sample{Name: "a", City: "b"})
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, []string{"Fee is required"}, verr.Messages())
}

func TestParseNonNegativeDecimal(t *testing.T) {
	for _, ok := range []string{"0", "150.00", "0.001", " 12 ", "1E+3"} {
		_, err := ParseNonNegativeDecimal(ok)
		require.NoError(t, err, ok)
	}
	d, err := ParseNonNegativeDecimal("150.00")
	require.NoError(t, err)
	require.Equal(t, "150.00", d.String())

	for _, zero := range []string{"-0", "-0.00"} {
		d, err := ParseNonNegativeDecimal(zero)
		require.NoError(t, err, zero)
		require.Equal(t, zero[1:], d.String())
	}

	for _, bad := range []string{"-5", "-0.01", "abc", "", "NaN", "Infinity", "1.2.3"} {
		_, err := ParseNonNegativeDecimal(bad)
		require.Error(t, err, bad)
	}
}
