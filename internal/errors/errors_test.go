package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  NewValidationError("bad input"),
			want: "[VALIDATION] bad input",
		},
		{
			name: "with cause",
			err:  NewParsingError("open file", fmt.Errorf("no such file")),
			want: "[PARSING] open file: no such file",
		},
		{
			name: "storage error",
			err:  NewStorageError("write report", fmt.Errorf("disk full")),
			want: "[STORAGE] write report: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := NewConfigError("load config", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestAppError_WithContext(t *testing.T) {
	err := NewValidationError("bad input").
		WithContext("row", 7).
		WithContext("column", "Amount")

	assert.Equal(t, 7, err.Context["row"])
	assert.Equal(t, "Amount", err.Context["column"])
}

func TestNewMissingRoleError(t *testing.T) {
	err := NewMissingRoleError("date")

	require.NotNil(t, err)
	assert.Equal(t, ErrTypeValidation, err.Type)
	assert.Contains(t, err.Error(), "date")
	assert.ErrorIs(t, err, ErrMissingRole)
	assert.NotErrorIs(t, err, ErrEmptyDataset)
	assert.Equal(t, "date", err.Context["role"])
}

func TestNewEmptyDatasetError(t *testing.T) {
	err := NewEmptyDatasetError("cannot compute average order value")

	require.NotNil(t, err)
	assert.Equal(t, ErrTypeEmptyDataset, err.Type)
	assert.ErrorIs(t, err, ErrEmptyDataset)
	assert.NotErrorIs(t, err, ErrMissingRole)
}

func TestFatalErrorKindsAreDistinct(t *testing.T) {
	var appErr *AppError

	missing := NewMissingRoleError("amount")
	empty := NewEmptyDatasetError("no clean rows")

	require.ErrorAs(t, error(missing), &appErr)
	assert.NotEqual(t, missing.Type, empty.Type)
}
