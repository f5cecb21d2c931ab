package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "test validation error")
			},
			expected: "VALIDATION_ERROR: test validation error",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("original error")
				return Wrap(DatabaseError, "database operation failed", cause)
			},
			expected: "DATABASE_ERROR: database operation failed (caused by: original error)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("original error")
	err := Wrap(ExternalAPIError, "API call failed", cause)
	assert.Equal(t, cause, err.Unwrap())

	assert.Nil(t, New(NotFoundError, "resource not found").Unwrap())
}

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "VALIDATION_ERROR"},
		{ErrorTypeNotFound, "NOT_FOUND_ERROR"},
		{ErrorTypeDatabase, "DATABASE_ERROR"},
		{ErrorTypeExternalAPI, "EXTERNAL_API_ERROR"},
		{ErrorTypeEmail, "EMAIL_ERROR"},
		{ErrorTypeProvider, "PROVIDER_FETCH_ERROR"},
		{ErrorTypeChainExhausted, "CHAIN_EXHAUSTED_ERROR"},
		{ErrorTypeCache, "CACHE_ERROR"},
		{ErrorTypeConfiguration, "CONFIGURATION_ERROR"},
		{ErrorTypeUnknown, "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestTypeCheckers(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", NewNotFoundError("city not found"))

	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsValidationError(wrapped))
	assert.True(t, IsValidationError(NewValidationError("bad")))
	assert.True(t, IsDatabaseError(NewDatabaseError("db", nil)))
	assert.True(t, IsExternalAPIError(NewExternalAPIError("api", nil)))
	assert.True(t, IsEmailError(NewEmailError("smtp", nil)))
	assert.True(t, IsConfigurationError(NewConfigurationError("cfg", nil)))
	assert.False(t, IsNotFoundError(fmt.Errorf("plain error")))
	assert.False(t, IsNotFoundError(nil))
}

func TestProviderFetchError(t *testing.T) {
	cause := NewExternalAPIError("status 503", nil)
	err := NewProviderFetchError("weatherapi", "Prague", cause)

	assert.Contains(t, err.Error(), "weatherapi")
	assert.Contains(t, err.Error(), `"Prague"`)
	assert.True(t, IsProviderFetchError(fmt.Errorf("wrapped: %w", err)))
	assert.True(t, IsExternalAPIError(err))
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestChainExhaustedError(t *testing.T) {
	first := NewProviderFetchError("weatherapi", "Nowhere123", NewNotFoundError("city not found"))
	second := NewProviderFetchError("openweathermap", "Nowhere123", fmt.Errorf("no geocoding results"))
	err := NewChainExhaustedError("Nowhere123", []string{"weatherapi", "openweathermap"}, []error{first, second})

	assert.Equal(t,
		`CHAIN_EXHAUSTED_ERROR: all providers failed for city "Nowhere123" (attempted: weatherapi, openweathermap)`,
		err.Error())
	assert.True(t, IsChainExhaustedError(err))
	assert.True(t, stderrors.Is(err, second))

	var providerErr *ProviderFetchError
	require.True(t, stderrors.As(err, &providerErr))
	assert.Equal(t, "weatherapi", providerErr.Provider)
}

func TestCacheError(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := NewCacheError("get", "weather:prague", cause)

	assert.Equal(t, `CACHE_ERROR: cache get failed for key "weather:prague": dial tcp: connection refused`, err.Error())
	assert.True(t, IsCacheError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsCacheError(cause))
	assert.Equal(t, cause, err.Unwrap())
}
