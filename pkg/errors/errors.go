package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain/Business Logic Errors - errors related to business rules and validation
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound

	// Infrastructure Errors - errors related to external systems and services
	ErrorTypeDatabase
	ErrorTypeExternalAPI
	ErrorTypeEmail
	ErrorTypeProvider
	ErrorTypeChainExhausted
	ErrorTypeCache

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeEmail:
		return "EMAIL_ERROR"
	case ErrorTypeProvider:
		return "PROVIDER_FETCH_ERROR"
	case ErrorTypeChainExhausted:
		return "CHAIN_EXHAUSTED_ERROR"
	case ErrorTypeCache:
		return "CACHE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across adapters
const (
	ValidationError    = ErrorTypeValidation
	NotFoundError      = ErrorTypeNotFound
	DatabaseError      = ErrorTypeDatabase
	ExternalAPIError   = ErrorTypeExternalAPI
	EmailError         = ErrorTypeEmail
	ConfigurationError = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain/Business Logic Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

// Infrastructure Error Constructors
func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(DatabaseError, message, cause)
}

func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause)
}

func NewEmailError(message string, cause error) *AppError {
	return Wrap(EmailError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// ProviderFetchError reports a single upstream provider failing for a city.
// It triggers fallback to the next provider and never reaches a client.
type ProviderFetchError struct {
	Provider string
	City     string
	Cause    error
}

func NewProviderFetchError(provider, city string, cause error) *ProviderFetchError {
	return &ProviderFetchError{Provider: provider, City: city, Cause: cause}
}

func (e *ProviderFetchError) Error() string {
	return fmt.Sprintf("%s: provider %s failed for city %q: %v", ErrorTypeProvider.String(), e.Provider, e.City, e.Cause)
}

func (e *ProviderFetchError) Unwrap() error {
	return e.Cause
}

// ChainExhaustedError is returned when every provider in the chain failed.
type ChainExhaustedError struct {
	City     string
	Attempts []string
	Causes   []error
}

func NewChainExhaustedError(city string, attempts []string, causes []error) *ChainExhaustedError {
	return &ChainExhaustedError{City: city, Attempts: attempts, Causes: causes}
}

func (e *ChainExhaustedError) Error() string {
	return fmt.Sprintf("%s: all providers failed for city %q (attempted: %s)",
		ErrorTypeChainExhausted.String(), e.City, strings.Join(e.Attempts, ", "))
}

// Unwrap exposes every provider failure to errors.Is and errors.As.
func (e *ChainExhaustedError) Unwrap() []error {
	return e.Causes
}

// CacheError reports a cache backend failure: unreachable, timed out or a
// failed write. Callers decide whether it is fatal.
type CacheError struct {
	Operation string
	Key       string
	Cause     error
}

func NewCacheError(operation, key string, cause error) *CacheError {
	return &CacheError{Operation: operation, Key: key, Cause: cause}
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("%s: cache %s failed for key %q: %v", ErrorTypeCache.String(), e.Operation, e.Key, e.Cause)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// Helper functions for error type checking
func IsNotFoundError(err error) bool {
	return hasType(err, NotFoundError)
}

func IsValidationError(err error) bool {
	return hasType(err, ValidationError)
}

func IsDatabaseError(err error) bool {
	return hasType(err, DatabaseError)
}

func IsExternalAPIError(err error) bool {
	return hasType(err, ExternalAPIError)
}

func IsEmailError(err error) bool {
	return hasType(err, EmailError)
}

func IsConfigurationError(err error) bool {
	return hasType(err, ConfigurationError)
}

func IsProviderFetchError(err error) bool {
	var target *ProviderFetchError
	return stderrors.As(err, &target)
}

func IsChainExhaustedError(err error) bool {
	var target *ChainExhaustedError
	return stderrors.As(err, &target)
}

func IsCacheError(err error) bool {
	var target *CacheError
	return stderrors.As(err, &target)
}

func hasType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}
