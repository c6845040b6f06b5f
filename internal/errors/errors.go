package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nfe, ok := err.(*NotFoundError); ok {
		return nfe, true
	}
	return nil, false
}

// EmptyCartError rejects a checkout attempted with no cart lines.
type EmptyCartError struct {
	Message string
}

func (e *EmptyCartError) Error() string {
	return e.Message
}

func NewEmptyCartError(message string) *EmptyCartError {
	return &EmptyCartError{Message: message}
}

func IsEmptyCartError(err error) (*EmptyCartError, bool) {
	if ece, ok := err.(*EmptyCartError); ok {
		return ece, true
	}
	return nil, false
}

// IncompleteProfileError rejects a checkout whose profile is missing
// required fields for the selected fulfillment mode. MissingFields names
// them so the caller can route the user to profile collection.
type IncompleteProfileError struct {
	Message       string
	MissingFields []string
}

func (e *IncompleteProfileError) Error() string {
	return e.Message
}

func NewIncompleteProfileError(message string, missingFields ...string) *IncompleteProfileError {
	return &IncompleteProfileError{
		Message:       message,
		MissingFields: missingFields,
	}
}

func IsIncompleteProfileError(err error) (*IncompleteProfileError, bool) {
	if ipe, ok := err.(*IncompleteProfileError); ok {
		return ipe, true
	}
	return nil, false
}

// CatalogLoadError reports a failed catalog document fetch. It is always
// recovered internally by substituting the built-in default catalog.
type CatalogLoadError struct {
	Message string
	Cause   error
}

func (e *CatalogLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CatalogLoadError) Unwrap() error {
	return e.Cause
}

func NewCatalogLoadError(message string, cause error) *CatalogLoadError {
	return &CatalogLoadError{Message: message, Cause: cause}
}

func IsCatalogLoadError(err error) (*CatalogLoadError, bool) {
	if cle, ok := err.(*CatalogLoadError); ok {
		return cle, true
	}
	return nil, false
}

// CorruptProfileError reports an unreadable persisted profile record. It is
// always recovered internally by treating the record as absent.
type CorruptProfileError struct {
	Message string
	Cause   error
}

func (e *CorruptProfileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CorruptProfileError) Unwrap() error {
	return e.Cause
}

func NewCorruptProfileError(message string, cause error) *CorruptProfileError {
	return &CorruptProfileError{Message: message, Cause: cause}
}

func IsCorruptProfileError(err error) (*CorruptProfileError, bool) {
	if cpe, ok := err.(*CorruptProfileError); ok {
		return cpe, true
	}
	return nil, false
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func IsConflictError(err error) (*ConflictError, bool) {
	if ce, ok := err.(*ConflictError); ok {
		return ce, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{Message: message, Cause: cause}
}

func IsInternalError(err error) (*InternalError, bool) {
	if ie, ok := err.(*InternalError); ok {
		return ie, true
	}
	return nil, false
}
