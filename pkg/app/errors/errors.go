// Package errors contains the service error type returned across the API boundary.
package errors

import (
	"errors"
	"net/http"
)

// Category classifies a service error for transport mapping.
type Category int

const (
	CategoryNoError Category = iota
	// CategoryDataError the client sent invalid data.
	CategoryDataError
	// CategoryUnauthorized the caller could not be identified.
	CategoryUnauthorized
	// CategoryForbidden the caller is identified but may not perform the operation.
	CategoryForbidden
	// CategoryResourceNotFound the requested resource does not exist.
	CategoryResourceNotFound
	// CategoryDataConflict the request conflicts with current state.
	CategoryDataConflict
	// CategoryLocked the resource is temporarily locked, retry later.
	CategoryLocked
	// CategoryDependencyFailure a dependency such as the custody chain failed.
	CategoryDependencyFailure
	// CategoryGeneralError the service failed unexpectedly.
	CategoryGeneralError
)

func (c Category) String() string {
	switch c {
	case CategoryNoError:
		return "CategoryNoError"
	case CategoryDataError:
		return "CategoryDataError"
	case CategoryUnauthorized:
		return "CategoryUnauthorized"
	case CategoryForbidden:
		return "CategoryForbidden"
	case CategoryResourceNotFound:
		return "CategoryResourceNotFound"
	case CategoryDataConflict:
		return "CategoryDataConflict"
	case CategoryLocked:
		return "CategoryLocked"
	case CategoryDependencyFailure:
		return "CategoryDependencyFailure"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError carries a category, a client-facing message and a stable
// machine-readable code next to the underlying error.
type ServiceError struct {
	Category Category
	// Code is the error kind reported to clients, e.g. "ContractPaused".
	Code    string
	Message string
	Err     error
}

func (err *ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

func (err *ServiceError) Unwrap() error {
	return err.Err
}

// StatusCode returns the HTTP status for the error category.
func (err *ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryDataError:
		return http.StatusBadRequest
	case CategoryUnauthorized:
		return http.StatusUnauthorized
	case CategoryForbidden:
		return http.StatusForbidden
	case CategoryResourceNotFound:
		return http.StatusNotFound
	case CategoryDataConflict:
		return http.StatusConflict
	case CategoryLocked:
		return http.StatusLocked
	case CategoryDependencyFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Is checks that err is a ServiceError with the desired category.
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// CodeOf returns the code of the ServiceError wrapped by err, if any.
func CodeOf(err error) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Code
	}
	return ""
}

// New builds a ServiceError. A nil err is replaced by the message.
func New(cat Category, code string, err error, message string) error {
	if err == nil {
		err = errors.New(message)
	}
	return &ServiceError{Category: cat, Code: code, Message: message, Err: err}
}

// GeneralError hides err behind "Internal Server Error". err is only logged.
func GeneralError(err error) error {
	return New(CategoryGeneralError, "Internal", err, "Internal Server Error")
}

// BadRequestError returns an error with category DataError.
func BadRequestError(err error, message string) error {
	return New(CategoryDataError, "BadRequest", err, message)
}

// ResourceNotFoundError returns an error with category ResourceNotFound.
func ResourceNotFoundError(err error, message string) error {
	return New(CategoryResourceNotFound, "NotFound", err, message)
}

// UnAuthorizedError returns an error with category Unauthorized.
func UnAuthorizedError(err error, message string) error {
	return New(CategoryUnauthorized, "Unauthenticated", err, message)
}

// ForbiddenError returns an error with category Forbidden.
func ForbiddenError(err error, message string) error {
	return New(CategoryForbidden, "Forbidden", err, message)
}

// ConflictError returns an error with category DataConflict.
func ConflictError(err error, message string) error {
	return New(CategoryDataConflict, "Conflict", err, message)
}
