package graph

import (
	"errors"

	"github.com/dlevchenko/staffgraph/internal/common"
)

// Error codes surfaced in the "extensions" object of a GraphQL error.
const (
	codeValidation      = "VALIDATION_FAILED"
	codeNotFound        = "NOT_FOUND"
	codeUnauthenticated = "UNAUTHENTICATED"
	codeInternal        = "INTERNAL"
)

// apiError carries a fixed, caller-facing message and a taxonomy code.
// It implements gqlerrors.ExtendedError so the code survives formatting.
type apiError struct {
	message string
	code    string
}

func (e *apiError) Error() string { return e.message }

func (e *apiError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

func notFoundError(msg string) error {
	return &apiError{message: msg, code: codeNotFound}
}

func authenticationError(msg string) error {
	return &apiError{message: msg, code: codeUnauthenticated}
}

func validationError(msg string) error {
	return &apiError{message: msg, code: codeValidation}
}

// internalError deliberately hides the underlying failure from the caller.
func internalError() error {
	return &apiError{message: "internal server error", code: codeInternal}
}

// employeeError maps employee service errors onto the public taxonomy.
func employeeError(err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return notFoundError("Employee not found")
	case errors.Is(err, common.ErrorValidation):
		return validationError(err.Error())
	default:
		return internalError()
	}
}

// loginError maps login failures onto the public taxonomy. The two distinct
// messages match the original contract; see the users service for the
// enumeration caveat.
func loginError(err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return authenticationError("User not found")
	case errors.Is(err, common.ErrorUnauthorized):
		return authenticationError("Invalid credentials")
	default:
		return internalError()
	}
}
