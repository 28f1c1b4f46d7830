package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer     = http.StatusInternalServerError
	ErrStatusClient             = http.StatusBadRequest
	ErrStatusUnauthorized       = http.StatusUnauthorized
	ErrStatusNotFound           = http.StatusNotFound
	ErrStatusStorageUnavailable = http.StatusServiceUnavailable
)

var (
	ErrInternalServer     = errors.New("Internal server error")
	ErrClient             = errors.New("Bad request")
	ErrUnauthorized       = errors.New("Unauthorized access")
	ErrInvalidCredentials = errors.New("Email or password is incorrect")
	ErrNotFound           = errors.New("Resource not found")
	ErrEmptyCart          = errors.New("Cart must contain at least one item")
	ErrInvalidQuantity    = errors.New("Item quantity must be greater than zero")
	ErrMissingTitle       = errors.New("Product title is required")
	ErrStorageUnavailable = errors.New("Storage backend is unavailable")
)

var errorMap = map[error]int{
	ErrInternalServer:     ErrStatusInternalServer,
	ErrClient:             ErrStatusClient,
	ErrUnauthorized:       ErrStatusUnauthorized,
	ErrInvalidCredentials: ErrStatusUnauthorized,
	ErrNotFound:           ErrStatusNotFound,
	ErrEmptyCart:          ErrStatusClient,
	ErrInvalidQuantity:    ErrStatusClient,
	ErrMissingTitle:       ErrStatusClient,
	ErrStorageUnavailable: ErrStatusStorageUnavailable,
}

func GetErrorStatusCode(err error) int {
	for target, code := range errorMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return errorMap[ErrInternalServer]
}
