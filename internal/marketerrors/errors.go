package marketerrors

import "errors"

// Repository-level errors
var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateEmail  = errors.New("user with this email already exists")
	ErrVersionConflict = errors.New("document version conflict")
)

// business logic errors
var (
	ErrValidation         = errors.New("invalid input")
	ErrForbidden          = errors.New("forbidden")
	ErrSelfBid            = errors.New("cannot bid on your own product")
	ErrIndexOutOfRange    = errors.New("bid index out of range")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrAlreadyResolved    = errors.New("offer has already been resolved")
	ErrAlreadyInCart      = errors.New("item already in cart")
	ErrNotInList          = errors.New("item not found in list")
)
