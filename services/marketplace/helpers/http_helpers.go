package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"stakex/internal/marketerrors"
	"stakex/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is where the auth middleware stores the caller's user id.
const ContextUserKey = "userId"

// ErrMissingIdentity covers requests that reach a protected handler
// without a caller identity in the gin context.
var ErrMissingIdentity = errors.New("missing caller identity")

// ErrImageTooLarge rejects image uploads over the configured limit.
var ErrImageTooLarge = errors.New("image exceeds the upload size limit")

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, marketerrors.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, marketerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, marketerrors.ErrAccountInactive):
		return http.StatusUnauthorized, "account is deactivated"
	case errors.Is(err, marketerrors.ErrAlreadyResolved):
		return http.StatusConflict, "offer already resolved"
	case errors.Is(err, marketerrors.ErrVersionConflict):
		return http.StatusConflict, "concurrent update, please retry"
	case errors.Is(err, marketerrors.ErrDuplicateEmail):
		return http.StatusBadRequest, "email already registered"
	case errors.Is(err, marketerrors.ErrSelfBid):
		return http.StatusBadRequest, "cannot bid on your own product"
	case errors.Is(err, marketerrors.ErrIndexOutOfRange):
		return http.StatusBadRequest, "bid index out of range"
	case errors.Is(err, marketerrors.ErrAlreadyInCart):
		return http.StatusBadRequest, "product already in cart"
	case errors.Is(err, marketerrors.ErrNotInList):
		return http.StatusBadRequest, "entry not found in list"
	case errors.Is(err, marketerrors.ErrValidation):
		return http.StatusBadRequest, "invalid request"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError maps err and writes the error envelope in one step.
func RespondError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", ctx)
	} else {
		utils.Warn(handlerName+": request rejected", ctx)
	}
}

// CurrentUserID returns the authenticated caller set by the auth
// middleware. The boolean is false on unauthenticated requests.
func CurrentUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// RequireValidID rejects malformed route ids before any storage lookup.
func RequireValidID(c *gin.Context, handlerName, param string) (string, bool) {
	id := c.Param(param)
	if !utils.IsValidID(id) {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("malformed id: %s", id), "malformed id")
		utils.Warn(handlerName+": malformed id", map[string]any{"param": param, "value": id})
		return "", false
	}
	return id, true
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
