package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// ParamValidator is a function type that validates a parameter.
type ParamValidator func(valueToTest int64) bool

// gte returns a ParamValidator that checks if the argument is greater than or equal to the given bound.
func gte(bound int64) ParamValidator {
	return func(argValue int64) bool {
		return argValue >= bound
	}
}

// ParseOptionalGte parses an optional integer query parameter, validating it
// against a lower bound. A missing parameter yields the fallback value.
// Returns the value and a boolean indicating success.
func ParseOptionalGte(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string, bound, fallback int64) (int64, bool) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback, true
	}
	return validate(w, logger, key, value, gte(bound))
}

func validate(w http.ResponseWriter, logger *slog.Logger, key, value string, pValidator ParamValidator) (int64, bool) {
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil || !pValidator(intValue) {
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid %s number: %s", key, value))
		return 0, false
	}
	return intValue, true
}
