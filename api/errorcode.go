package api

import (
	"github.com/safehaven-app/safehaven-api/session"
	"github.com/safehaven-app/safehaven-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "authentication required",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: session.ErrCredentialMismatch.Error(),
		1101: "unknown role",

		1200: store.ErrRequestNotExist.Error(),
		1201: "missing required fields",
		1202: "donation amount must be greater than zero",
	}

	errorInternalServer         = errorJSON(999)
	errorAuthenticationRequired = errorJSON(1000)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorCredentialMismatch = errorJSON(1100)
	errorUnknownRole        = errorJSON(1101)

	errorRequestNotExist       = errorJSON(1200)
	errorMissingRequiredFields = errorJSON(1201)
	errorInvalidDonationAmount = errorJSON(1202)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
