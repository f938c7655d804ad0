package controllers

import (
	"fmt"
	"net/http"

	"admindash/apiclient"
)

const (
	msgUnauthorized = "Session has expired. Please log in again."
	msgForbidden    = "You do not have access to this data."
	msgNetwork      = "Failed to connect to the server. Check your internet connection."
)

// ErrorMessage maps a failure to the text shown to the user. subject names
// the missing thing for NotFound, e.g. "Product".
func ErrorMessage(err error, subject string) string {
	apiErr, ok := apiclient.AsError(err)
	if !ok {
		return "An error occurred: " + err.Error()
	}

	switch apiErr.Kind {
	case apiclient.KindUnauthorized:
		return msgUnauthorized
	case apiclient.KindForbidden:
		return msgForbidden
	case apiclient.KindNotFound:
		return subject + " not found."
	case apiclient.KindNetworkUnavailable:
		return msgNetwork
	case apiclient.KindValidationFailed:
		return apiErr.FieldMessages()
	default:
		return "An error occurred: " + rejectionDetail(apiErr)
	}
}

// rejectionDetail picks the most specific text in a rejected payload.
func rejectionDetail(apiErr *apiclient.Error) string {
	if detail := apiErr.Detail(); detail != "" {
		return detail
	}
	if fields := apiErr.Flatten(); fields != "" {
		return fields
	}
	if apiErr.Err != nil {
		return apiErr.Err.Error()
	}
	return fmt.Sprintf("%d %s", apiErr.Status, http.StatusText(apiErr.Status))
}

// fieldErrors renders a rejected write as "field: message" lines, falling
// back to the generic message when the payload has no fields.
func fieldErrors(err error, subject string) string {
	apiErr, ok := apiclient.AsError(err)
	if !ok {
		return ErrorMessage(err, subject)
	}
	if apiErr.Kind == apiclient.KindServerRejected || apiErr.Kind == apiclient.KindValidationFailed {
		if lines := apiErr.FieldMessages(); lines != "" && apiErr.Detail() == "" {
			return lines
		}
	}
	return ErrorMessage(err, subject)
}
