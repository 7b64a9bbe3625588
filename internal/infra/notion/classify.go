package notion

import (
	"errors"
	"net"
	"net/http"

	"github.com/jomei/notionapi"

	"notion-inbox/internal/repository"
)

// classify maps an error returned by the Notion client to a failure kind.
//
// Mapping:
//   - 401, 403: auth (bad token or database not shared with the integration)
//   - 400, 404, 409, 422: validation (schema mismatch, unknown database)
//   - other API errors, including 429 and 5xx: unknown
//   - transport errors: network
func classify(err error) repository.FailureKind {
	var apiErr *notionapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return repository.FailureAuth
		case http.StatusBadRequest, http.StatusNotFound, http.StatusConflict, http.StatusUnprocessableEntity:
			return repository.FailureValidation
		default:
			return repository.FailureUnknown
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return repository.FailureNetwork
	}

	return repository.FailureUnknown
}
