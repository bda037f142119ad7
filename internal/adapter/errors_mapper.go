package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/models"
)

var kindErrors = map[string]error{
	"Unauthorized":      ErrUnauthorized,
	"Forbidden":         ErrForbidden,
	"NotSubscribed":     ErrNotSubscribed,
	"InvalidArgument":   ErrInvalidArgument,
	"InvalidEncoding":   ErrInvalidEncoding,
	"InvalidHexValue":   ErrInvalidHexValue,
	"InvalidPayment":    ErrInvalidPayment,
	"AlreadySubscribed": ErrAlreadySubscribed,
	"TrialAlreadyUsed":  ErrTrialAlreadyUsed,
	"NotFound":          ErrNotFound,
	"Unsupported":       ErrUnsupported,
	"RateLimited":       ErrRateLimited,
	"Internal":          ErrInternal,
}

// statusErrors is the fallback for responses without a JSON error body.
var statusErrors = map[int]error{
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusTooManyRequests:     ErrRateLimited,
	http.StatusInternalServerError: ErrInternal,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var errResp models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err == nil {
		if target, ok := kindErrors[errResp.Kind]; ok {
			return fmt.Errorf("%w: %s", target, errResp.Reason)
		}
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	if target, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", target, body)
	}
	return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, resp.StatusCode(), body)
}
