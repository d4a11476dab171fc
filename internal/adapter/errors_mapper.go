package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx answer from the image host into one of the
// transport errors, keeping the response body for the log.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(status)
	}

	var kind error
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = ErrUnauthorized
	case status == http.StatusRequestEntityTooLarge:
		kind = ErrPayloadTooLarge
	case status == http.StatusTooManyRequests:
		kind = ErrThrottled
	case status == http.StatusBadRequest || status == http.StatusNotFound || status == http.StatusUnprocessableEntity:
		kind = ErrBadRequest
	case status >= http.StatusInternalServerError:
		kind = ErrUpstreamUnavailable
	default:
		return fmt.Errorf("http %d: %s", status, body)
	}

	return fmt.Errorf("%w (http %d): %s", kind, status, body)
}
