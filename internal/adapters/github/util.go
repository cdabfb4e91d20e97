package github

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"
)

// StatusError wraps non-2xx HTTP responses from GitHub
type StatusError struct {
	Status int
	Body   string
	Err    error
}

// Error implements the error interface
func (e *StatusError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped cause
func (e *StatusError) Unwrap() error { return e.Err }

// HTTPStatus returns the upstream status code
func (e *StatusError) HTTPStatus() int { return e.Status }

func parseRateHeaders(h http.Header) (remaining int, reset time.Time, retryAfter int) {
	remaining = atoi(h.Get("X-RateLimit-Remaining"), -1)
	if rs := h.Get("X-RateLimit-Reset"); rs != "" {
		if sec := atoi(rs, 0); sec > 0 {
			reset = time.Unix(int64(sec), 0).UTC()
		}
	}
	retryAfter = atoi(h.Get("Retry-After"), 0)
	return
}

// computeWait decides how long to back off based on rate headers
func computeWait(remaining int, reset time.Time, retryAfter int, now time.Time) time.Duration {
	if retryAfter > 0 {
		return time.Duration(retryAfter) * time.Second
	}
	if remaining == 0 && !reset.IsZero() && reset.After(now) {
		return reset.Sub(now)
	}
	return 0
}

// rateLimited reports whether a 403/429 carries rate-limit signals rather
// than a plain permission denial
func rateLimited(status int, remaining, retryAfter int) bool {
	if status == http.StatusTooManyRequests {
		return true
	}
	return status == http.StatusForbidden && (remaining == 0 || retryAfter > 0)
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}

// IsNotFound reports whether err is a StatusError with a 404 status
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == http.StatusNotFound
}

// IsForbidden reports whether err is a StatusError with a 401 or 403 status
func IsForbidden(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && (se.Status == http.StatusUnauthorized || se.Status == http.StatusForbidden)
}

// IsTransient reports whether err is a StatusError with a 5xx status
func IsTransient(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	return se.Status == 500 || se.Status == 502 || se.Status == 503 || se.Status == 504
}
