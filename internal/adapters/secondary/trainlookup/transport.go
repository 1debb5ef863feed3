package trainlookup

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const headerRequestID = "X-Request-ID"

// transport tags every lookup with a request ID and logs its outcome.
type transport struct {
	next http.RoundTripper
}

func newTransport(next http.RoundTripper) http.RoundTripper {
	return &transport{next: next}
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	requestID := req.Header.Get(headerRequestID)
	if requestID == "" {
		requestID = uuid.New().String()
		req = req.Clone(req.Context())
		req.Header.Set(headerRequestID, requestID)
	}

	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	fields := log.Fields{
		"method":     req.Method,
		"url":        req.URL.String(),
		"latency_ms": time.Since(start).Milliseconds(),
		"request_id": requestID,
	}
	if err != nil {
		log.WithFields(fields).WithError(err).Debug("train name request failed")
		return nil, err
	}

	fields["status"] = resp.StatusCode
	log.WithFields(fields).Debug("train name request completed")

	return resp, nil
}
