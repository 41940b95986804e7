// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseData is a value-type snapshot of a completed HTTP response:
// status code, body size, and the raw bytes of the last write. It lets
// the logging middleware inspect a finished response without holding a
// reference to the live [responseWriter].
type responseData struct {
	// status is the HTTP status code that was written to the response.
	status int

	// size is the total number of bytes written to the response body.
	size int

	// body holds the raw bytes of the most recent Write call.
	// Note: if Write was called multiple times, body contains only the
	// slice passed in the last call, not the concatenation of all writes.
	body []byte
}

// responseWriter decorates [http.ResponseWriter] to capture the status
// code and byte count as the downstream handler writes the response.
// withLogging reads both after the handler returns; nothing is buffered.
//
// WriteHeader is forwarded to the underlying writer exactly once,
// subsequent calls are silently ignored, per the [http.ResponseWriter]
// contract.
type responseWriter struct {
	http.ResponseWriter

	// status is the HTTP status code recorded on the first WriteHeader call.
	// It is zero until WriteHeader (or an implicit WriteHeader via Write) is called.
	status int

	// wroteHeader reports whether WriteHeader has already been called.
	// It guards against forwarding a second WriteHeader to the underlying writer.
	wroteHeader bool

	// size is the running total of bytes successfully written to the response body
	// across all Write calls.
	size int

	// body holds the byte slice passed to the most recent Write call.
	// It is NOT a concatenation of all writes; it is overwritten on each call.
	body []byte
}

// WriteHeader records the status code and forwards it to the underlying
// writer. Repeated calls are a no-op; the first status code wins.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b to the underlying writer and accumulates the byte
// count in size. A Write before any WriteHeader implies a 200, matching
// the standard library. body is replaced, not appended, on each call.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	w.body = b
	return n, err
}
