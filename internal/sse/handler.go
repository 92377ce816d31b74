// Package sse streams an inventory's discussion as server-sent events. The stream is
// read-only; posting goes through the REST API.
package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/InventoryHub_Go/internal/auth"
	"github.com/osse101/InventoryHub_Go/internal/discussion"
	"github.com/osse101/InventoryHub_Go/internal/logger"
)

// Handler returns the handler for GET /api/v1/inventories/{id}/posts/stream.
// The token is read from the Authorization header, or from ?token= for EventSource clients.
func Handler(connector *discussion.Connector, registry *discussion.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		flusher, ok := w.(http.Flusher)
		if !ok {
			log.Error(LogMsgStreamingUnsupported)
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		token := auth.BearerToken(r)
		if token == "" {
			token = r.URL.Query().Get("token")
		}
		client, code, reason := connector.Open(ctx, registry, discussion.TransportSSE, chi.URLParam(r, "id"), token)
		if client == nil {
			http.Error(w, reason, StatusForCloseCode(code))
			return
		}
		defer discussion.Release(ctx, registry, discussion.TransportSSE, client)

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case msg := <-client.Messages():
				if err := WriteMessage(w, msg.MessageType(), msg); err != nil {
					log.Warn(LogMsgWriteError, "client_id", client.ID(), "error", err)
					return
				}
				flusher.Flush()

			case <-client.Done():
				for {
					select {
					case msg := <-client.Messages():
						if err := WriteMessage(w, msg.MessageType(), msg); err != nil {
							return
						}
					default:
						code, reason := client.CloseStatus()
						_ = WriteMessage(w, EventTypeClose, closeFrame{Code: code, Reason: reason})
						flusher.Flush()
						return
					}
				}

			case <-ticker.C:
				if _, err := io.WriteString(w, ": keepalive\n\n"); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}

type closeFrame struct {
	Code   int    `json:"code"`
	Reason string `json:"reason"`
}

// WriteMessage writes one "event:/data:" frame. The JSON body never contains raw
// newlines, so a single data line suffices.
func WriteMessage(w io.Writer, eventType string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventType, data)
	return err
}

// StatusForCloseCode maps a refused connection's close code to an HTTP status.
func StatusForCloseCode(code int) int {
	switch code {
	case discussion.CloseMissingInventoryID:
		return http.StatusBadRequest
	case discussion.CloseAccessDenied:
		return http.StatusForbidden
	case discussion.CloseInventoryNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
