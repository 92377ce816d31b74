package discussion

import (
	"context"
	"errors"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/osse101/InventoryHub_Go/internal/logger"
)

// WebSocketHandler serves GET /ws/api/posts?inventoryId=&token=.
// Authorization happens after the upgrade so refusals reach the peer as close codes.
func WebSocketHandler(connector *Connector, registry *Registry, originPatterns []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: originPatterns})
		if err != nil {
			log.Warn(LogMsgWebSocketAccept, "error", err)
			return
		}

		q := r.URL.Query()
		inventoryID := q.Get("inventoryId")
		client, code, reason := connector.Open(ctx, registry, TransportWebSocket, inventoryID, q.Get("token"))
		if client == nil {
			_ = conn.Close(websocket.StatusCode(code), reason)
			return
		}
		defer Release(ctx, registry, TransportWebSocket, client)

		// Inbound frames are ignored; CloseRead cancels ctx when the peer goes away.
		ctx = conn.CloseRead(ctx)
		writeLoop(ctx, conn, client)
	}
}

// writeLoop is the connection's only writer.
func writeLoop(ctx context.Context, conn *websocket.Conn, client *Client) {
	log := logger.FromContext(ctx)
	for {
		select {
		case <-ctx.Done():
			_ = conn.Close(websocket.StatusGoingAway, "")
			return

		case msg := <-client.Messages():
			if err := writeFrame(ctx, conn, msg); err != nil {
				if !errors.Is(err, context.Canceled) {
					log.Warn(LogMsgWebSocketWriteError, "client_id", client.ID(), "error", err)
				}
				_ = conn.CloseNow()
				return
			}

		case <-client.Done():
			flush(ctx, conn, client)
			code, reason := client.CloseStatus()
			_ = conn.Close(websocket.StatusCode(code), reason)
			return
		}
	}
}

// flush writes whatever was queued before the client was closed.
func flush(ctx context.Context, conn *websocket.Conn, client *Client) {
	for {
		select {
		case msg := <-client.Messages():
			if err := writeFrame(ctx, conn, msg); err != nil {
				return
			}
		default:
			return
		}
	}
}

func writeFrame(ctx context.Context, conn *websocket.Conn, msg Message) error {
	writeCtx, cancel := context.WithTimeout(ctx, WriteTimeout)
	defer cancel()
	return wsjson.Write(writeCtx, conn, msg)
}
