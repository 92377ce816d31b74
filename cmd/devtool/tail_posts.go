package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"strings"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/osse101/InventoryHub_Go/internal/discussion"
	"github.com/osse101/InventoryHub_Go/internal/domain"
)

type TailPostsCommand struct{}

func (c *TailPostsCommand) Name() string {
	return "tail-posts"
}

func (c *TailPostsCommand) Description() string {
	return "Follow an inventory's discussion over the websocket feed"
}

func (c *TailPostsCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("inventory ID required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	PrintHeader(fmt.Sprintf("Following inventory %s (Ctrl+C to stop)", args[0]))
	return tailPosts(ctx, apiURL(), args[0], os.Getenv("API_TOKEN"), os.Stdout)
}

type feedFrame struct {
	Type           string          `json:"type"`
	UserID         *string         `json:"userId"`
	HasWriteAccess bool            `json:"hasWriteAccess"`
	Data           json.RawMessage `json:"data"`
}

// tailPosts prints every frame of the feed until the server closes it or ctx ends.
// A normal or going-away close is not an error.
func tailPosts(ctx context.Context, baseURL, inventoryID, token string, out io.Writer) error {
	q := url.Values{"inventoryId": {inventoryID}}
	if token != "" {
		q.Set("token", token)
	}
	wsURL := strings.TrimRight(baseURL, "/") + "/ws/api/posts?" + q.Encode()

	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.CloseNow()

	for {
		var f feedFrame
		if err := wsjson.Read(ctx, conn, &f); err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return nil
			case -1:
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			default:
				var ce websocket.CloseError
				errors.As(err, &ce)
				return fmt.Errorf("feed closed: %d %s", ce.Code, ce.Reason)
			}
		}

		switch f.Type {
		case discussion.MessageTypeConnected:
			who := "anonymous"
			if f.UserID != nil {
				who = *f.UserID
			}
			fmt.Fprintf(out, "connected as %s (write access: %t)\n", who, f.HasWriteAccess)
		case discussion.MessageTypeNewMessage:
			var p domain.Post
			if err := json.Unmarshal(f.Data, &p); err != nil {
				return fmt.Errorf("malformed post: %w", err)
			}
			author := p.AuthorID
			if p.Author.Name != "" {
				author = p.Author.Name
			}
			fmt.Fprintf(out, "[%s] %s: %s\n", p.CreatedAt.Format("15:04:05"), author, p.Content)
		}
	}
}
