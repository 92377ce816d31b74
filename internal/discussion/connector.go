package discussion

import (
	"context"
	"errors"

	"github.com/osse101/InventoryHub_Go/internal/access"
	"github.com/osse101/InventoryHub_Go/internal/auth"
	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/internal/logger"
	"github.com/osse101/InventoryHub_Go/internal/metrics"
)

// Session is the authorization a live connection was opened with.
// Access is decided once; later grant changes do not affect an open connection.
type Session struct {
	InventoryID string
	UserID      string
	Access      access.Result
}

// Connector authorizes new live connections
type Connector struct {
	verifier  auth.Verifier
	evaluator access.Evaluator
}

// NewConnector creates a connector
func NewConnector(verifier auth.Verifier, evaluator access.Evaluator) *Connector {
	return &Connector{verifier: verifier, evaluator: evaluator}
}

// Authorize resolves the caller and its access to the inventory.
// A token that fails verification downgrades the caller to anonymous.
func (c *Connector) Authorize(ctx context.Context, inventoryID, token string) (Session, error) {
	if inventoryID == "" {
		return Session{}, domain.ErrInventoryIDRequired
	}

	var userID string
	if token != "" {
		id, err := c.verifier.Verify(ctx, token)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgInvalidToken, "inventory_id", inventoryID, "error", err)
		} else {
			userID = id.UserID
		}
	}

	res, err := c.evaluator.ResolveAccess(ctx, inventoryID, userID)
	if err != nil {
		return Session{}, err
	}
	if !res.HasReadAccess() {
		return Session{}, domain.ErrForbidden
	}
	return Session{InventoryID: inventoryID, UserID: userID, Access: res}, nil
}

func (c *Connector) recheck(ctx context.Context, session Session) error {
	res, err := c.evaluator.ResolveAccess(ctx, session.InventoryID, session.UserID)
	if err != nil {
		return err
	}
	if !res.HasReadAccess() {
		return domain.ErrForbidden
	}
	return nil
}

// CloseCodeFor maps an Authorize error to the close code and reason sent to the peer.
func CloseCodeFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInventoryIDRequired):
		return CloseMissingInventoryID, ReasonMissingInventoryID
	case domain.KindOf(err) == domain.KindNotFound:
		return CloseInventoryNotFound, ReasonInventoryNotFound
	case domain.KindOf(err) == domain.KindForbidden:
		return CloseAccessDenied, ReasonAccessDenied
	default:
		return CloseInternalError, ReasonInternalError
	}
}

// rejected logs and counts a refused connection and returns its close code.
func rejected(ctx context.Context, transport, inventoryID string, err error) (int, string) {
	code, reason := CloseCodeFor(err)
	metrics.DiscussionConnectRejects.WithLabelValues(reason).Inc()
	log := logger.FromContext(ctx)
	if code == CloseInternalError {
		log.Error(LogMsgConnectRejected, "transport", transport, "inventory_id", inventoryID, "error", err)
	} else {
		log.Info(LogMsgConnectRejected, "transport", transport, "inventory_id", inventoryID, "code", code)
	}
	return code, reason
}

// Open authorizes a connection and, on success, registers a client whose first queued
// message is the CONNECTED greeting. The caller must call Release when the connection ends.
func (c *Connector) Open(ctx context.Context, registry *Registry, transport, inventoryID, token string) (*Client, int, string) {
	session, err := c.Authorize(ctx, inventoryID, token)
	if err != nil {
		code, reason := rejected(ctx, transport, inventoryID, err)
		return nil, code, reason
	}

	client := NewClient(session, ClientQueueSize)
	_ = client.Send(NewConnectedMessage(session))
	registry.Add(client)

	// A delete that closed the group between Authorize and Add missed this client.
	// Checking again after Add leaves no gap: any later delete reaches it through CloseGroup.
	if err := c.recheck(ctx, session); err != nil {
		registry.Remove(client)
		code, reason := rejected(ctx, transport, inventoryID, err)
		client.Close(code, reason)
		return nil, code, reason
	}

	metrics.DiscussionConnections.WithLabelValues(transport).Inc()
	logger.FromContext(ctx).Info(LogMsgClientConnected,
		"transport", transport,
		"client_id", client.ID(),
		"inventory_id", inventoryID,
		"has_write_access", client.HasWriteAccess(),
		"group_size", registry.ConnectionCount(inventoryID))
	return client, 0, ""
}

// Release removes the client from the registry
func Release(ctx context.Context, registry *Registry, transport string, client *Client) {
	registry.Remove(client)
	metrics.DiscussionConnections.WithLabelValues(transport).Dec()
	logger.FromContext(ctx).Info(LogMsgClientDisconnected,
		"transport", transport,
		"client_id", client.ID(),
		"inventory_id", client.InventoryID())
}
