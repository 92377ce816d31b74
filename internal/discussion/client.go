package discussion

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrClientClosed is returned by Send once the connection has been closed
	ErrClientClosed = errors.New("client closed")
	// ErrQueueFull is returned by Send when the outbound queue has no room
	ErrQueueFull = errors.New("client queue full")
)

// Conn is a live connection as the registry sees it
type Conn interface {
	ID() string
	InventoryID() string
	HasWriteAccess() bool
	// Send enqueues without blocking, failing with ErrClientClosed or ErrQueueFull.
	Send(msg Message) error
	Close(code int, reason string)
}

// Client is a transport-independent connection: a bounded outbound queue drained by
// exactly one writer, the transport's handler goroutine.
type Client struct {
	id      string
	session Session
	queue   chan Message

	mu          sync.Mutex
	closed      bool
	done        chan struct{}
	closeCode   int
	closeReason string
}

// NewClient creates a client for an authorized session
func NewClient(session Session, queueSize int) *Client {
	if queueSize <= 0 {
		queueSize = ClientQueueSize
	}
	return &Client{
		id:      uuid.NewString(),
		session: session,
		queue:   make(chan Message, queueSize),
		done:    make(chan struct{}),
	}
}

func (c *Client) ID() string           { return c.id }
func (c *Client) InventoryID() string  { return c.session.InventoryID }
func (c *Client) HasWriteAccess() bool { return c.session.Access.HasWriteAccess() }

// Session returns the authorization the client connected with
func (c *Client) Session() Session { return c.session }

func (c *Client) Send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClientClosed
	}
	select {
	case c.queue <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close asks the writer to close the connection with the given code. Only the first call counts.
func (c *Client) Close(code int, reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.closeCode, c.closeReason = code, reason
	close(c.done)
}

// Messages is the outbound queue. Pending messages stay readable after Close.
func (c *Client) Messages() <-chan Message { return c.queue }

// Done is closed once Close has been called
func (c *Client) Done() <-chan struct{} { return c.done }

// CloseStatus returns the code and reason passed to Close
func (c *Client) CloseStatus() (int, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeCode, c.closeReason
}
