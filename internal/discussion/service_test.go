package discussion

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryHub_Go/internal/domain"
	"github.com/osse101/InventoryHub_Go/internal/event"
)

func TestCreatePost_Authorization(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		inventory func() string
		userID    func() string
		wantErr   error
	}{
		{"owner", func() string { return f.private.ID }, func() string { return f.owner.ID }, nil},
		{"reader", func() string { return f.private.ID }, func() string { return f.reader.ID }, domain.ErrForbidden},
		{"stranger", func() string { return f.private.ID }, func() string { return f.other.ID }, domain.ErrForbidden},
		{"anonymous on public", func() string { return f.public.ID }, func() string { return "" }, domain.ErrUnauthenticated},
		{"authenticated on public", func() string { return f.public.ID }, func() string { return f.other.ID }, nil},
		{"missing inventory", func() string { return "nope" }, func() string { return f.owner.ID }, domain.ErrInventoryNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := f.svc.CreatePost(ctx, tt.inventory(), tt.userID(), "hello")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, p.ID)
			assert.Equal(t, tt.userID(), p.AuthorID)
		})
	}
}

func TestCreatePost_Content(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreatePost(ctx, f.private.ID, f.owner.ID, "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyContent)

	_, err = f.svc.CreatePost(ctx, f.private.ID, f.owner.ID, strings.Repeat("x", domain.MaxPostLength+1))
	assert.ErrorIs(t, err, domain.ErrContentTooLong)

	p, err := f.svc.CreatePost(ctx, f.private.ID, f.owner.ID, "  trimmed  ")
	require.NoError(t, err)
	assert.Equal(t, "trimmed", p.Content)
}

func TestCreatePost_BroadcastsToGroup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	reader := f.open(t, f.private.ID, f.token(t, f.reader))
	watcher := f.open(t, f.public.ID, "")

	p, err := f.svc.CreatePost(ctx, f.private.ID, f.owner.ID, "hi")
	require.NoError(t, err)

	msg, ok := next(t, reader).(NewPostMessage)
	require.True(t, ok)
	assert.Equal(t, MessageTypeNewMessage, msg.Type)
	assert.Equal(t, p.ID, msg.Data.ID)
	assert.Equal(t, "hi", msg.Data.Content)
	assert.Equal(t, f.owner.Name, msg.Data.Author.Name)

	assert.Empty(t, drain(watcher), "other inventories see nothing")
}

func TestCreatePost_ConnectionsShareCommitOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.open(t, f.public.ID, "")
	b := f.open(t, f.public.ID, f.token(t, f.reader))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.svc.CreatePost(ctx, f.public.ID, f.owner.ID, fmt.Sprintf("m%d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	ids := func(c *Client) []string {
		var out []string
		for _, m := range drain(c) {
			out = append(out, m.(NewPostMessage).Data.ID)
		}
		return out
	}
	seenA, seenB := ids(a), ids(b)
	require.Len(t, seenA, 20)
	assert.Equal(t, seenA, seenB)

	stored, err := f.svc.ListPosts(ctx, f.public.ID, "")
	require.NoError(t, err)
	var storedIDs []string
	for _, p := range stored {
		storedIDs = append(storedIDs, p.ID)
	}
	assert.Equal(t, storedIDs, seenA, "live order matches history order")
}

func TestCreatePost_LateJoinerOnlySeesLaterPosts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreatePost(ctx, f.public.ID, f.owner.ID, "before")
	require.NoError(t, err)

	c := f.open(t, f.public.ID, "")
	_, err = f.svc.CreatePost(ctx, f.public.ID, f.owner.ID, "after")
	require.NoError(t, err)

	msgs := drain(c)
	require.Len(t, msgs, 1)
	assert.Equal(t, "after", msgs[0].(NewPostMessage).Data.Content)
}

type failingBus struct{ event.Bus }

func (failingBus) Publish(context.Context, event.Event) error { return fmt.Errorf("bus down") }

func TestCreatePost_PublishFailureStillPersists(t *testing.T) {
	f := newFixture(t)
	svc := NewService(f.store, f.evaluator, f.locks, failingBus{f.bus})

	p, err := svc.CreatePost(context.Background(), f.private.ID, f.owner.ID, "kept")
	require.NoError(t, err)

	posts, err := svc.ListPosts(context.Background(), f.private.ID, f.owner.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, p.ID, posts[0].ID)
}

func TestListPosts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, c := range []string{"one", "two", "three"} {
		_, err := f.svc.CreatePost(ctx, f.private.ID, f.owner.ID, c)
		require.NoError(t, err)
	}

	posts, err := f.svc.ListPosts(ctx, f.private.ID, f.reader.ID)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "one", posts[0].Content)
	assert.Equal(t, "three", posts[2].Content)

	_, err = f.svc.ListPosts(ctx, f.private.ID, f.other.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.svc.ListPosts(ctx, f.private.ID, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSubscriber_InventoryDeletedClosesGroup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.open(t, f.public.ID, "")
	require.NoError(t, f.bus.Publish(ctx, event.NewInventoryEvent(event.InventoryDeleted, f.public.ID, f.owner.ID)))

	select {
	case <-c.Done():
	default:
		t.Fatal("connection should be closed")
	}
	code, reason := c.CloseStatus()
	assert.Equal(t, CloseInventoryNotFound, code)
	assert.Equal(t, ReasonInventoryDeleted, reason)
	assert.Equal(t, 0, f.registry.ConnectionCount(f.public.ID))
}

func TestSubscriber_IgnoresBadPayload(t *testing.T) {
	f := newFixture(t)
	err := f.bus.Publish(context.Background(), event.Event{Type: event.PostCreated, Payload: "garbage"})
	assert.NoError(t, err)
}
