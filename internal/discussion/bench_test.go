package discussion

import (
	"fmt"
	"testing"

	"github.com/osse101/InventoryHub_Go/internal/access"
	"github.com/osse101/InventoryHub_Go/internal/domain"
)

func BenchmarkRegistry_Broadcast(b *testing.B) {
	msg := NewPostMessage{Type: MessageTypeNewMessage, Data: domain.Post{ID: "p1", InventoryID: "inv", Content: "hello"}}

	for _, n := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("clients=%d", n), func(b *testing.B) {
			r := NewRegistry()
			clients := make([]*Client, n)
			for i := range clients {
				clients[i] = NewClient(Session{InventoryID: "inv", Access: access.Result{Level: domain.LevelRead}}, 1)
				r.Add(clients[i])
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if got := r.Broadcast("inv", msg); got != n {
					b.Fatalf("delivered to %d of %d clients", got, n)
				}
				for _, c := range clients {
					<-c.Messages()
				}
			}
		})
	}
}
