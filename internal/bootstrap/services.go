package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/InventoryHub_Go/internal/access"
	"github.com/osse101/InventoryHub_Go/internal/auth"
	"github.com/osse101/InventoryHub_Go/internal/concurrency"
	"github.com/osse101/InventoryHub_Go/internal/config"
	"github.com/osse101/InventoryHub_Go/internal/discussion"
	"github.com/osse101/InventoryHub_Go/internal/event"
	"github.com/osse101/InventoryHub_Go/internal/field"
	"github.com/osse101/InventoryHub_Go/internal/inventory"
	"github.com/osse101/InventoryHub_Go/internal/item"
	"github.com/osse101/InventoryHub_Go/internal/like"
	"github.com/osse101/InventoryHub_Go/internal/repository"
	"github.com/osse101/InventoryHub_Go/internal/user"
	"github.com/osse101/InventoryHub_Go/internal/versioning"
)

// Services holds the domain services and the live discussion components they share.
type Services struct {
	Users       user.Service
	Inventories inventory.Service
	Items       item.Service
	Fields      field.Service
	Likes       like.Service
	Posts       discussion.Service

	Locks     *concurrency.LockManager
	Registry  *discussion.Registry
	Connector *discussion.Connector
}

// InitializeServices wires every service against the store. Post creation publishes
// straight to the bus so fan-out happens inside the post lock; everything else
// goes through the resilient publisher.
func InitializeServices(cfg *config.Config, store repository.Store, tokens *auth.Tokens, bus event.Bus, publisher event.Publisher) (*Services, error) {
	policy, err := access.ParsePublicWritePolicy(cfg.PublicWritePolicy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPublicWritePolicy, err)
	}

	evaluator := access.NewEvaluator(store, policy)
	versions := versioning.NewController(store)
	locks := concurrency.NewLockManager()
	registry := discussion.NewRegistry()

	svc := &Services{
		Users:       user.NewService(store, tokens, user.CacheConfig{Size: cfg.UserCacheSize, TTL: cfg.UserCacheTTL}),
		Inventories: inventory.NewService(store, evaluator, versions, publisher),
		Items:       item.NewService(store, evaluator, versions, publisher),
		Fields:      field.NewService(store, evaluator, locks),
		Likes:       like.NewService(store, evaluator, publisher),
		Posts:       discussion.NewService(store, evaluator, locks, bus),
		Locks:       locks,
		Registry:    registry,
		Connector:   discussion.NewConnector(tokens, evaluator),
	}

	slog.Info(LogMsgServicesInitialized, "public_write_policy", policy.String())
	return svc, nil
}
