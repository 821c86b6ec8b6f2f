package di

import (
	"github.com/TechnicalShree/doorflow/internal/catalyst"
	"github.com/TechnicalShree/doorflow/internal/handler"
	"github.com/TechnicalShree/doorflow/internal/repository"
	"github.com/TechnicalShree/doorflow/internal/service"
	"github.com/TechnicalShree/doorflow/pkg/config"
	"github.com/TechnicalShree/doorflow/pkg/logger"
	"github.com/TechnicalShree/doorflow/pkg/redis"
)

// Container holds all dependencies for the doorflow service
type Container struct {
	// Infrastructure
	Redis *redis.Client

	// Repositories
	SnapshotRepo repository.SnapshotRepository
	// Persisted is non-nil when Redis persistence is active; Load restores
	// the last committed tenant tree at startup.
	Persisted *repository.PersistedSnapshotRepository

	// Remote store
	Remote catalyst.Client

	// Services
	EventService    service.EventService
	AttendeeService service.AttendeeService
	SyncService     service.SyncService

	// Handlers
	HealthHandler   *handler.HealthHandler
	EventHandler    *handler.EventHandler
	TenantHandler   *handler.TenantHandler
	AttendeeHandler *handler.AttendeeHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	Redis    *redis.Client
	Catalyst *config.CatalystConfig
	Log      *logger.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		Redis: cfg.Redis,
	}

	// Initialize repositories
	memRepo := repository.NewMemorySnapshotRepository(nil)

	// Wrap with Redis persistence if available
	if c.Redis != nil {
		c.Persisted = repository.NewPersistedSnapshotRepository(memRepo, c.Redis, "", cfg.Log.Logger)
		c.SnapshotRepo = c.Persisted
	} else {
		c.SnapshotRepo = memRepo
	}

	// Initialize remote client
	c.Remote = catalyst.NewHTTPClient(&catalyst.Config{
		BaseURL:    cfg.Catalyst.BaseURL,
		CreatePath: cfg.Catalyst.CreatePath,
		Timeout:    cfg.Catalyst.Timeout,
	})

	// Initialize services
	c.EventService = service.NewEventService(c.SnapshotRepo, c.Remote)
	c.AttendeeService = service.NewAttendeeService(c.SnapshotRepo)
	c.SyncService = service.NewSyncService(c.SnapshotRepo, c.Remote, service.SyncDefaults{
		TenantID: cfg.Catalyst.DefaultTenant,
		Venue:    cfg.Catalyst.DefaultVenue,
		Capacity: cfg.Catalyst.DefaultCapacity,
		StartsAt: cfg.Catalyst.DefaultStartsAt,
	}, cfg.Log.Logger)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.Redis)
	c.EventHandler = handler.NewEventHandler(c.EventService)
	c.TenantHandler = handler.NewTenantHandler(c.EventService)
	c.AttendeeHandler = handler.NewAttendeeHandler(c.AttendeeService)

	return c
}
