package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/TechnicalShree/doorflow/internal/service"
	"github.com/TechnicalShree/doorflow/pkg/logger"
)

// SyncWorkerConfig contains configuration for the sync worker
type SyncWorkerConfig struct {
	// Interval is the time between remote pulls
	Interval time.Duration
}

// DefaultSyncWorkerConfig returns default configuration
func DefaultSyncWorkerConfig() *SyncWorkerConfig {
	return &SyncWorkerConfig{
		Interval: 60 * time.Second,
	}
}

// SyncWorker periodically pulls the remote event collection into the store.
// A failed pull leaves the store untouched; the next tick tries again.
type SyncWorker struct {
	syncService service.SyncService
	config      *SyncWorkerConfig
	log         *logger.Logger
	stopCh      chan struct{}
	wg          sync.WaitGroup
	mu          sync.Mutex
	running     bool

	// Stats
	totalPulls   int64
	totalMerged  int64
	lastPullTime time.Time
	lastError    string
}

// NewSyncWorker creates a new sync worker
func NewSyncWorker(syncService service.SyncService, config *SyncWorkerConfig) *SyncWorker {
	if config == nil {
		config = DefaultSyncWorkerConfig()
	}

	return &SyncWorker{
		syncService: syncService,
		config:      config,
		log:         logger.Get(),
		stopCh:      make(chan struct{}),
	}
}

// Start starts the sync worker
func (w *SyncWorker) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("sync worker already running")
	}
	w.running = true
	w.mu.Unlock()

	w.log.Info("Starting sync worker")

	w.wg.Add(1)
	go w.pullLoop(ctx)

	return nil
}

// Stop stops the sync worker
func (w *SyncWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	w.log.Info("Stopping sync worker")
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("Sync worker stopped")
}

// pullLoop pulls once at startup, then on every tick
func (w *SyncWorker) pullLoop(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	w.pull(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.pull(ctx)
		}
	}
}

func (w *SyncWorker) pull(ctx context.Context) {
	w.mu.Lock()
	w.lastPullTime = time.Now()
	w.mu.Unlock()

	merged, err := w.syncService.Pull(ctx)
	if err != nil {
		w.mu.Lock()
		w.lastError = err.Error()
		w.mu.Unlock()
		w.log.Warn(fmt.Sprintf("Remote pull failed: %v", err))
		return
	}

	w.mu.Lock()
	w.totalPulls++
	w.totalMerged += int64(merged)
	w.lastError = ""
	w.mu.Unlock()

	if merged > 0 {
		w.log.Info(fmt.Sprintf("Remote pull merged %d events", merged))
	}
}

// GetStats returns worker statistics
func (w *SyncWorker) GetStats() *SyncWorkerStats {
	w.mu.Lock()
	defer w.mu.Unlock()

	return &SyncWorkerStats{
		IsRunning:    w.running,
		TotalPulls:   w.totalPulls,
		TotalMerged:  w.totalMerged,
		LastPullTime: w.lastPullTime,
		LastError:    w.lastError,
	}
}

// SyncWorkerStats contains worker statistics
type SyncWorkerStats struct {
	IsRunning    bool      `json:"is_running"`
	TotalPulls   int64     `json:"total_pulls"`
	TotalMerged  int64     `json:"total_merged"`
	LastPullTime time.Time `json:"last_pull_time"`
	LastError    string    `json:"last_error,omitempty"`
}
