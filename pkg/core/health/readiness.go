package health

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type ComponentStatus struct {
	Name      string
	Ready     bool
	StartedAt time.Time
	ReadyAt   time.Time
}

type Status struct {
	Ready      bool
	Components []ComponentStatus
}

// Readiness tracks startup components and gates the readiness probe
// until every registered component has reported ready.
type Readiness interface {
	// AddComponent registers a component and returns its mark-ready callback.
	AddComponent(name string) (markReady func())
	IsReady() bool
	GetStatus() Status
	// WaitReady blocks until all components are ready or ctx is done.
	WaitReady(ctx context.Context) error
}

type component struct {
	name      string
	ready     bool
	startedAt time.Time
	readyAt   time.Time
}

type readiness struct {
	mu         sync.RWMutex
	components map[string]*component
	readyChan  chan struct{}
	readyOnce  sync.Once
	logger     *zap.Logger
}

func NewReadiness(logger *zap.Logger) Readiness {
	return &readiness{
		components: make(map[string]*component),
		readyChan:  make(chan struct{}),
		logger:     logger,
	}
}

func (r *readiness) AddComponent(name string) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.components[name]; !exists {
		r.components[name] = &component{
			name:      name,
			startedAt: time.Now(),
		}
	}
	return func() { r.markReady(name) }
}

func (r *readiness) markReady(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	comp, exists := r.components[name]
	if !exists || comp.ready {
		return
	}
	comp.ready = true
	comp.readyAt = time.Now()

	for _, c := range r.components {
		if !c.ready {
			return
		}
	}

	r.readyOnce.Do(func() {
		close(r.readyChan)
		r.logger.Info("all components are ready",
			zap.Int("component_count", len(r.components)),
		)
	})
}

func (r *readiness) IsReady() bool {
	select {
	case <-r.readyChan:
		return true
	default:
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.components) == 0
}

func (r *readiness) GetStatus() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()

	status := Status{
		Ready:      true,
		Components: make([]ComponentStatus, 0, len(r.components)),
	}
	for _, comp := range r.components {
		if !comp.ready {
			status.Ready = false
		}
		status.Components = append(status.Components, ComponentStatus{
			Name:      comp.name,
			Ready:     comp.ready,
			StartedAt: comp.startedAt,
			ReadyAt:   comp.readyAt,
		})
	}
	return status
}

func (r *readiness) WaitReady(ctx context.Context) error {
	if r.IsReady() {
		return nil
	}
	select {
	case <-r.readyChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
