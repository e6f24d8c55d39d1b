package ecs

import (
	"context"
	"math"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Frames          int64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Period         time.Duration
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// SystemOption configures how a registered system is run.
type SystemOption func(*systemEntry)

// Every gates a system on a repeating timer: the system runs on the first
// frame at which the accumulated delta time reaches period, at most once per
// frame, and the timer keeps the remainder.
func Every(period time.Duration) SystemOption {
	if period <= 0 {
		panic("Every needs a positive period")
	}
	return func(e *systemEntry) {
		e.period = period
	}
}

type systemEntry struct {
	system  System
	queries []interface{ Execute() }
	period  time.Duration
	elapsed time.Duration
	stats   systemStatsInternal
}

// due advances the entry's timer and reports whether the system runs this frame.
func (e *systemEntry) due(dt time.Duration) bool {
	if e.period == 0 {
		return true
	}
	e.elapsed += dt
	if e.elapsed < e.period {
		return false
	}
	e.elapsed %= e.period
	return true
}

// Scheduler manages and executes systems in order.
type Scheduler struct {
	storage *Storage
	systems []*systemEntry
	frames  int64
}

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{
		storage: storage,
	}
}

// Register adds a system to the scheduler and initializes its Query,
// Singleton and Events fields. Systems run in registration order.
func (s *Scheduler) Register(system System, opts ...SystemOption) {
	entry := &systemEntry{
		system: system,
		stats: systemStatsInternal{
			name:        systemName(system),
			minDuration: time.Duration(math.MaxInt64),
		},
	}
	for _, opt := range opts {
		opt(entry)
	}
	entry.queries = s.initializeFields(system)
	s.systems = append(s.systems, entry)
}

func systemName(system System) string {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	return systemType.Name()
}

// initializeFields binds every exported field with an Init(*Storage) method to
// the scheduler's storage and returns the fields that need a per-run Execute.
func (s *Scheduler) initializeFields(system System) []interface{ Execute() } {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}

	if systemValue.Kind() != reflect.Struct {
		return nil
	}

	var queries []interface{ Execute() }
	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		fieldPtr := field.Addr().Interface()
		initializer, ok := fieldPtr.(interface{ Init(*Storage) })
		if !ok {
			continue
		}
		initializer.Init(s.storage)

		if query, ok := fieldPtr.(interface{ Execute() }); ok {
			queries = append(queries, query)
		}
	}
	return queries
}

// Once executes all registered systems once with the given delta time (in seconds),
// then flushes queued commands and drops this frame's events.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.storage)
	delta := time.Duration(math.Round(dt * float64(time.Second)))

	for _, entry := range s.systems {
		if !entry.due(delta) {
			continue
		}

		for _, query := range entry.queries {
			query.Execute()
		}

		start := time.Now()
		entry.system.Execute(frame)
		duration := time.Since(start)

		stats := &entry.stats
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration
		stats.minDuration = min(stats.minDuration, duration)
		stats.maxDuration = max(stats.maxDuration, duration)
	}

	frame.Commands.Flush()
	s.storage.ClearEvents()
	s.frames++
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systems)),
	}

	for i, entry := range s.systems {
		internal := entry.stats
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			Period:         entry.period,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		stats.TotalExecutions += internal.executionCount
	}

	return stats
}
