package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/gridsnake/ecs"
	"github.com/plus3/gridsnake/snake"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Worlds   int
	Frame    time.Duration
	Seed     uint64
	Arena    snake.Arena

	// Results
	TotalUpdates  int64
	TotalTime     time.Duration
	UpdateTime    Stats
	Totals        snake.Stats
	Systems       []ecs.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// collect sums game stats over all worlds and merges per-system timings by
// registration order, which is the same in every world.
func (r *Report) collect(s *soak) {
	r.Totals = snake.Stats{}
	r.Systems = nil

	for _, w := range s.worlds {
		st := w.Stats()
		r.Totals.Ticks += st.Ticks
		r.Totals.Resets += st.Resets
		r.Totals.FoodSpawned += st.FoodSpawned
		r.Totals.FoodEaten += st.FoodEaten
		r.Totals.Length += st.Length
		r.Totals.BestLength = max(r.Totals.BestLength, st.BestLength)

		sched := w.Scheduler().GetStats()
		if r.Systems == nil {
			r.Systems = make([]ecs.SystemStats, len(sched.Systems))
			for i, sys := range sched.Systems {
				r.Systems[i] = ecs.SystemStats{Name: sys.Name, Period: sys.Period, MinDuration: sys.MinDuration}
			}
		}
		for i, sys := range sched.Systems {
			merged := &r.Systems[i]
			merged.ExecutionCount += sys.ExecutionCount
			merged.TotalDuration += sys.TotalDuration
			merged.MaxDuration = max(merged.MaxDuration, sys.MaxDuration)
			if sys.ExecutionCount > 0 && (merged.MinDuration == 0 || sys.MinDuration < merged.MinDuration) {
				merged.MinDuration = sys.MinDuration
			}
		}
	}

	for i := range r.Systems {
		if r.Systems[i].ExecutionCount > 0 {
			r.Systems[i].AvgDuration = r.Systems[i].TotalDuration / time.Duration(r.Systems[i].ExecutionCount)
		}
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Snake Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Worlds:** {{.Worlds}}
- **Arena:** {{.Arena.Width}}x{{.Arena.Height}}
- **Frame:** {{.Frame}}
- **Seed:** {{.Seed}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (all worlds):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Game Totals
- **Moves:** {{.Totals.Ticks}}
- **Resets:** {{.Totals.Resets}}
- **Food Spawned:** {{.Totals.FoodSpawned}}
- **Food Eaten:** {{.Totals.FoodEaten}}
- **Best Length:** {{.Totals.BestLength}}

## Systems
| System | Period | Runs | Avg | Min | Max |
|---|---|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{period .Period}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"period": func(d time.Duration) string {
			if d == 0 {
				return "every frame"
			}
			return d.String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
