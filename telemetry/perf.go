package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for one frame of work.
const (
	PhasePhysics   = "physics"
	PhaseRender    = "render"
	PhaseTelemetry = "telemetry"
)

var phases = []string{PhasePhysics, PhaseRender, PhaseTelemetry}

// PerfSample holds timing data for a single frame of work.
type PerfSample struct {
	Work   time.Duration
	Phases map[string]time.Duration
}

// PerfCollector tracks frame work timing over a rolling window.
type PerfCollector struct {
	samples []PerfSample
	next    int
	filled  int

	phases     map[string]time.Duration
	workStart  time.Time
	phaseStart time.Time
	phase      string

	// Host loop timing, measured between Present calls
	lastPresent time.Time
	hostFrame   time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize frames.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		samples: make([]PerfSample, windowSize),
		phases:  make(map[string]time.Duration),
	}
}

// StartFrame begins timing one frame of work.
func (p *PerfCollector) StartFrame() {
	p.workStart = time.Now()
	p.phases = make(map[string]time.Duration)
	p.phase = ""
}

// StartPhase closes the running phase, if any, and opens the named one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	p.closePhase(now)
	p.phaseStart = now
	p.phase = phase
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase != "" {
		p.phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// EndFrame records the frame in the window.
func (p *PerfCollector) EndFrame() {
	now := time.Now()
	p.closePhase(now)
	p.phase = ""

	p.samples[p.next] = PerfSample{Work: now.Sub(p.workStart), Phases: p.phases}
	p.next = (p.next + 1) % len(p.samples)
	if p.filled < len(p.samples) {
		p.filled++
	}
}

// RecordPresent marks one host frame presented to the window.
func (p *PerfCollector) RecordPresent() {
	now := time.Now()
	if !p.lastPresent.IsZero() {
		p.hostFrame = now.Sub(p.lastPresent)
	}
	p.lastPresent = now
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	AvgWork time.Duration
	MinWork time.Duration
	MaxWork time.Duration

	// Average time per phase, and its share of AvgWork in percent
	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64

	// Frames per second the work alone could sustain
	Headroom float64

	// Host loop rate (windowed mode)
	HostFrame time.Duration
	HostFPS   float64
}

// Stats aggregates the current window.
func (p *PerfCollector) Stats() PerfStats {
	out := PerfStats{
		PhaseAvg:  make(map[string]time.Duration),
		PhasePct:  make(map[string]float64),
		HostFrame: p.hostFrame,
	}
	if p.hostFrame > 0 {
		out.HostFPS = float64(time.Second) / float64(p.hostFrame)
	}
	if p.filled == 0 {
		return out
	}

	var total time.Duration
	sums := make(map[string]time.Duration)
	for i, s := range p.samples[:p.filled] {
		total += s.Work
		if i == 0 || s.Work < out.MinWork {
			out.MinWork = s.Work
		}
		if s.Work > out.MaxWork {
			out.MaxWork = s.Work
		}
		for phase, d := range s.Phases {
			sums[phase] += d
		}
	}

	n := time.Duration(p.filled)
	out.AvgWork = total / n
	for phase, sum := range sums {
		out.PhaseAvg[phase] = sum / n
		if out.AvgWork > 0 {
			out.PhasePct[phase] = float64(out.PhaseAvg[phase]) / float64(out.AvgWork) * 100
		}
	}
	if out.AvgWork > 0 {
		out.Headroom = float64(time.Second) / float64(out.AvgWork)
	}
	return out
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_work_us", s.AvgWork.Microseconds(),
		"min_work_us", s.MinWork.Microseconds(),
		"max_work_us", s.MaxWork.Microseconds(),
		"headroom_fps", int(s.Headroom),
	}
	if s.HostFPS > 0 {
		attrs = append(attrs, "host_fps", int(s.HostFPS))
	}
	for _, phase := range phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, phase+"_pct", float64(int(pct*10))/10)
		}
	}
	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_work_us", s.AvgWork.Microseconds()),
		slog.Int64("max_work_us", s.MaxWork.Microseconds()),
		slog.Float64("headroom_fps", s.Headroom),
	}
	if s.HostFPS > 0 {
		attrs = append(attrs, slog.Float64("host_fps", s.HostFPS))
	}
	for _, phase := range phases {
		attrs = append(attrs, slog.Float64(phase+"_pct", s.PhasePct[phase]))
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	WindowEnd    float64 `csv:"window_end"`
	AvgWorkUS    int64   `csv:"avg_work_us"`
	MinWorkUS    int64   `csv:"min_work_us"`
	MaxWorkUS    int64   `csv:"max_work_us"`
	HeadroomFPS  float64 `csv:"headroom_fps"`
	HostFPS      float64 `csv:"host_fps"`
	PhysicsPct   float64 `csv:"physics_pct"`
	RenderPct    float64 `csv:"render_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the stats. windowEnd is the host clock at the end of the window.
func (s PerfStats) ToCSV(windowEnd time.Duration) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd.Seconds(),
		AvgWorkUS:    s.AvgWork.Microseconds(),
		MinWorkUS:    s.MinWork.Microseconds(),
		MaxWorkUS:    s.MaxWork.Microseconds(),
		HeadroomFPS:  s.Headroom,
		HostFPS:      s.HostFPS,
		PhysicsPct:   s.PhasePct[PhasePhysics],
		RenderPct:    s.PhasePct[PhaseRender],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
