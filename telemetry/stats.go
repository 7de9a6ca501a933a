package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one window of host time.
type WindowStats struct {
	WindowStart float64 `csv:"-"`
	WindowEnd   float64 `csv:"window_end"`

	// Field at window end
	Tier      string `csv:"tier"`
	Particles int    `csv:"particles"`

	// Scheduler
	FramesRan     int     `csv:"frames_ran"`
	FramesDropped int     `csv:"frames_dropped"`
	FramesFailed  int     `csv:"frames_failed"`
	FrameRate     float64 `csv:"frame_rate"`

	// Interaction
	Regenerations    int     `csv:"regenerations"`
	PointerFramePct  float64 `csv:"pointer_frame_pct"`
	Repelled         int     `csv:"repelled"`
	RepelledPerFrame float64 `csv:"repelled_per_frame"`

	// Distance from home, sampled at window end
	DispMean float64 `csv:"disp_mean"`
	DispStd  float64 `csv:"disp_std"`
	DispP50  float64 `csv:"disp_p50"`
	DispP90  float64 `csv:"disp_p90"`
	DispMax  float64 `csv:"disp_max"`

	Snapped int `csv:"snapped"`
}

// DisplacementStats summarizes particle distances from home.
type DisplacementStats struct {
	Mean, Std float64
	P50, P90  float64
	Max       float64
}

// ComputeDisplacementStats returns mean, sample standard deviation, median,
// 90th percentile and maximum. Empty input yields zeros.
func ComputeDisplacementStats(values []float64) DisplacementStats {
	n := len(values)
	if n == 0 {
		return DisplacementStats{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var out DisplacementStats
	if n == 1 {
		out.Mean = sorted[0]
	} else {
		out.Mean, out.Std = stat.MeanStdDev(sorted, nil)
	}
	out.P50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	out.P90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	out.Max = floats.Max(sorted)
	return out
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("window_start", s.WindowStart),
		slog.Float64("window_end", s.WindowEnd),
		slog.String("tier", s.Tier),
		slog.Int("particles", s.Particles),
		slog.Int("frames_ran", s.FramesRan),
		slog.Int("frames_dropped", s.FramesDropped),
		slog.Int("frames_failed", s.FramesFailed),
		slog.Float64("frame_rate", s.FrameRate),
		slog.Int("regenerations", s.Regenerations),
		slog.Float64("pointer_frame_pct", s.PointerFramePct),
		slog.Int("repelled", s.Repelled),
		slog.Float64("disp_mean", s.DispMean),
		slog.Float64("disp_p90", s.DispP90),
		slog.Float64("disp_max", s.DispMax),
		slog.Int("snapped", s.Snapped),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEnd,
		"tier", s.Tier,
		"particles", s.Particles,
		"frames_ran", s.FramesRan,
		"frames_dropped", s.FramesDropped,
		"frames_failed", s.FramesFailed,
		"frame_rate", s.FrameRate,
		"regenerations", s.Regenerations,
		"pointer_frame_pct", s.PointerFramePct,
		"repelled", s.Repelled,
		"repelled_per_frame", s.RepelledPerFrame,
		"disp_mean", s.DispMean,
		"disp_std", s.DispStd,
		"disp_p50", s.DispP50,
		"disp_p90", s.DispP90,
		"disp_max", s.DispMax,
		"snapped", s.Snapped,
	)
}
