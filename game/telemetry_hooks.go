package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/heartfield/telemetry"
)

// flushTelemetry emits the stats window if it has elapsed at ts.
func (g *Game) flushTelemetry(ts time.Duration) {
	if !g.collector.ShouldFlush(ts) {
		return
	}

	stats := g.collector.Flush(ts, telemetry.FieldState{
		Tier:          g.adapter.Tier().Name,
		Particles:     g.field.Count(),
		Displacements: g.field.Displacements(),
		Snapped:       g.physics.Snapped(),
	})
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats.ToCSV(ts)); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
