// Package analytics classifies crowd density, flow direction and sudden
// surges from per-camera people counts.
package analytics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/citywatch/alert_dispatch_system/internal/models"
)

// ratioSentinel stands in for current/baseline when the baseline is zero
// but people are present.
const ratioSentinel = 9999.0

// Config holds the classification thresholds.
type Config struct {
	DefaultAreaSqm        float64
	DensityCriticalPerSqm float64
	DensityDensePerSqm    float64
	FlowDelta             int
	SurgeRatio            float64
	SurgeDelta            float64
}

// SurgeResult describes the surge check against the trailing baseline.
type SurgeResult struct {
	Baseline  float64 `json:"baseline"`
	Ratio     float64 `json:"ratio"`
	Delta     float64 `json:"delta"`
	Triggered bool    `json:"triggered"`
}

// Analysis is the full classification of one people-count observation.
type Analysis struct {
	PeopleCount   int                  `json:"people_count"`
	AreaSqm       float64              `json:"area_sqm"`
	DensityPerSqm float64              `json:"density_per_sqm"`
	Density       models.DensityLevel  `json:"density_level"`
	Flow          models.FlowDirection `json:"flow_direction"`
	Surge         SurgeResult          `json:"surge"`
}

type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Analyze classifies the current count against the trailing window for the
// same camera. The window is passed newest-to-oldest, as the repository
// returns it, and is reversed to chronological order before analysis.
func (e *Engine) Analyze(current int, areaSqm float64, window []*models.CrowdMetricSample) Analysis {
	counts := make([]float64, len(window))
	for i, s := range window {
		counts[len(window)-1-i] = float64(s.PeopleCount)
	}

	area := areaSqm
	if area <= 0 {
		area = e.cfg.DefaultAreaSqm
	}

	densityPerSqm := math.Round(float64(current)/area*1000) / 1000

	return Analysis{
		PeopleCount:   current,
		AreaSqm:       area,
		DensityPerSqm: densityPerSqm,
		Density:       e.classifyDensity(densityPerSqm),
		Flow:          e.classifyFlow(current, counts),
		Surge:         e.detectSurge(current, counts),
	}
}

func (e *Engine) classifyDensity(perSqm float64) models.DensityLevel {
	switch {
	case perSqm >= e.cfg.DensityCriticalPerSqm:
		return models.DensityCritical
	case perSqm >= e.cfg.DensityDensePerSqm:
		return models.DensityDense
	default:
		return models.DensityNormal
	}
}

// classifyFlow derives the base direction from the delta against the
// previous count and overrides it with chaotic when the chronological trend
// shows at least two sign reversals. A static base is never overridden:
// chaotic requires the same delta magnitude as in/out.
func (e *Engine) classifyFlow(current int, counts []float64) models.FlowDirection {
	if len(counts) == 0 {
		return models.FlowStatic
	}

	delta := current - int(counts[len(counts)-1])
	threshold := e.cfg.FlowDelta

	base := models.FlowStatic
	switch {
	case delta >= threshold:
		base = models.FlowIn
	case delta <= -threshold:
		base = models.FlowOut
	}

	if base == models.FlowStatic {
		return base
	}

	trend := append(append([]float64{}, counts...), float64(current))
	if signReversals(trend) >= 2 {
		return models.FlowChaotic
	}
	return base
}

// signReversals counts direction flips between consecutive non-flat deltas
// of a chronological count series.
func signReversals(trend []float64) int {
	reversals := 0
	lastSign := 0
	for i := 1; i < len(trend); i++ {
		d := trend[i] - trend[i-1]
		sign := 0
		if d > 0 {
			sign = 1
		} else if d < 0 {
			sign = -1
		}
		if sign == 0 {
			continue
		}
		if lastSign != 0 && sign != lastSign {
			reversals++
		}
		lastSign = sign
	}
	return reversals
}

// detectSurge compares the current count to the mean of the trailing window.
// Both the ratio and the absolute delta must clear their thresholds, so
// small fluctuations at low baseline counts do not alarm.
func (e *Engine) detectSurge(current int, counts []float64) SurgeResult {
	baseline := 0.0
	if len(counts) > 0 {
		baseline = stat.Mean(counts, nil)
	}

	var ratio float64
	switch {
	case baseline > 0:
		ratio = float64(current) / baseline
	case current > 0:
		ratio = ratioSentinel
	}

	delta := float64(current) - baseline

	return SurgeResult{
		Baseline:  math.Round(baseline*100) / 100,
		Ratio:     math.Round(ratio*100) / 100,
		Delta:     delta,
		Triggered: ratio >= e.cfg.SurgeRatio && delta >= e.cfg.SurgeDelta,
	}
}
