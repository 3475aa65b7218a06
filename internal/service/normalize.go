package service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/citywatch/alert_dispatch_system/internal/models"
)

// NormalizeType maps a raw detector label to a canonical incident type via
// case-insensitive substring match. Anything unrecognized, including the
// empty string, falls back to accident.
func NormalizeType(raw string) models.IncidentType {
	label := strings.ToLower(raw)
	switch {
	case strings.Contains(label, "weapon"):
		return models.IncidentTypeWeapon
	case strings.Contains(label, "fire"):
		return models.IncidentTypeFire
	case strings.Contains(label, "fight"):
		return models.IncidentTypeFight
	case strings.Contains(label, "crowd"):
		return models.IncidentTypeCrowd
	default:
		return models.IncidentTypeAccident
	}
}

// NormalizeConfidence clamps a detector confidence into [0, 1]. Absent or
// unparseable values are carried as unknown (nil), never an error.
func NormalizeConfidence(raw any) *float64 {
	v, ok := toFloat(raw)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	v = math.Min(math.Max(v, 0), 1)
	return &v
}

// parseCount extracts a non-negative people count from a loosely typed
// detector field. Returns false when the field is absent or not finite.
func parseCount(raw any) (int, bool) {
	v, ok := toFloat(raw)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return int(v), true
}

// parseArea extracts the detector-supplied area in square meters; zero
// means "use the tenant default".
func parseArea(raw any) float64 {
	v, ok := toFloat(raw)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return v
}

// toFloat accepts the numeric shapes a JSON body can produce plus numeric
// strings, which some detector firmwares send.
func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
