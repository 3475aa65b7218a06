package models

import (
	"time"

	"github.com/google/uuid"
)

// DensityLevel classifies people per square meter at a camera.
type DensityLevel string

const (
	DensityNormal   DensityLevel = "normal"
	DensityDense    DensityLevel = "dense"
	DensityCritical DensityLevel = "critical"
)

// FlowDirection classifies how the crowd count is moving between samples.
type FlowDirection string

const (
	FlowIn      FlowDirection = "in"
	FlowOut     FlowDirection = "out"
	FlowStatic  FlowDirection = "static"
	FlowChaotic FlowDirection = "chaotic"
)

// CrowdMetricSample is one people-count observation for a camera.
// Immutable once written; read back only as part of the trailing window.
type CrowdMetricSample struct {
	ID            int64         `json:"id"`
	CameraID      uuid.UUID     `json:"camera_id"`
	PeopleCount   int           `json:"people_count"`
	DensityLevel  DensityLevel  `json:"density_level"`
	FlowDirection FlowDirection `json:"flow_direction"`
	CapturedAt    time.Time     `json:"captured_at"`
}
