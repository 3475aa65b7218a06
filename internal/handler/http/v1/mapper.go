package v1

import (
	"github.com/citywatch/alert_dispatch_system/internal/models"
	"github.com/citywatch/alert_dispatch_system/internal/service"
)

// IngestRequestToInput converts the ingest DTO to the pipeline input.
func IngestRequestToInput(dto IngestRequest) service.IngestInput {
	return service.IngestInput{
		CameraID:    dto.CameraID,
		RawType:     dto.Type,
		Confidence:  dto.Confidence,
		PeopleCount: dto.PeopleCount,
		AreaSqm:     dto.AreaSqm,
		MediaURL:    dto.MediaURL,
		EventTime:   dto.EventTime,
	}
}

// ReportRequestToInput converts the citizen report DTO to the pipeline input.
func ReportRequestToInput(dto CitizenReportRequest) service.ReportInput {
	return service.ReportInput{
		ReportedType: dto.Type,
		Description:  dto.Description,
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
		MediaURL:     dto.MediaURL,
	}
}

// ResultToIngestResponse converts a pipeline result to the response DTO.
func ResultToIngestResponse(result *service.IngestResult) *IngestResponse {
	resp := &IngestResponse{
		IncidentID:   result.IncidentID,
		Status:       result.Status,
		CrowdMetrics: result.CrowdMetrics,
	}
	if result.AssignedResponder != nil {
		resp.AssignedResponder = &ResponderMatchResponse{
			ID:        result.AssignedResponder.ID,
			Name:      result.AssignedResponder.Name,
			BadgeNo:   result.AssignedResponder.BadgeNo,
			DistanceM: result.AssignedResponder.DistanceM,
			FixAt:     result.AssignedResponder.FixAt,
		}
	}
	return resp
}

// ModelToIncidentResponse converts the domain model to the response DTO.
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:                  model.ID,
		Type:                model.Type,
		DetectedClass:       model.DetectedClass,
		Confidence:          model.Confidence,
		Source:              model.Source,
		Status:              model.Status,
		VerificationStatus:  model.VerificationStatus,
		FalsePositiveTag:    model.FalsePositiveTag,
		CameraID:            model.CameraID,
		AssignedResponderID: model.AssignedResponderID,
		Latitude:            model.Latitude,
		Longitude:           model.Longitude,
		MediaURL:            model.MediaURL,
		Description:         model.Description,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

// ModelsToIncidentResponses converts a slice of models to response DTOs.
func ModelsToIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, incident := range incidents {
		responses[i] = ModelToIncidentResponse(incident)
	}
	return responses
}
