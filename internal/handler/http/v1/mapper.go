package v1

import "github.com/vatsav/emergency_dispatch_system/internal/models"

// DTOToEmergencyModel преобразует DTO создания/обновления в доменную модель.
// Используем одну функцию, так как поля совпадают.
func DTOToEmergencyModel(dto any) *models.Emergency {
	switch v := dto.(type) {
	case CreateEmergencyRequest:
		return &models.Emergency{
			ID:          v.ID,
			Type:        v.Type,
			Location:    v.Location,
			Time:        v.Time,
			Status:      v.Status,
			Description: v.Description,
		}
	case UpdateEmergencyRequest:
		return &models.Emergency{
			Type:        v.Type,
			Location:    v.Location,
			Time:        v.Time,
			Status:      v.Status,
			Description: v.Description,
		}
	}
	return nil
}

// ModelToEmergencyResponse преобразует доменную модель в DTO для ответа
func ModelToEmergencyResponse(model *models.Emergency) *EmergencyResponse {
	return &EmergencyResponse{
		ID:           model.ID,
		Type:         model.Type,
		Location:     model.Location,
		Time:         model.Time,
		Status:       model.Status,
		Description:  model.Description,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		TriageStatus: model.TriageStatus,
	}
}

// ModelsToEmergencyResponses преобразует слайс моделей в слайс DTO
func ModelsToEmergencyResponses(models []*models.Emergency) []*EmergencyResponse {
	responses := make([]*EmergencyResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToEmergencyResponse(model)
	}
	return responses
}

// ModelToCallLogResponse преобразует запись звонка в DTO для ответа
func ModelToCallLogResponse(model *models.CallLog) *CallLogResponse {
	return &CallLogResponse{
		ID:                model.ID,
		CreatedAt:         model.CreatedAt,
		Transcript:        model.Transcript,
		Emotions:          model.Emotions,
		TriageStatus:      model.TriageStatus,
		Summary:           model.Summary,
		RecommendedAction: model.RecommendedAction,
		Approved:          model.Approved,
	}
}

// ModelsToCallLogResponses преобразует слайс записей звонков в слайс DTO
func ModelsToCallLogResponses(models []*models.CallLog) []*CallLogResponse {
	responses := make([]*CallLogResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToCallLogResponse(model)
	}
	return responses
}
