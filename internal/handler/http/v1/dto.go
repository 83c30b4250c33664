package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/vatsav/emergency_dispatch_system/internal/models"
)

// CreateEmergencyRequest DTO для создания происшествия
// @Description DTO для создания происшествия
type CreateEmergencyRequest struct {
	ID          string `json:"id" validate:"required,min=1,max=255"`
	Type        string `json:"type" validate:"required,min=2,max=255"`
	Location    string `json:"location" validate:"required,min=2,max=255"`
	Time        string `json:"time" validate:"required"`
	Status      string `json:"status" validate:"required"`
	Description string `json:"description,omitempty"`
}

// UpdateEmergencyRequest DTO для полного обновления происшествия
// @Description DTO для полного обновления происшествия
type UpdateEmergencyRequest struct {
	Type        string `json:"type" validate:"required,min=2,max=255"`
	Location    string `json:"location" validate:"required,min=2,max=255"`
	Time        string `json:"time" validate:"required"`
	Status      string `json:"status" validate:"required"`
	Description string `json:"description,omitempty"`
}

// EmergencyResponse DTO для ответа с информацией о происшествии
// @Description DTO для ответа с информацией о происшествии
type EmergencyResponse struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	Location     string   `json:"location"`
	Time         string   `json:"time"`
	Status       string   `json:"status"`
	Description  string   `json:"description"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	TriageStatus *string  `json:"triage_status"`
}

// AnalyzeCallRequest DTO для анализа звонка. Лишние поля внутри message
// отбрасываются при привязке - сохраняется только пара role/content.
// @Description DTO для анализа звонка
type AnalyzeCallRequest struct {
	Transcript []models.TranscriptEntry `json:"transcript"`
	Emotions   map[string]float64       `json:"emotions"`
}

// CallLogResponse DTO для ответа с записью звонка
// @Description DTO для ответа с записью звонка
type CallLogResponse struct {
	ID                uuid.UUID                `json:"id"`
	CreatedAt         time.Time                `json:"created_at"`
	Transcript        []models.TranscriptEntry `json:"transcript"`
	Emotions          map[string]float64       `json:"emotions"`
	TriageStatus      string                   `json:"triage_status"`
	Summary           string                   `json:"summary"`
	RecommendedAction string                   `json:"recommended_action"`
	Approved          bool                     `json:"approved"`
}

// AnalyzeErrorResponse DTO тела ошибки анализа звонка
// @Description DTO тела ошибки анализа звонка
type AnalyzeErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
	Cause   string `json:"cause"`
}
