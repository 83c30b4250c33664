package classifier

import (
	"context"

	"github.com/vatsav/emergency_dispatch_system/internal/models"
)

// Канонические уровни срочности, которые обязан вернуть классификатор.
const (
	TierCritical = "Critical"
	TierHigh     = "High"
	TierMedium   = "Medium"
	TierLow      = "Low"
)

// TriageVerdict - структурированный результат триажа звонка
type TriageVerdict struct {
	TriageStatus      string `json:"triage_status"`
	Summary           string `json:"summary"`
	RecommendedAction string `json:"recommended_action"`
}

// Classifier определяет контракт для провайдеров триаж-классификации.
// Реализация не выполняет никакой записи в хранилище - сохранение результата
// остается на вызывающей стороне.
type Classifier interface {
	Classify(ctx context.Context, transcript []models.TranscriptEntry) (*TriageVerdict, error)
}
