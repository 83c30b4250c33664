package models

import (
	"time"

	"github.com/google/uuid"
)

// Message - одна реплика звонка: роль говорящего и текст.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TranscriptEntry - элемент транскрипта. Сохраняем только пару role/content,
// любые дополнительные метаданные реплики отбрасываются при сохранении.
type TranscriptEntry struct {
	Message Message `json:"message"`
}

// CallLog представляет один проанализированный экстренный звонок.
type CallLog struct {
	ID                uuid.UUID          `json:"id"`
	CreatedAt         time.Time          `json:"created_at"`
	Transcript        []TranscriptEntry  `json:"transcript"`
	Emotions          map[string]float64 `json:"emotions"`
	TriageStatus      string             `json:"triage_status"`
	Summary           string             `json:"summary"`
	RecommendedAction string             `json:"recommended_action"`
	Approved          bool               `json:"approved"`
}
