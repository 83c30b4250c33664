package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vatsav/emergency_dispatch_system/internal/apperrors"
	"github.com/vatsav/emergency_dispatch_system/internal/models"
	"github.com/vatsav/emergency_dispatch_system/internal/service"
)

type CallLogRepository struct {
	db *pgxpool.Pool
}

func NewCallLogRepository(db *pgxpool.Pool) service.CallLogRepository {
	return &CallLogRepository{db: db}
}

// Create сохраняет результат анализа звонка одной атомарной вставкой.
// Идентификатор и created_at генерируются базой, approved всегда false.
func (r *CallLogRepository) Create(ctx context.Context, log *models.CallLog) error {
	transcriptJSON, err := json.Marshal(log.Transcript)
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %w: %w", apperrors.ErrStorage, err)
	}
	emotionsJSON, err := json.Marshal(log.Emotions)
	if err != nil {
		return fmt.Errorf("failed to marshal emotions: %w: %w", apperrors.ErrStorage, err)
	}

	query := `
		INSERT INTO call_logs (transcript, emotions, triage_status, summary, recommended_action)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, approved;
	`
	err = r.db.QueryRow(ctx, query,
		transcriptJSON,
		emotionsJSON,
		log.TriageStatus,
		log.Summary,
		log.RecommendedAction,
	).Scan(&log.ID, &log.CreatedAt, &log.Approved)
	if err != nil {
		return fmt.Errorf("failed to create call log: %w: %w", apperrors.ErrStorage, err)
	}
	return nil
}

// List возвращает все записи звонков, новые первыми
func (r *CallLogRepository) List(ctx context.Context) ([]*models.CallLog, error) {
	query := `
		SELECT id, created_at, transcript, emotions, triage_status, summary, recommended_action, approved
		FROM call_logs
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list call logs: %w: %w", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	logs := make([]*models.CallLog, 0)
	for rows.Next() {
		log := &models.CallLog{}
		var transcriptRaw, emotionsRaw []byte
		err := rows.Scan(
			&log.ID,
			&log.CreatedAt,
			&transcriptRaw,
			&emotionsRaw,
			&log.TriageStatus,
			&log.Summary,
			&log.RecommendedAction,
			&log.Approved,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan call log row: %w: %w", apperrors.ErrStorage, err)
		}

		log.Transcript = decodeTranscript(transcriptRaw)
		log.Emotions = decodeEmotions(emotionsRaw)
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w: %w", apperrors.ErrStorage, err)
	}
	return logs, nil
}

// decodeTranscript разбирает сохраненный транскрипт. Некорректные или
// устаревшие данные деградируют до пустого транскрипта, а не роняют выборку.
func decodeTranscript(raw []byte) []models.TranscriptEntry {
	transcript := make([]models.TranscriptEntry, 0)
	if len(raw) == 0 {
		return transcript
	}
	if err := json.Unmarshal(raw, &transcript); err != nil {
		return make([]models.TranscriptEntry, 0)
	}
	return transcript
}

// decodeEmotions разбирает сохраненную карту эмоций с той же деградацией
func decodeEmotions(raw []byte) map[string]float64 {
	emotions := make(map[string]float64)
	if len(raw) == 0 {
		return emotions
	}
	if err := json.Unmarshal(raw, &emotions); err != nil {
		return make(map[string]float64)
	}
	return emotions
}
