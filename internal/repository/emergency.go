package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/vatsav/emergency_dispatch_system/internal/apperrors"
	"github.com/vatsav/emergency_dispatch_system/internal/models"
	"github.com/vatsav/emergency_dispatch_system/internal/service"
)

const emergencyListCacheKey = "emergencies:all"

type EmergencyRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewEmergencyRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.EmergencyRepository {
	return &EmergencyRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create создает новую запись о происшествии в бд.
// Координаты и триаж-статус при создании не задаются и остаются NULL.
func (r *EmergencyRepository) Create(ctx context.Context, emergency *models.Emergency) error {
	query := `
		INSERT INTO emergencies (id, type, location, time, status, description)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.Exec(ctx, query,
		emergency.ID,
		emergency.Type,
		emergency.Location,
		emergency.Time,
		emergency.Status,
		emergency.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to create emergency: %w: %w", apperrors.ErrStorage, err)
	}

	r.invalidateListCache(ctx)
	return nil
}

// GetByID возвращает происшествие по его идентификатору
func (r *EmergencyRepository) GetByID(ctx context.Context, id string) (*models.Emergency, error) {
	emergency := &models.Emergency{}
	query := `
		SELECT id, type, location, time, status, description, latitude, longitude, triage_status
		FROM emergencies
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&emergency.ID,
		&emergency.Type,
		&emergency.Location,
		&emergency.Time,
		&emergency.Status,
		&emergency.Description,
		&emergency.Latitude,
		&emergency.Longitude,
		&emergency.TriageStatus,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("emergency with id %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get emergency by id: %w: %w", apperrors.ErrStorage, err)
	}
	return emergency, nil
}

// Update выполняет полную замену редактируемых полей происшествия.
// Координаты и триаж-статус не входят в контракт обновления и сохраняются как есть.
func (r *EmergencyRepository) Update(ctx context.Context, emergency *models.Emergency) error {
	query := `
		UPDATE emergencies SET
			type = $1,
			location = $2,
			time = $3,
			status = $4,
			description = $5
		WHERE id = $6
		RETURNING latitude, longitude, triage_status;
	`
	err := r.db.QueryRow(ctx, query,
		emergency.Type,
		emergency.Location,
		emergency.Time,
		emergency.Status,
		emergency.Description,
		emergency.ID,
	).Scan(
		&emergency.Latitude,
		&emergency.Longitude,
		&emergency.TriageStatus,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("emergency with id %s not found for update: %w", emergency.ID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to update emergency: %w: %w", apperrors.ErrStorage, err)
	}

	r.invalidateListCache(ctx)
	return nil
}

// Delete удаляет происшествие. Удаление необратимо, soft-delete не используется.
func (r *EmergencyRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM emergencies WHERE id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete emergency: %w: %w", apperrors.ErrStorage, err)
	}

	// Проверка, была ли удалена хоть одна строка. Если RowsAffected() == 0,
	// значит происшествия с таким id не существует.
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("emergency with id %s not found for delete: %w", id, apperrors.ErrNotFound)
	}

	r.invalidateListCache(ctx)
	return nil
}

// List возвращает все происшествия, отсортированные по времени сообщения по убыванию
func (r *EmergencyRepository) List(ctx context.Context) ([]*models.Emergency, error) {
	if cached := r.getListFromCache(ctx); cached != nil {
		return cached, nil
	}

	query := `
		SELECT id, type, location, time, status, description, latitude, longitude, triage_status
		FROM emergencies
		ORDER BY time DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergencies: %w: %w", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	emergencies := make([]*models.Emergency, 0)
	for rows.Next() {
		emergency := &models.Emergency{}
		err := rows.Scan(
			&emergency.ID,
			&emergency.Type,
			&emergency.Location,
			&emergency.Time,
			&emergency.Status,
			&emergency.Description,
			&emergency.Latitude,
			&emergency.Longitude,
			&emergency.TriageStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan emergency row: %w: %w", apperrors.ErrStorage, err)
		}
		emergencies = append(emergencies, emergency)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w: %w", apperrors.ErrStorage, err)
	}

	r.setListCache(ctx, emergencies)
	return emergencies, nil
}

// getListFromCache пытается получить список происшествий из Redis.
// Любая ошибка кеша трактуется как промах.
func (r *EmergencyRepository) getListFromCache(ctx context.Context) []*models.Emergency {
	val, err := r.redisClient.Get(ctx, emergencyListCacheKey).Bytes()
	if err != nil {
		return nil
	}

	emergencies := make([]*models.Emergency, 0)
	if err := json.Unmarshal(val, &emergencies); err != nil {
		return nil
	}
	return emergencies
}

// setListCache сохраняет список происшествий в Redis
func (r *EmergencyRepository) setListCache(ctx context.Context, emergencies []*models.Emergency) {
	val, err := json.Marshal(emergencies)
	if err != nil {
		return
	}
	r.redisClient.Set(ctx, emergencyListCacheKey, val, r.cacheTTL)
}

// invalidateListCache удаляет список происшествий из Redis кэша.
// Вызывается после каждой мутации, чтобы список не отдавал устаревшие данные.
func (r *EmergencyRepository) invalidateListCache(ctx context.Context) {
	r.redisClient.Del(ctx, emergencyListCacheKey)
}
