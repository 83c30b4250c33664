package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vatsav/emergency_dispatch_system/internal/apperrors"
	"github.com/vatsav/emergency_dispatch_system/internal/classifier"
	"github.com/vatsav/emergency_dispatch_system/internal/config"
	"github.com/vatsav/emergency_dispatch_system/internal/metrics"
	"github.com/vatsav/emergency_dispatch_system/internal/models"
)

// CallLogRepository определяет контракт для работы с бд звонков
type CallLogRepository interface {
	Create(ctx context.Context, log *models.CallLog) error
	List(ctx context.Context) ([]*models.CallLog, error)
}

// CallLogService определяет контракт конвейера триажа звонков
type CallLogService interface {
	AnalyzeCall(ctx context.Context, transcript []models.TranscriptEntry, emotions map[string]float64) (*models.CallLog, error)
	ListCallLogs(ctx context.Context) ([]*models.CallLog, error)
}

type callLogService struct {
	repo       CallLogRepository
	classifier classifier.Classifier
	logger     *logrus.Logger
	cfg        *config.Config
}

func NewCallLogService(repo CallLogRepository, cls classifier.Classifier, logger *logrus.Logger, cfg *config.Config) CallLogService {
	return &callLogService{
		repo:       repo,
		classifier: cls,
		logger:     logger,
		cfg:        cfg,
	}
}

// AnalyzeCall - конвейер триажа: валидация -> классификация -> сохранение.
// Пустой транскрипт отклоняется до любого внешнего вызова. Классификация и
// вставка последовательны, но не транзакционны между собой: если вставка
// упала после успешной классификации, результат теряется и клиент повторяет
// запрос (известное ограничение, outbox не предусмотрен).
func (s *callLogService) AnalyzeCall(ctx context.Context, transcript []models.TranscriptEntry, emotions map[string]float64) (*models.CallLog, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "call_log",
		"method":  "AnalyzeCall",
		"turns":   len(transcript),
	})

	if len(transcript) == 0 {
		log.Warn("Rejected analyze request with empty transcript")
		return nil, fmt.Errorf("service: transcript is required: %w", apperrors.ErrValidation)
	}

	log.Info("Analyzing call transcript")

	classifyCtx, cancel := context.WithTimeout(ctx, s.cfg.ClassifyTimeout)
	defer cancel()

	verdict, err := s.classifier.Classify(classifyCtx, transcript)
	if err != nil {
		metrics.Default.ClassifyFailures.WithLabelValues(failureKind(err)).Inc()
		log.WithError(err).Error("Classifier failed")
		return nil, fmt.Errorf("service: could not classify call: %w", err)
	}

	callLog := &models.CallLog{
		Transcript:        normalizeTranscript(transcript),
		Emotions:          emotions,
		TriageStatus:      verdict.TriageStatus,
		Summary:           verdict.Summary,
		RecommendedAction: verdict.RecommendedAction,
	}

	if err := s.repo.Create(ctx, callLog); err != nil {
		log.WithError(err).Error("Failed to persist call log")
		return nil, fmt.Errorf("service: could not persist call log: %w", err)
	}

	metrics.Default.CallsAnalyzed.WithLabelValues(callLog.TriageStatus).Inc()
	log.WithFields(logrus.Fields{
		"call_log_id":   callLog.ID,
		"triage_status": callLog.TriageStatus,
	}).Info("Call analyzed and persisted")
	return callLog, nil
}

// ListCallLogs возвращает все записи звонков, новые первыми
func (s *callLogService) ListCallLogs(ctx context.Context) ([]*models.CallLog, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "call_log",
		"method":  "ListCallLogs",
	})

	logs, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list call logs from repository")
		return nil, fmt.Errorf("service: could not list call logs: %w", err)
	}

	log.WithField("count", len(logs)).Info("Call logs listed successfully")
	return logs, nil
}

// normalizeTranscript оставляет в каждой реплике только пару role/content
func normalizeTranscript(transcript []models.TranscriptEntry) []models.TranscriptEntry {
	normalized := make([]models.TranscriptEntry, len(transcript))
	for i, entry := range transcript {
		normalized[i] = models.TranscriptEntry{
			Message: models.Message{
				Role:    entry.Message.Role,
				Content: entry.Message.Content,
			},
		}
	}
	return normalized
}

// failureKind различает сбой внешнего сервиса и нарушение контракта ответа
func failureKind(err error) string {
	if errors.Is(err, apperrors.ErrUpstreamUnavailable) {
		return "upstream"
	}
	return "parse"
}
