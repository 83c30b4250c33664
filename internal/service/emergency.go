package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vatsav/emergency_dispatch_system/internal/broadcast"
	"github.com/vatsav/emergency_dispatch_system/internal/models"
)

// EmergencyRepository определяет контракт для работы с бд происшествий
type EmergencyRepository interface {
	Create(ctx context.Context, emergency *models.Emergency) error
	GetByID(ctx context.Context, id string) (*models.Emergency, error)
	Update(ctx context.Context, emergency *models.Emergency) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.Emergency, error)
}

// EmergencyService определяет контракт для бизнес-логики управления происшествиями
type EmergencyService interface {
	CreateEmergency(ctx context.Context, emergency *models.Emergency) error
	UpdateEmergency(ctx context.Context, emergency *models.Emergency) (*models.Emergency, error)
	DeleteEmergency(ctx context.Context, id string) error
	ListEmergencies(ctx context.Context) ([]*models.Emergency, error)
}

type emergencyService struct {
	repo      EmergencyRepository
	publisher broadcast.Publisher
	logger    *logrus.Logger
}

func NewEmergencyService(repo EmergencyRepository, publisher broadcast.Publisher, logger *logrus.Logger) EmergencyService {
	return &emergencyService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateEmergency создает происшествие и публикует ровно одно событие CREATE.
// Публикация идет строго после коммита: клиенты не должны увидеть событие
// мутации, которая не была сохранена.
func (s *emergencyService) CreateEmergency(ctx context.Context, emergency *models.Emergency) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "emergency",
		"method":       "CreateEmergency",
		"emergency_id": emergency.ID,
	})
	log.Info("Attempting to create a new emergency")

	if err := s.repo.Create(ctx, emergency); err != nil {
		log.WithError(err).Error("Failed to create emergency in repository")
		return fmt.Errorf("service: could not create emergency: %w", err)
	}

	s.publish(ctx, log, broadcast.Event{Type: broadcast.EventCreate, Payload: emergency})
	log.Info("Emergency created successfully")
	return nil
}

// UpdateEmergency выполняет полную замену редактируемых полей и публикует
// ровно одно событие UPDATE с сохраненной записью
func (s *emergencyService) UpdateEmergency(ctx context.Context, emergency *models.Emergency) (*models.Emergency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "emergency",
		"method":       "UpdateEmergency",
		"emergency_id": emergency.ID,
	})
	log.Info("Attempting to update an emergency")

	if err := s.repo.Update(ctx, emergency); err != nil {
		log.WithError(err).Warn("Failed to update emergency in repository")
		return nil, fmt.Errorf("service: could not update emergency: %w", err)
	}

	s.publish(ctx, log, broadcast.Event{Type: broadcast.EventUpdate, Payload: emergency})
	log.Info("Emergency updated successfully")
	return emergency, nil
}

// DeleteEmergency удаляет происшествие и публикует ровно одно событие DELETE
// с идентификатором в качестве полезной нагрузки
func (s *emergencyService) DeleteEmergency(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "emergency",
		"method":       "DeleteEmergency",
		"emergency_id": id,
	})
	log.Info("Attempting to delete emergency")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete emergency in repository")
		return fmt.Errorf("service: could not delete emergency: %w", err)
	}

	s.publish(ctx, log, broadcast.Event{Type: broadcast.EventDelete, Payload: broadcast.DeletePayload{ID: id}})
	log.Info("Emergency deleted successfully")
	return nil
}

// ListEmergencies возвращает все происшествия, новые первыми
func (s *emergencyService) ListEmergencies(ctx context.Context) ([]*models.Emergency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "ListEmergencies",
	})

	emergencies, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list emergencies from repository")
		return nil, fmt.Errorf("service: could not list emergencies: %w", err)
	}

	log.WithField("count", len(emergencies)).Info("Emergencies listed successfully")
	return emergencies, nil
}

// publish отправляет событие изменения. Мутация уже закоммичена, поэтому
// сбой публикации логируется, но не откатывает запрос.
func (s *emergencyService) publish(ctx context.Context, log *logrus.Entry, event broadcast.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithField("event_type", event.Type).Error("Failed to publish change event")
	}
}
