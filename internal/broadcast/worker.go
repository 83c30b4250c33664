package broadcast

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vatsav/emergency_dispatch_system/internal/config"
	"github.com/vatsav/emergency_dispatch_system/internal/metrics"
)

// Worker - фоновый обработчик, подписанный на канал событий Redis.
// Полученные события передаются хабу для рассылки websocket-клиентам.
type Worker struct {
	redisClient *redis.Client
	hub         *Hub
	logger      *logrus.Logger
	cfg         *config.Config
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, hub *Hub, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		hub:         hub,
		logger:      logger,
		cfg:         cfg,
	}
}

// Start запускает горутину доставки событий подключенным клиентам
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting broadcast worker...")
	pubsub := w.redisClient.Subscribe(ctx, w.cfg.BroadcastChannel)

	go func() {
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping broadcast worker.")
				return
			case msg, ok := <-ch:
				if !ok {
					w.logger.Warn("Broadcast subscription channel closed.")
					return
				}
				w.deliver(msg.Payload)
			}
		}
	}()
}

// deliver раскладывает тип события для метрик и передает сырые байты хабу.
// Пересылаем именно исходные байты, чтобы клиенты получили то, что было
// опубликовано после коммита, без повторной сериализации.
func (w *Worker) deliver(payload string) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		w.logger.WithError(err).Error("Failed to decode broadcast event, skipping")
		return
	}

	metrics.Default.BroadcastEvents.WithLabelValues(envelope.Type).Inc()
	w.logger.WithFields(logrus.Fields{
		"event_type": envelope.Type,
		"clients":    w.hub.ClientCount(),
	}).Debug("Delivering broadcast event")

	w.hub.Broadcast([]byte(payload))
}
