package broadcast

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/vatsav/emergency_dispatch_system/internal/metrics"
)

// Hub - реестр подключенных live-клиентов, ключ - идентификатор соединения.
// Запись в соединения выполняет только горутина воркера рассылки, поэтому
// конкурентных писателей на одном соединении нет.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*websocket.Conn
	logger  *logrus.Logger
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*websocket.Conn),
		logger:  logger,
	}
}

// Register добавляет клиента в реестр
func (h *Hub) Register(id string, conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[id] = conn
	h.mu.Unlock()

	metrics.Default.WSClientsActive.Set(float64(h.ClientCount()))
	h.logger.WithField("client_id", id).Info("Client connected")
}

// Unregister убирает клиента из реестра. Повторный вызов безопасен.
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	_, ok := h.clients[id]
	delete(h.clients, id)
	h.mu.Unlock()

	if ok {
		metrics.Default.WSClientsActive.Set(float64(h.ClientCount()))
		h.logger.WithField("client_id", id).Info("Client disconnected")
	}
}

// ClientCount возвращает число подключенных клиентов
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast доставляет сообщение каждому подключенному клиенту.
// Итерация идет по снапшоту реестра, поэтому конкурентные отключения не
// ломают рассылку. Клиент с ошибкой записи удаляется, ошибка не всплывает.
func (h *Hub) Broadcast(message []byte) {
	h.mu.RLock()
	snapshot := make(map[string]*websocket.Conn, len(h.clients))
	for id, conn := range h.clients {
		snapshot[id] = conn
	}
	h.mu.RUnlock()

	for id, conn := range snapshot {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			h.logger.WithError(err).WithField("client_id", id).Warn("Failed to deliver broadcast, dropping client")
			h.Unregister(id)
			conn.Close()
		}
	}
}
