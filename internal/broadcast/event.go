package broadcast

import "context"

// EventType - тип события изменения происшествия
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

// Event - событие, рассылаемое всем подключенным live-клиентам.
// Payload содержит полную запись для CREATE/UPDATE и только идентификатор для DELETE.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload"`
}

// DeletePayload - полезная нагрузка события удаления
type DeletePayload struct {
	ID string `json:"id"`
}

// Publisher - интерфейс для публикации событий изменений.
// Публикация выполняется строго после коммита мутации в бд.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
