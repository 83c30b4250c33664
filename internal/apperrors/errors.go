package apperrors

import "errors"

// Сигнальные ошибки приложения. Слои репозитория/классификатора оборачивают
// их через fmt.Errorf("...: %w: %w", ...), хэндлеры различают через errors.Is.
var (
	// ErrValidation - некорректный или неполный ввод клиента (HTTP 400).
	ErrValidation = errors.New("validation error")

	// ErrNotFound - неизвестный идентификатор при update/delete (HTTP 404).
	ErrNotFound = errors.New("not found")

	// ErrUpstreamUnavailable - сетевой/сервисный сбой внешнего классификатора (HTTP 500).
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// ErrClassification - классификатор вернул нераспарсиваемый или неполный ответ (HTTP 500).
	ErrClassification = errors.New("classification failed")

	// ErrStorage - сбой базы данных (HTTP 500, детали клиенту не раскрываются).
	ErrStorage = errors.New("storage error")
)
