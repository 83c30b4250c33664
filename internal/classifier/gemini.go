package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"github.com/vatsav/emergency_dispatch_system/internal/apperrors"
	"github.com/vatsav/emergency_dispatch_system/internal/config"
	"github.com/vatsav/emergency_dispatch_system/internal/models"
	"google.golang.org/api/option"
)

// promptTemplate - фиксированный шаблон инструкции для модели.
// %s заменяется на построчно размеченный транскрипт ("role: content").
const promptTemplate = `You are an expert emergency dispatcher AI. Analyze the following emergency call transcript and provide a triage assessment.

**Transcript:**
%s

**Task:**
Based on the transcript, provide the following in a JSON object format:
1.  "triage_status": Classify the call's urgency. Options are: 'Critical', 'High', 'Medium', 'Low'.
2.  "summary": A concise, one-sentence summary of the incident.
3.  "recommended_action": The single most important next action for the dispatcher (e.g., "Dispatch police and ambulance immediately," "Advise caller to stay on the line," "No action required, non-emergency").

**JSON Output Example:**
{
  "triage_status": "Critical",
  "summary": "A house fire has been reported with people possibly trapped inside.",
  "recommended_action": "Dispatch fire department and ambulance to the location immediately."
}`

// NewGeminiClient создает клиент generative-language API
func NewGeminiClient(ctx context.Context, cfg *config.Config) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return client, nil
}

// GeminiClassifier - реализация Classifier поверх Gemini.
// Один синхронный вызов на запрос анализа, без ретраев и батчинга.
type GeminiClassifier struct {
	model  *genai.GenerativeModel
	logger *logrus.Logger
}

func NewGeminiClassifier(client *genai.Client, cfg *config.Config, logger *logrus.Logger) *GeminiClassifier {
	return &GeminiClassifier{
		model:  client.GenerativeModel(cfg.GeminiModel),
		logger: logger,
	}
}

// Classify преобразует транскрипт в структурированный триаж-вердикт.
// Сетевые сбои оборачиваются в ErrUpstreamUnavailable, нераспарсиваемый
// ответ модели - в ErrClassification: вызывающей стороне важно их различать.
func (g *GeminiClassifier) Classify(ctx context.Context, transcript []models.TranscriptEntry) (*TriageVerdict, error) {
	log := g.logger.WithFields(logrus.Fields{
		"component": "classifier",
		"method":    "Classify",
		"turns":     len(transcript),
	})

	prompt := buildPrompt(transcript)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.WithError(err).Error("Gemini request failed")
		return nil, fmt.Errorf("gemini request failed: %w: %w", apperrors.ErrUpstreamUnavailable, err)
	}

	raw, err := responseText(resp)
	if err != nil {
		log.WithError(err).Error("Gemini returned no usable candidate")
		return nil, err
	}

	verdict, err := parseVerdict(raw)
	if err != nil {
		log.WithError(err).WithField("raw_response", raw).Error("Failed to parse triage verdict")
		return nil, err
	}

	log.WithField("triage_status", verdict.TriageStatus).Info("Call classified successfully")
	return verdict, nil
}

// buildPrompt сериализует реплики в текстовый блок и встраивает его в шаблон
func buildPrompt(transcript []models.TranscriptEntry) string {
	lines := make([]string, 0, len(transcript))
	for _, entry := range transcript {
		lines = append(lines, fmt.Sprintf("%s: %s", entry.Message.Role, entry.Message.Content))
	}
	return fmt.Sprintf(promptTemplate, strings.Join(lines, "\n"))
}

// responseText извлекает текст первого кандидата ответа
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty model response: %w", apperrors.ErrClassification)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("model response contains no text parts: %w", apperrors.ErrClassification)
	}
	return sb.String(), nil
}

// stripCodeFences убирает markdown-обертку вокруг JSON-ответа модели
func stripCodeFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// parseVerdict разбирает недоверенный текст модели в вердикт.
// Отсутствие обязательного поля или неизвестный уровень срочности - это
// ошибка контракта ответа, а не транспортный сбой.
func parseVerdict(raw string) (*TriageVerdict, error) {
	verdict := &TriageVerdict{}
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), verdict); err != nil {
		return nil, fmt.Errorf("malformed model output: %w: %w", apperrors.ErrClassification, err)
	}

	if verdict.Summary == "" || verdict.RecommendedAction == "" {
		return nil, fmt.Errorf("model output is missing required fields: %w", apperrors.ErrClassification)
	}

	tier, ok := canonicalTier(verdict.TriageStatus)
	if !ok {
		return nil, fmt.Errorf("model returned unknown triage tier %q: %w", verdict.TriageStatus, apperrors.ErrClassification)
	}
	verdict.TriageStatus = tier

	return verdict, nil
}

// canonicalTier приводит уровень срочности к каноническому написанию
func canonicalTier(raw string) (string, bool) {
	for _, tier := range []string{TierCritical, TierHigh, TierMedium, TierLow} {
		if strings.EqualFold(strings.TrimSpace(raw), tier) {
			return tier, true
		}
	}
	return "", false
}
