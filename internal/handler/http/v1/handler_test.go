package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vatsav/emergency_dispatch_system/internal/apperrors"
	"github.com/vatsav/emergency_dispatch_system/internal/broadcast"
	"github.com/vatsav/emergency_dispatch_system/internal/config"
	"github.com/vatsav/emergency_dispatch_system/internal/models"
	"github.com/vatsav/emergency_dispatch_system/internal/service/mocks"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*mocks.MockEmergencyService, *mocks.MockCallLogService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	emergencyMock := mocks.NewMockEmergencyService(ctrl)
	callLogMock := mocks.NewMockCallLogService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		ClassifyTimeout: time.Second,
	}

	hub := broadcast.NewHub(logger)
	handler := NewHandler(emergencyMock, callLogMock, hub, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterRoutes(router)

	return emergencyMock, callLogMock, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListEmergencies_Success(t *testing.T) {
	emergencyMock, _, router := newTestHandler(t)
	expected := []*models.Emergency{
		{ID: "EMG002", Type: "Medical", Location: "Andheri East, Mumbai", Time: "10:15AM", Status: "Active"},
		{ID: "EMG001", Type: "Fire", Location: "Bandra West, Mumbai", Time: "10:00AM", Status: "Active"},
	}

	emergencyMock.EXPECT().
		ListEmergencies(gomock.Any()).
		Return(expected, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/emergencies", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []*EmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "EMG002", resp[0].ID)
	assert.Equal(t, "EMG001", resp[1].ID)
	assert.Nil(t, resp[0].Latitude)
}

func TestCreateEmergency_Success(t *testing.T) {
	emergencyMock, _, router := newTestHandler(t)
	reqBody := CreateEmergencyRequest{
		ID:          "EMG100",
		Type:        "Fire",
		Location:    "Bandra West, Mumbai",
		Time:        "10:00AM",
		Status:      "Active",
		Description: "Large fire in residential building.",
	}

	emergencyMock.EXPECT().
		CreateEmergency(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/emergencies", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp EmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "EMG100", resp.ID)
	assert.Equal(t, "Fire", resp.Type)
}

func TestCreateEmergency_InvalidJSON(t *testing.T) {
	emergencyMock, _, router := newTestHandler(t)

	emergencyMock.EXPECT().CreateEmergency(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/emergencies", bytes.NewBufferString(`{"id": "EMG100"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateEmergency_ValidationError(t *testing.T) {
	emergencyMock, _, router := newTestHandler(t)
	reqBody := CreateEmergencyRequest{ // Отсутствует Type
		ID:       "EMG100",
		Location: "Bandra West, Mumbai",
		Time:     "10:00AM",
		Status:   "Active",
	}

	emergencyMock.EXPECT().CreateEmergency(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/emergencies", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Type' failed on the 'required' tag")
}

func TestCreateEmergency_ServiceError(t *testing.T) {
	emergencyMock, _, router := newTestHandler(t)
	reqBody := CreateEmergencyRequest{
		ID:       "EMG100",
		Type:     "Fire",
		Location: "Bandra West, Mumbai",
		Time:     "10:00AM",
		Status:   "Active",
	}

	emergencyMock.EXPECT().
		CreateEmergency(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: could not create emergency: %w", apperrors.ErrStorage)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/emergencies", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestUpdateEmergency_Success(t *testing.T) {
	emergencyMock, _, router := newTestHandler(t)
	reqBody := UpdateEmergencyRequest{
		Type:        "Fire",
		Location:    "Bandra West, Mumbai",
		Time:        "10:00AM",
		Status:      "Resolved",
		Description: "Fire extinguished.",
	}
	updated := &models.Emergency{
		ID:          "EMG001",
		Type:        reqBody.Type,
		Location:    reqBody.Location,
		Time:        reqBody.Time,
		Status:      reqBody.Status,
		Description: reqBody.Description,
	}

	emergencyMock.EXPECT().
		UpdateEmergency(gomock.Any(), gomock.Any()).
		Return(updated, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/emergencies/EMG001", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp EmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "EMG001", resp.ID)
	assert.Equal(t, "Resolved", resp.Status)
}

func TestUpdateEmergency_NotFound(t *testing.T) {
	emergencyMock, _, router := newTestHandler(t)
	reqBody := UpdateEmergencyRequest{
		Type:     "Fire",
		Location: "Bandra West, Mumbai",
		Time:     "10:00AM",
		Status:   "Active",
	}

	emergencyMock.EXPECT().
		UpdateEmergency(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: could not update emergency: %w", apperrors.ErrNotFound)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/emergencies/EMG999", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "emergency not found")
}

func TestDeleteEmergency_Success(t *testing.T) {
	emergencyMock, _, router := newTestHandler(t)

	emergencyMock.EXPECT().
		DeleteEmergency(gomock.Any(), "EMG001").
		Return(nil).
		Times(1)

	w := makeRequest(router, "DELETE", "/api/emergencies/EMG001", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeleteEmergency_NotFound(t *testing.T) {
	emergencyMock, _, router := newTestHandler(t)

	emergencyMock.EXPECT().
		DeleteEmergency(gomock.Any(), "EMG999").
		Return(fmt.Errorf("service: could not delete emergency: %w", apperrors.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "DELETE", "/api/emergencies/EMG999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "emergency not found")
}

func TestListCallLogs_Success(t *testing.T) {
	_, callLogMock, router := newTestHandler(t)
	expected := []*models.CallLog{
		{
			ID:           uuid.New(),
			CreatedAt:    time.Now(),
			Transcript:   []models.TranscriptEntry{{Message: models.Message{Role: "user", Content: "Help"}}},
			Emotions:     map[string]float64{"fear": 0.9},
			TriageStatus: "High",
		},
	}

	callLogMock.EXPECT().
		ListCallLogs(gomock.Any()).
		Return(expected, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/calls", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []*CallLogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "High", resp[0].TriageStatus)
	require.Len(t, resp[0].Transcript, 1)
	assert.Equal(t, "user", resp[0].Transcript[0].Message.Role)
}

func TestAnalyzeCall_Success(t *testing.T) {
	_, callLogMock, router := newTestHandler(t)
	transcript := []models.TranscriptEntry{
		{Message: models.Message{Role: "user", Content: "There is a fire"}},
	}
	stored := &models.CallLog{
		ID:                uuid.New(),
		CreatedAt:         time.Now(),
		Transcript:        transcript,
		Emotions:          map[string]float64{"fear": 0.8},
		TriageStatus:      "Critical",
		Summary:           "Fire reported",
		RecommendedAction: "Dispatch fire department",
		Approved:          false,
	}

	callLogMock.EXPECT().
		AnalyzeCall(gomock.Any(), transcript, map[string]float64{"fear": 0.8}).
		Return(stored, nil).
		Times(1)

	body := `{"transcript":[{"message":{"role":"user","content":"There is a fire"}}],"emotions":{"fear":0.8}}`
	w := makeRequest(router, "POST", "/api/calls/analyze", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp CallLogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Critical", resp.TriageStatus)
	assert.False(t, resp.Approved)
	require.Len(t, resp.Transcript, 1)
	assert.Equal(t, "There is a fire", resp.Transcript[0].Message.Content)
}

func TestAnalyzeCall_EmptyTranscript(t *testing.T) {
	_, callLogMock, router := newTestHandler(t)

	callLogMock.EXPECT().
		AnalyzeCall(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: transcript is required: %w", apperrors.ErrValidation)).
		Times(1)

	w := makeRequest(router, "POST", "/api/calls/analyze", bytes.NewBufferString(`{"transcript":[]}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "transcript is required")
}

func TestAnalyzeCall_UpstreamError(t *testing.T) {
	_, callLogMock, router := newTestHandler(t)
	upstreamErr := fmt.Errorf("service: could not classify call: gemini request failed: %w: %w",
		apperrors.ErrUpstreamUnavailable, errors.New("dial tcp: connection refused"))

	callLogMock.EXPECT().
		AnalyzeCall(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, upstreamErr).
		Times(1)

	body := `{"transcript":[{"message":{"role":"user","content":"Help"}}]}`
	w := makeRequest(router, "POST", "/api/calls/analyze", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp AnalyzeErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "server error during analysis", resp.Error)
	assert.Equal(t, "upstream service unavailable", resp.Details)
	assert.Contains(t, resp.Cause, "connection refused")
}

func TestAnalyzeCall_ClassificationError(t *testing.T) {
	_, callLogMock, router := newTestHandler(t)

	callLogMock.EXPECT().
		AnalyzeCall(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: could not classify call: %w", apperrors.ErrClassification)).
		Times(1)

	body := `{"transcript":[{"message":{"role":"user","content":"Help"}}]}`
	w := makeRequest(router, "POST", "/api/calls/analyze", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp AnalyzeErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "classification failed", resp.Details)
	assert.Equal(t, "no specific cause available", resp.Cause)
}

func TestAnalyzeCall_StorageErrorDoesNotLeakDetail(t *testing.T) {
	_, callLogMock, router := newTestHandler(t)
	storageErr := fmt.Errorf("service: could not persist call log: %w: %w",
		apperrors.ErrStorage, errors.New("pq: relation call_logs does not exist"))

	callLogMock.EXPECT().
		AnalyzeCall(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, storageErr).
		Times(1)

	body := `{"transcript":[{"message":{"role":"user","content":"Help"}}]}`
	w := makeRequest(router, "POST", "/api/calls/analyze", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "call_logs")
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
