package broadcast

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHub поднимает хаб и тестовый ws-сервер, регистрирующий каждого клиента
func newTestHub(t *testing.T) (*Hub, *httptest.Server, chan string) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	hub := NewHub(logger)
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	clientIDs := make(chan string, 16)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)

		id := uuid.NewString()
		hub.Register(id, conn)
		clientIDs <- id
	}))
	t.Cleanup(srv.Close)

	return hub, srv, clientIDs
}

// dialTestHub подключает ws-клиента к тестовому серверу
func dialTestHub(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestHub_BroadcastDeliversToAllClients(t *testing.T) {
	hub, srv, clientIDs := newTestHub(t)

	first := dialTestHub(t, srv)
	second := dialTestHub(t, srv)
	<-clientIDs
	<-clientIDs
	require.Equal(t, 2, hub.ClientCount())

	payload := []byte(`{"type":"CREATE","payload":{"id":"EMG001"}}`)
	hub.Broadcast(payload)

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		msgType, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, websocket.TextMessage, msgType)
		assert.Equal(t, payload, msg)
	}
}

func TestHub_UnregisterStopsDelivery(t *testing.T) {
	hub, srv, clientIDs := newTestHub(t)

	conn := dialTestHub(t, srv)
	id := <-clientIDs
	require.Equal(t, 1, hub.ClientCount())

	hub.Unregister(id)
	assert.Equal(t, 0, hub.ClientCount())

	hub.Broadcast([]byte(`{"type":"DELETE","payload":{"id":"EMG001"}}`))

	// После отключения клиент больше ничего не получает
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
}

func TestHub_UnregisterIsIdempotent(t *testing.T) {
	hub, srv, clientIDs := newTestHub(t)

	dialTestHub(t, srv)
	id := <-clientIDs

	hub.Unregister(id)
	hub.Unregister(id) // Повторный вызов не должен паниковать

	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_BroadcastDropsClientWithFailedWrite(t *testing.T) {
	hub, srv, clientIDs := newTestHub(t)

	conn := dialTestHub(t, srv)
	<-clientIDs
	require.Equal(t, 1, hub.ClientCount())

	// Обрываем соединение на стороне клиента: запись на сервере упадет
	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		hub.Broadcast([]byte(`{"type":"UPDATE","payload":{"id":"EMG001"}}`))
		return hub.ClientCount() == 0
	}, 2*time.Second, 50*time.Millisecond)
}

func TestHub_BroadcastWithNoClients(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	hub := NewHub(logger)

	// Рассылка без клиентов не должна паниковать
	hub.Broadcast([]byte(`{"type":"CREATE"}`))

	assert.Equal(t, 0, hub.ClientCount())
}
