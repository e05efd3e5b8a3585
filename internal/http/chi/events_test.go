package chi

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/marcelsud/hookview/capture"
	"github.com/marcelsud/hookview/capture/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readFrame reads one text-event-stream frame and returns its data payload
func readFrame(t *testing.T, reader *bufio.Reader) string {
	t.Helper()

	var data string
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		if line == "" {
			if data != "" {
				return data
			}
			continue
		}
		if strings.HasPrefix(line, "data: ") {
			data = strings.TrimPrefix(line, "data: ")
		}
	}
}

func TestGetEvents(t *testing.T) {
	hub := newTestHub()
	s := mocks.NewUseCase(t)
	srv := httptest.NewServer(Handlers(context.Background(), s, hub, "", nil))
	defer srv.Close()

	reqCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, srv.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	assert.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	reader := bufio.NewReader(resp.Body)

	// the connected acknowledgment is always the first frame
	assert.JSONEq(t, `{"type":"connected"}`, readFrame(t, reader))
	assert.Equal(t, 1, hub.Len())

	// a broadcast reaches the connected viewer as one frame
	hub.Notify(capture.Event{
		Type:      capture.EventNewRequest,
		RequestID: 42,
		Endpoint:  "http://example.com/hooks/ci",
		Method:    "POST",
		Timestamp: time.Now().UTC(),
	})

	var event capture.Event
	require.NoError(t, json.Unmarshal([]byte(readFrame(t, reader)), &event))
	assert.Equal(t, capture.EventNewRequest, event.Type)
	assert.Equal(t, int64(42), event.RequestID)
	assert.Equal(t, "http://example.com/hooks/ci", event.Endpoint)

	// client disconnect deterministically unregisters the sink
	cancel()
	require.Eventually(t, func() bool {
		return hub.Len() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestGetEventsTwoViewers(t *testing.T) {
	hub := newTestHub()
	s := mocks.NewUseCase(t)
	srv := httptest.NewServer(Handlers(context.Background(), s, hub, "", nil))
	defer srv.Close()

	open := func() (*bufio.Reader, func()) {
		reqCtx, cancel := context.WithCancel(context.Background())
		req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, srv.URL+"/events", nil)
		require.NoError(t, err)
		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		reader := bufio.NewReader(resp.Body)
		assert.JSONEq(t, `{"type":"connected"}`, readFrame(t, reader))
		return reader, func() {
			cancel()
			resp.Body.Close()
		}
	}

	first, closeFirst := open()
	defer closeFirst()
	second, closeSecond := open()
	defer closeSecond()
	require.Equal(t, 2, hub.Len())

	hub.Notify(capture.Event{Type: capture.EventNewRequest, RequestID: 1})

	for _, reader := range []*bufio.Reader{first, second} {
		var event capture.Event
		require.NoError(t, json.Unmarshal([]byte(readFrame(t, reader)), &event))
		assert.Equal(t, int64(1), event.RequestID)
	}
}
