package googlecalendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestClient_CreateEvent(t *testing.T) {
	var gotContentType string
	var gotBody EventRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]string{
			"status":  "success",
			"eventId": "evt_12345",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	eventID, err := client.CreateEvent(context.Background(), EventRequest{
		Title:     "นัดหมาย: ตรวจสุขภาพ",
		StartTime: "2026-09-01T09:00:00+07:00",
		EndTime:   "2026-09-01T10:00:00+07:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "evt_12345", eventID)
	// Мост Apps Script требует "простой" Content-Type, иначе тело теряется
	assert.Equal(t, "text/plain;charset=utf-8", gotContentType)
	assert.Equal(t, "นัดหมาย: ตรวจสุขภาพ", gotBody.Title)
}

func TestClient_CreateEvent_BridgeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "error",
			"message": "calendar not found",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	_, err := client.CreateEvent(context.Background(), EventRequest{Title: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBridgeRejected)
	assert.Contains(t, err.Error(), "calendar not found")
}

func TestClient_CreateEvent_MissingEventID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "success"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	_, err := client.CreateEvent(context.Background(), EventRequest{Title: "x"})

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_DeleteEvent(t *testing.T) {
	var gotAction, gotEventID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotAction = body["action"]
		gotEventID = body["eventId"]

		json.NewEncoder(w).Encode(map[string]string{"status": "success"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	err := client.DeleteEvent(context.Background(), "evt_42")

	require.NoError(t, err)
	assert.Equal(t, "delete", gotAction)
	assert.Equal(t, "evt_42", gotEventID)
}

func TestClient_ListEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		json.NewEncoder(w).Encode([]map[string]string{
			{"id": "evt_1", "title": "ตรวจสุขภาพ", "startTime": "2026-09-01T09:00:00+07:00", "endTime": "2026-09-01T10:00:00+07:00"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	events, err := client.ListEvents(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "evt_1", events[0].ID)
	assert.Equal(t, "ตรวจสุขภาพ", events[0].Title)
}

func TestClient_ListEvents_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	_, err := client.ListEvents(context.Background())

	assert.ErrorIs(t, err, ErrInvalidResponse)
}
