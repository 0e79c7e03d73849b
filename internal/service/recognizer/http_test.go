package recognizer

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecognize_PlateFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/recognize", r.URL.Path)
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, []byte("frame"), body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"detected": true, "plate": "ABC 123", "confidence": 0.93}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	result, err := client.Recognize(context.Background(), []byte("frame"))

	require.NoError(t, err)
	assert.Equal(t, "ABC 123", result.Text)
	require.NotNil(t, result.Confidence)
	assert.Equal(t, 93, *result.Confidence)
}

func TestRecognize_NoPlateDetected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"detected": false}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	result, err := client.Recognize(context.Background(), []byte("frame"))

	require.NoError(t, err)
	assert.Empty(t, result.Text)
	assert.Nil(t, result.Confidence)
}

func TestRecognize_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "model not loaded"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	result, err := client.Recognize(context.Background(), []byte("frame"))

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestRecognize_ServiceUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	result, err := client.Recognize(context.Background(), []byte("frame"))

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestRecognize_ConfidenceClamped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"detected": true, "plate": "XYZ789", "confidence": 1.7}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	result, err := client.Recognize(context.Background(), []byte("frame"))

	require.NoError(t, err)
	require.NotNil(t, result.Confidence)
	assert.Equal(t, 100, *result.Confidence)
}

func TestRecognize_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Recognize(context.Background(), []byte("frame"))

	require.Error(t, err)
}
