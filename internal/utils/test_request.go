package utils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRequest выполняет запрос к тестовому серверу и возвращает ответ с прочитанным телом.
// Тело ответа уже закрыто.
func TestRequest(t *testing.T, ts *httptest.Server, method, path string, headers map[string]string, body io.Reader) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)

	req.Header.Set("Accept-Encoding", "identity")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(respBody)
}

// TestJSONRequest как TestRequest, но кодирует payload в JSON. Пустой payload отправляется без тела.
func TestJSONRequest(t *testing.T, ts *httptest.Server, method, path string, headers map[string]string, payload any) (*http.Response, string) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	withType := map[string]string{"Content-Type": "application/json"}
	for key, value := range headers {
		withType[key] = value
	}

	return TestRequest(t, ts, method, path, withType, body)
}

// DecodeJSON разбирает тело ответа, полученное из TestRequest.
func DecodeJSON[T any](t *testing.T, body string) T {
	t.Helper()

	var value T
	require.NoError(t, json.Unmarshal([]byte(body), &value), "body: %s", body)
	return value
}
