package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rsvp-service/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var InvalidJSON = `{"invalid": json}`

var testUser = &model.User{ID: 7, Name: "Organizer", Email: "organizer@example.com"}

// stubAuth stands in for the session middleware and injects a fixed user.
func stubAuth(user *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Set(ContextUserKey, user)
		}
		c.Next()
	}
}

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// assertDataEqual compares the envelope payload against the expected value by
// JSON shape.
func assertDataEqual(t *testing.T, expected interface{}, data interface{}) {
	t.Helper()
	want, err := json.Marshal(expected)
	require.NoError(t, err)
	got, err := json.Marshal(data)
	require.NoError(t, err)
	require.JSONEq(t, string(want), string(got))
}
