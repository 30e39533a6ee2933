//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"solar-dispatch/internal/pkg/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// Notifications reads the toast list every response body carries.
func Notifications(t *testing.T, w *httptest.ResponseRecorder) []notify.Message {
	t.Helper()
	var body struct {
		Notifications []notify.Message `json:"notifications"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "Response: %s", w.Body.String())
	return body.Notifications
}

// AssertNotified checks that one toast of level contains text.
func AssertNotified(t *testing.T, w *httptest.ResponseRecorder, level notify.Level, text string) {
	t.Helper()
	for _, m := range Notifications(t, w) {
		if m.Level == level && strings.Contains(m.Message, text) {
			return
		}
	}
	assert.Failf(t, "notification missing", "no %s notification containing %q in %s", level, text, w.Body.String())
}
