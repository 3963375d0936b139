package telegram

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

func TestTelebotAdapter_SendMessageWrapsChatID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error_code":403,"description":"Forbidden: bot was blocked by the user"}`))
	}))
	defer srv.Close()

	bot, err := telebot.NewBot(telebot.Settings{Token: "test-token", URL: srv.URL, Offline: true})
	require.NoError(t, err)

	err = NewTelebotAdapter(bot).SendMessage(77, "🌸 reminder", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat 77")
	assert.Contains(t, err.Error(), "blocked by the user")
}
