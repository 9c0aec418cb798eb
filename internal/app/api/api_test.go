package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concierge-system/internal/chat"
	"concierge-system/internal/common/logger"
	"concierge-system/internal/domain"
	"concierge-system/internal/state"
	"concierge-system/internal/store"
	"concierge-system/internal/store/local"
)

func newTestServer(t *testing.T) (*httptest.Server, *state.Container) {
	t.Helper()
	st, err := local.Open(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	c, err := state.New(context.Background(), st, store.NopFeed{}, logger.Nop())
	require.NoError(t, err)
	srv := NewServer(c, chat.NewConcierge(nil, logger.Nop()), "admin123", logger.Nop())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, c
}

func postJSON(t *testing.T, url string, body any, token string) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func doJSON(t *testing.T, method, url string, body any, token string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func newCookieClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func login(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	resp := postJSON(t, ts.URL+"/api/admin/login", domain.LoginRequest{Password: "admin123"}, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out domain.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out.Token
}

func TestGuestSubmitsCheckoutRequest(t *testing.T) {
	ts, c := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/requests/checkout", domain.CreateCheckoutRequest{
		RoomNumber: "302", Time: "14:00", LuggageHelp: true,
	}, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out domain.CreateRequestResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, domain.StatusPending, out.Status)

	r, ok := c.Request(out.ID)
	require.True(t, ok)
	assert.Equal(t, domain.RequestCheckout, r.Type)
	assert.Equal(t, "302", r.RoomNumber)
	assert.Contains(t, r.Details, "14:00")
	assert.Contains(t, r.Details, "Yes")
}

func TestGuestValidationFailureIs400(t *testing.T) {
	ts, c := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/requests/service", domain.CreateServiceRequest{
		RoomNumber: "101",
	}, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, c.Requests())
}

func TestAdminStatusLifecycleOverHTTP(t *testing.T) {
	ts, c := newTestServer(t)
	token := login(t, ts)

	created := c.AddRequest(context.Background(), domain.RequestItem{
		Type: domain.RequestOrder, RoomNumber: "205",
	})

	url := fmt.Sprintf("%s/api/admin/requests/%s/status", ts.URL, created.ID)

	resp := doJSON(t, http.MethodPatch, url, domain.UpdateStatusRequest{Status: domain.StatusConfirmed}, token)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodPatch, url, domain.UpdateStatusRequest{Status: domain.StatusCompleted}, token)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Terminal: any further transition is rejected and leaves the record alone.
	resp = doJSON(t, http.MethodPatch, url, domain.UpdateStatusRequest{Status: domain.StatusConfirmed}, token)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	got, _ := c.Request(created.ID)
	assert.Equal(t, domain.StatusCompleted, got.Status)
}

func TestAdminEndpointsRequireToken(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/admin/requests")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = postJSON(t, ts.URL+"/api/admin/login", domain.LoginRequest{Password: "wrong"}, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminTogglesAvailability(t *testing.T) {
	ts, c := newTestServer(t)
	token := login(t, ts)

	items := c.MenuItems()
	require.NotEmpty(t, items)
	target := items[0]
	require.True(t, target.Available)

	url := fmt.Sprintf("%s/api/admin/menu/%s/availability", ts.URL, target.ID)
	resp := doJSON(t, http.MethodPatch, url, nil, token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var item domain.MenuItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
	assert.False(t, item.Available)
	assert.Equal(t, target.ID, item.ID)
	assert.Equal(t, target.Name, item.Name)
}

func TestSettingsViewCarriesThemeAndLinks(t *testing.T) {
	ts, _ := newTestServer(t)
	token := login(t, ts)

	hs := domain.DefaultSettings()
	hs.PrimaryColor = "#445566"
	resp := doJSON(t, http.MethodPut, ts.URL+"/api/admin/settings", hs, token)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err := http.Get(ts.URL + "/api/settings")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view domain.SettingsView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, "#445566", view.Theme["--primary-color"])
	assert.Equal(t, "#445566dd", view.Theme["--primary-color-dark"])
	assert.Equal(t, "https://wa.me/1234567890", view.WhatsappLink)
	assert.Equal(t, "https://t.me/GreenAmazonConcierge", view.TelegramLink)
}

func TestChatDegradesToFallback(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/chat", domain.ChatRequest{Message: "any rooms?"}, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out domain.ChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, chat.FallbackReply, out.Reply)
}

func TestSessionRemembersRoomNumber(t *testing.T) {
	ts, _ := newTestServer(t)

	jar := newCookieClient(t)
	b, _ := json.Marshal(domain.CreateFeedbackRequest{RoomNumber: "302", Rating: 5, Comment: "great"})
	resp, err := jar.Post(ts.URL+"/api/feedbacks", "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = jar.Get(ts.URL + "/api/session/room")
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "302", out["room_number"])
}
