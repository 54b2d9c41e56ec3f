package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/patrisenra/pasenca/internal/services"
	"github.com/patrisenra/pasenca/internal/storage"
)

const testVerifyToken = "pasenca_verify_2026"

func newTestApp() (*fiber.App, *services.Bot) {
	bot := services.NewBot(storage.NewMemorySessionStore(), storage.NewMemoryLeadStore())

	app := fiber.New()
	wa := NewWhatsAppHandler(bot, nil, testVerifyToken)
	app.Get("/webhook", wa.HandleVerify)
	app.Post("/webhook", wa.HandleWebhook)
	app.Post("/test/whatsapp", NewDebugHandler(bot).HandleSimulate)

	return app, bot
}

func TestVerifyHandshake(t *testing.T) {
	app, _ := newTestApp()

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid subscription",
			query:      "hub.mode=subscribe&hub.verify_token=" + testVerifyToken + "&hub.challenge=1158201444",
			wantStatus: fiber.StatusOK,
			wantBody:   "1158201444",
		},
		{
			name:       "wrong token",
			query:      "hub.mode=subscribe&hub.verify_token=nope&hub.challenge=123",
			wantStatus: fiber.StatusForbidden,
		},
		{
			name:       "missing challenge",
			query:      "hub.mode=subscribe&hub.verify_token=" + testVerifyToken,
			wantStatus: fiber.StatusForbidden,
		},
		{
			name:       "wrong mode",
			query:      "hub.mode=unsubscribe&hub.verify_token=" + testVerifyToken + "&hub.challenge=123",
			wantStatus: fiber.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/webhook?"+tt.query, nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantBody != "" {
				body, _ := io.ReadAll(resp.Body)
				if string(body) != tt.wantBody {
					t.Errorf("body = %q, want %q", body, tt.wantBody)
				}
			}
		})
	}
}

func cloudEnvelope(from, text string) string {
	return `{
		"object": "whatsapp_business_account",
		"entry": [{"changes": [{"field": "messages", "value": {
			"messaging_product": "whatsapp",
			"contacts": [{"wa_id": "` + from + `"}],
			"messages": [{"from": "` + from + `", "id": "wamid.x", "type": "text",
				"text": {"body": "` + text + `"}}]
		}}]}]
	}`
}

func TestWebhookDeliveryAdvancesSession(t *testing.T) {
	app, bot := newTestApp()

	req := httptest.NewRequest("POST", "/webhook", strings.NewReader(cloudEnvelope("34600111222", "1")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	state, _ := bot.SessionSnapshot("34600111222")
	if state != "TALLER_MATRICULA" {
		t.Errorf("session state = %q, want TALLER_MATRICULA", state)
	}
}

func TestWebhookIgnoresStatusUpdates(t *testing.T) {
	app, _ := newTestApp()

	// Delivery receipts carry no messages array; the webhook still acks.
	payload := `{"object": "whatsapp_business_account", "entry": [{"changes": [{"field": "messages", "value": {"messaging_product": "whatsapp"}}]}]}`
	req := httptest.NewRequest("POST", "/webhook", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestWebhookAcksMalformedBody(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest("POST", "/webhook", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestSimulateEndpointReportsSession(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest("POST", "/test/whatsapp", strings.NewReader(`{"from":"debug1","message":"1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result struct {
		Success  bool   `json:"success"`
		Response string `json:"response"`
		Session  struct {
			State string            `json:"state"`
			Data  map[string]string `json:"data"`
		} `json:"session"`
	}
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if !result.Success {
		t.Error("success = false")
	}
	if result.Response == "" {
		t.Error("response is empty")
	}
	if result.Session.State != "TALLER_MATRICULA" {
		t.Errorf("session state = %q, want TALLER_MATRICULA", result.Session.State)
	}
}
