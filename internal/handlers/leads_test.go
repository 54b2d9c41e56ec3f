package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/patrisenra/pasenca/internal/models"
	"github.com/patrisenra/pasenca/internal/storage"
)

func TestLeadListReturnsRecordedLeads(t *testing.T) {
	leads := storage.NewMemoryLeadStore()
	leads.Append(&models.Lead{ID: "a", Tipo: models.LeadTipoTaller, UserID: "u1", Matricula: "1234ABC"})
	leads.Append(&models.Lead{ID: "b", Tipo: models.LeadTipoCoche, UserID: "u2", CocheInteres: "golf gti"})

	app := fiber.New()
	app.Get("/admin/leads", NewLeadHandler(leads).List)

	req := httptest.NewRequest("GET", "/admin/leads", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result struct {
		Count int           `json:"count"`
		Leads []models.Lead `json:"leads"`
	}
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if result.Count != 2 || len(result.Leads) != 2 {
		t.Fatalf("count = %d with %d leads, want 2", result.Count, len(result.Leads))
	}
	if result.Leads[0].ID != "a" || result.Leads[1].ID != "b" {
		t.Errorf("lead order wrong: %s, %s", result.Leads[0].ID, result.Leads[1].ID)
	}
}
