package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

const graphAPIVersion = "v21.0"

// WhatsAppService sends replies through the Meta WhatsApp Cloud API.
type WhatsAppService struct {
	token         string
	phoneNumberID string
	baseURL       string
	client        *http.Client
}

// NewWhatsAppService builds the Cloud API sender from environment variables.
func NewWhatsAppService() (*WhatsAppService, error) {
	token := os.Getenv("WHATSAPP_TOKEN")
	phoneNumberID := os.Getenv("WHATSAPP_PHONE_NUMBER_ID")

	if token == "" || phoneNumberID == "" {
		return nil, fmt.Errorf("missing WhatsApp Cloud API credentials in environment variables")
	}

	return &WhatsAppService{
		token:         token,
		phoneNumberID: phoneNumberID,
		baseURL:       "https://graph.facebook.com",
		client:        &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type textMessageRequest struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

// SendText sends a plain text WhatsApp message to the given wa_id.
func (w *WhatsAppService) SendText(to, body string) error {
	payload := textMessageRequest{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
	}
	payload.Text.Body = body

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/%s/messages", w.baseURL, graphAPIVersion, w.phoneNumberID)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+w.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("cloud api returned %d: %s", resp.StatusCode, string(respBody))
	}

	log.Printf("✅ WhatsApp message sent to %s", to)
	return nil
}
