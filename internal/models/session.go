package models

import "time"

// State identifies where a conversation currently sits in one of the
// scripted flows.
type State string

const (
	StateStart              State = "START"
	StateTallerMatricula    State = "TALLER_MATRICULA"
	StateTallerHorario      State = "TALLER_HORARIO"
	StateTallerDia          State = "TALLER_DIA"
	StateTallerUrgente      State = "TALLER_URGENTE"
	StateTallerContacto     State = "TALLER_CONTACTO"
	StateCocheIdentificar   State = "COCHE_IDENTIFICAR"
	StateCocheOrigenAnuncio State = "COCHE_ORIGEN_ANUNCIO"
	StateCocheOrigenCliente State = "COCHE_ORIGEN_CLIENTE"
	StateInfoFlow           State = "INFO_FLOW"
	StateHumano             State = "HUMANO"
	StateEnd                State = "END"
)

// Session stores per-user conversation state between WhatsApp messages.
// Data accumulates the answers collected by the active flow; it is never
// cleared, so a session that finished a flow keeps its old values around.
type Session struct {
	UserID    string            `json:"user_id"`
	State     State             `json:"state"`
	Data      map[string]string `json:"data"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewSession creates a fresh session for a user we have not seen before.
func NewSession(userID string) *Session {
	return &Session{
		UserID:    userID,
		State:     StateStart,
		Data:      make(map[string]string),
		UpdatedAt: time.Now(),
	}
}
