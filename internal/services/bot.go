package services

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/patrisenra/pasenca/internal/models"
	"github.com/patrisenra/pasenca/internal/storage"
)

// Bot is the dialogue engine. Given a sender id and raw message text it
// advances that sender's session through the conversation state machine and
// returns the reply to send back. It performs no I/O of its own; send
// failures and storage are the callers' concern.
type Bot struct {
	sessions storage.SessionStore
	leads    storage.LeadStore
}

// NewBot creates the dialogue engine on top of the given stores.
func NewBot(sessions storage.SessionStore, leads storage.LeadStore) *Bot {
	return &Bot{
		sessions: sessions,
		leads:    leads,
	}
}

// stepResult is what a state handler produces: the state to move to, the
// reply text, and the lead to record when a flow just completed.
type stepResult struct {
	next  models.State
	reply string
	lead  *models.Lead
}

// stay keeps the session in its current state, typically to re-prompt after
// a validation failure.
func stay(s *models.Session, reply string) stepResult {
	return stepResult{next: s.State, reply: reply}
}

// Reply processes one incoming message. It always returns a non-empty reply
// and never fails outward: unparseable input lands in a re-prompt or the
// welcome menu, not in an error.
func (b *Bot) Reply(userID, text string) string {
	var result stepResult

	b.sessions.Update(userID, func(s *models.Session) {
		result = b.step(s, text)
		s.State = result.next
		s.UpdatedAt = time.Now()
	})

	if result.lead != nil {
		if err := b.leads.Append(result.lead); err != nil {
			log.Printf("❌ Failed to record %s lead for %s: %v",
				result.lead.Tipo, userID, err)
		} else {
			log.Printf("📋 Lead recorded: tipo=%s user=%s",
				result.lead.Tipo, userID)
		}
	}

	return result.reply
}

// SessionSnapshot exposes the current state and collected data of a session
// for the debug endpoint. The map is a copy.
func (b *Bot) SessionSnapshot(userID string) (string, map[string]string) {
	s, ok := b.sessions.Get(userID)
	if !ok {
		return string(models.StateStart), map[string]string{}
	}
	return string(s.State), s.Data
}

// step evaluates the global overrides and then dispatches on the current
// state. It mutates s.Data but leaves the transition to the caller.
func (b *Bot) step(s *models.Session, text string) stepResult {
	raw := Collapse(text)
	norm := Normalize(text)

	// Global overrides win over whatever flow is active: asking for a
	// person or for pricing abandons the flow on the spot.
	switch Classify(norm) {
	case IntentHumano:
		return stepResult{next: models.StateHumano, reply: msgHandoff}
	case IntentPresupuesto:
		return stepResult{next: models.StateHumano, reply: msgPresupuesto}
	}

	switch s.State {
	case models.StateStart:
		return handleStart(s, norm)
	case models.StateTallerMatricula:
		return handleTallerMatricula(s, raw, norm)
	case models.StateTallerHorario:
		return handleTallerHorario(s, raw, norm)
	case models.StateTallerDia:
		return handleTallerDia(s, raw, norm)
	case models.StateTallerUrgente:
		return handleTallerUrgente(s, norm)
	case models.StateTallerContacto:
		return handleTallerContacto(s, raw, norm)
	case models.StateCocheIdentificar:
		return handleCocheIdentificar(s, raw, norm)
	case models.StateCocheOrigenAnuncio:
		return handleCocheOrigenAnuncio(s, raw)
	case models.StateCocheOrigenCliente:
		return handleCocheOrigenCliente(s, raw)
	case models.StateInfoFlow:
		return stay(s, msgInfo)
	case models.StateHumano:
		return stay(s, msgHumanoAck)
	case models.StateEnd:
		return stepResult{next: models.StateStart, reply: msgBienvenida}
	default:
		return stepResult{next: models.StateStart, reply: msgNoEntiendo}
	}
}

// handleStart routes the first message of a conversation. INFO answers stay
// on the welcome menu; only the workshop and vehicle flows leave START.
func handleStart(s *models.Session, norm string) stepResult {
	switch Classify(norm) {
	case IntentTaller:
		return stepResult{next: models.StateTallerMatricula, reply: msgTallerMatricula}
	case IntentCoches:
		return stepResult{next: models.StateCocheIdentificar, reply: msgCocheIdentificar}
	default:
		return stay(s, msgBienvenida)
	}
}

func handleTallerMatricula(s *models.Session, raw, norm string) stepResult {
	if len([]rune(norm)) < 5 {
		return stay(s, msgTallerMatriculaRetry)
	}
	s.Data["matricula"] = raw
	return stepResult{next: models.StateTallerHorario, reply: msgTallerHorario}
}

func handleTallerHorario(s *models.Session, raw, norm string) stepResult {
	if !containsAny(norm, "mañ", "man", "tard", "igual") {
		return stay(s, msgTallerHorarioRetry)
	}
	s.Data["pref"] = raw
	return stepResult{next: models.StateTallerDia, reply: msgTallerDia}
}

func handleTallerDia(s *models.Session, raw, norm string) stepResult {
	if len([]rune(norm)) < 3 {
		return stay(s, msgTallerDiaRetry)
	}
	s.Data["dia"] = raw
	return stepResult{next: models.StateTallerUrgente, reply: msgTallerUrgente}
}

func handleTallerUrgente(s *models.Session, norm string) stepResult {
	if !isYes(norm) && !isNo(norm) {
		return stay(s, msgTallerUrgenteRetry)
	}
	s.Data["urgente"] = norm
	return stepResult{next: models.StateTallerContacto, reply: msgTallerContacto}
}

func handleTallerContacto(s *models.Session, raw, norm string) stepResult {
	switch {
	case norm == "el mismo" || norm == "mismo":
		s.Data["contacto"] = contactoMismoNumero
	case len([]rune(norm)) < 2:
		return stay(s, msgTallerContactoRetry)
	default:
		s.Data["contacto"] = raw
	}

	lead := &models.Lead{
		ID:          uuid.NewString(),
		Tipo:        models.LeadTipoTaller,
		UserID:      s.UserID,
		Matricula:   s.Data["matricula"],
		Preferencia: s.Data["pref"],
		Dia:         s.Data["dia"],
		Urgente:     s.Data["urgente"],
		Contacto:    s.Data["contacto"],
		CreatedAt:   time.Now(),
	}

	confirmation := tallerConfirmacion(
		s.Data["matricula"], s.Data["pref"], s.Data["dia"],
		s.Data["urgente"], s.Data["contacto"])

	return stepResult{next: models.StateEnd, reply: confirmation, lead: lead}
}

func handleCocheIdentificar(s *models.Session, raw, norm string) stepResult {
	if len([]rune(norm)) < 3 {
		return stay(s, msgCocheIdentificarRetry)
	}
	s.Data["coche_interes"] = raw
	return stepResult{next: models.StateCocheOrigenAnuncio, reply: msgCocheOrigenAnuncio}
}

func handleCocheOrigenAnuncio(s *models.Session, raw string) stepResult {
	s.Data["origen_anuncio"] = raw
	return stepResult{next: models.StateCocheOrigenCliente, reply: msgCocheOrigenCliente}
}

func handleCocheOrigenCliente(s *models.Session, raw string) stepResult {
	s.Data["origen_cliente"] = raw

	lead := &models.Lead{
		ID:            uuid.NewString(),
		Tipo:          models.LeadTipoCoche,
		UserID:        s.UserID,
		CocheInteres:  s.Data["coche_interes"],
		OrigenAnuncio: s.Data["origen_anuncio"],
		OrigenCliente: s.Data["origen_cliente"],
		CreatedAt:     time.Now(),
	}

	reply := msgCocheDisponibilidad + "\n\n" + msgHandoff
	return stepResult{next: models.StateHumano, reply: reply, lead: lead}
}

func containsAny(norm string, markers ...string) bool {
	for _, m := range markers {
		if strings.Contains(norm, m) {
			return true
		}
	}
	return false
}
