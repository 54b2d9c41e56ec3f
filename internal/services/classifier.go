package services

import "strings"

// Intent is the classified purpose of a single incoming message.
type Intent string

const (
	IntentHumano      Intent = "HUMANO"
	IntentPresupuesto Intent = "PRESUPUESTO"
	IntentInfo        Intent = "INFO"
	IntentTaller      Intent = "TALLER"
	IntentCoches      Intent = "COCHES"
	IntentUnknown     Intent = "UNKNOWN"
)

// Keyword tables checked in priority order: a human/pricing request must win
// over the workshop keywords it often appears next to ("presupuesto para
// frenos" is a pricing request, not a brake appointment).
var intentRules = []struct {
	intent   Intent
	keywords []string
}{
	{IntentHumano, []string{
		"persona", "humano", "asesor", "llamar", "llámame", "urgente",
	}},
	{IntentPresupuesto, []string{
		"presupuesto", "precio", "cuánto cuesta", "cuanto cuesta",
		"cuanto vale", "coste",
	}},
	{IntentInfo, []string{
		"horario", "dirección", "direccion", "ubicación", "ubicacion",
		"donde estais", "teléfono", "telefono", "contacto",
	}},
	{IntentTaller, []string{
		"cita", "revisión", "revision", "cambio de aceite", "aceite", "itv",
		"pre-itv", "avería", "averia", "ruido", "frenos", "mantenimiento",
	}},
	{IntentCoches, []string{
		"coche", "coches", "anuncio", "vi un coche", "más información",
		"mas informacion", "disponible", "instagram", "facebook", "web",
	}},
}

// Numeric shortcuts for the welcome menu.
var menuShortcuts = map[string]Intent{
	"1": IntentTaller,
	"2": IntentCoches,
	"3": IntentInfo,
	"4": IntentHumano,
}

// Collapse trims the text and squeezes internal whitespace runs to single
// spaces, keeping the sender's casing.
func Collapse(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Normalize prepares text for matching: trimmed, whitespace collapsed,
// lowercased. strings.ToLower handles the accented Spanish characters.
func Normalize(text string) string {
	return strings.ToLower(Collapse(text))
}

// Classify maps free text to an intent. First matching rule wins; menu
// shortcuts only apply when the whole message is the digit.
func Classify(text string) Intent {
	norm := Normalize(text)

	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(norm, kw) {
				return rule.intent
			}
		}
	}

	if intent, ok := menuShortcuts[norm]; ok {
		return intent
	}

	return IntentUnknown
}

var yesWords = map[string]bool{"si": true, "sí": true, "s": true, "yes": true}
var noWords = map[string]bool{"no": true, "n": true}

// isYes reports whether the normalized text is an affirmative answer.
func isYes(norm string) bool { return yesWords[norm] }

// isNo reports whether the normalized text is a negative answer.
func isNo(norm string) bool { return noWords[norm] }
