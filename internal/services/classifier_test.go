package services

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Hola   Mundo ", "hola mundo"},
		{"SÍ", "sí"},
		{"\tCuánto  CUESTA\n", "cuánto cuesta"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		// Human handoff keywords
		{"quiero hablar con una persona", IntentHumano},
		{"llámame cuando podáis", IntentHumano},
		{"es urgente", IntentHumano},

		// Pricing beats the workshop keyword it appears next to
		{"quiero presupuesto para frenos", IntentPresupuesto},
		{"cuánto cuesta el cambio de aceite", IntentPresupuesto},
		{"cuanto vale la revision", IntentPresupuesto},

		// Business info
		{"cuál es vuestro horario", IntentInfo},
		{"donde estais exactamente", IntentInfo},
		{"dame el telefono", IntentInfo},

		// Workshop: taller keywords win over coche keywords by priority
		{"necesito cita para la itv", IntentTaller},
		{"el coche hace un ruido raro", IntentTaller},
		{"cambio de aceite", IntentTaller},

		// Vehicle inquiry
		{"vi un coche en instagram", IntentCoches},
		{"sigue disponible?", IntentCoches},

		// Numeric menu shortcuts, exact match only
		{"1", IntentTaller},
		{"2", IntentCoches},
		{"3", IntentInfo},
		{"4", IntentHumano},
		{" 1 ", IntentTaller},
		{"12", IntentUnknown},

		// Fallback
		{"", IntentUnknown},
		{"gracias", IntentUnknown},
	}

	for _, tt := range tests {
		if got := Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	inputs := []string{"hola", "1", "quiero presupuesto", "", "vi un coche"}
	for _, in := range inputs {
		first := Classify(in)
		second := Classify(in)
		if first != second {
			t.Errorf("Classify(%q) not stable: %v then %v", in, first, second)
		}
	}
}

func TestYesNoPredicates(t *testing.T) {
	for _, v := range []string{"si", "sí", "s", "yes"} {
		if !isYes(v) {
			t.Errorf("isYes(%q) = false, want true", v)
		}
		if isNo(v) {
			t.Errorf("isNo(%q) = true, want false", v)
		}
	}

	for _, v := range []string{"no", "n"} {
		if !isNo(v) {
			t.Errorf("isNo(%q) = false, want true", v)
		}
	}

	for _, v := range []string{"sip", "nope", "claro", ""} {
		if isYes(v) || isNo(v) {
			t.Errorf("%q should be neither yes nor no", v)
		}
	}
}
