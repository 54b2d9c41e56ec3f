package models

import "time"

// Lead type constants
const (
	LeadTipoTaller = "taller"
	LeadTipoCoche  = "coche"
)

// Lead represents a completed flow's captured data, ready for follow-up by
// the sales or workshop team. Leads are immutable once recorded.
type Lead struct {
	ID     string `json:"id" gorm:"primaryKey"`
	Tipo   string `json:"tipo" gorm:"index"` // "taller" or "coche"
	UserID string `json:"user_id"`

	// Workshop appointment fields
	Matricula   string `json:"matricula,omitempty"`
	Preferencia string `json:"preferencia,omitempty"`
	Dia         string `json:"dia,omitempty"`
	Urgente     string `json:"urgente,omitempty"`
	Contacto    string `json:"contacto,omitempty"`

	// Vehicle inquiry fields
	CocheInteres  string `json:"coche_interes,omitempty"`
	OrigenAnuncio string `json:"origen_anuncio,omitempty"`
	OrigenCliente string `json:"origen_cliente,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
