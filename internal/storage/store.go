package storage

import "github.com/patrisenra/pasenca/internal/models"

// SessionStore owns all session records. Updates for the same user id are
// serialized: the callback runs with exclusive access to that user's
// session, so a read-validate-mutate step can never interleave with another
// message from the same sender.
type SessionStore interface {
	// Update runs fn with exclusive access to the user's session, creating
	// the session on first contact.
	Update(userID string, fn func(*models.Session))

	// Get returns a copy of the session for read-only introspection.
	Get(userID string) (models.Session, bool)
}

// LeadStore is the append-only collector of completed leads. Append is the
// only mutator; All exists for export collaborators and preserves insertion
// order.
type LeadStore interface {
	Append(lead *models.Lead) error
	All() ([]*models.Lead, error)
}
