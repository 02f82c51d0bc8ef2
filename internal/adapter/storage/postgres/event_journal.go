package postgres

import (
	"context"
	"fmt"

	"storefront-checkout-gateway/internal/core/ports"
)

// EventJournalRepo implements ports.EventJournal.
type EventJournalRepo struct {
	pool Pool
}

// NewEventJournalRepo creates a new EventJournalRepo.
func NewEventJournalRepo(pool Pool) *EventJournalRepo {
	return &EventJournalRepo{pool: pool}
}

// Record persists a fired analytics event for reconciliation.
func (r *EventJournalRepo) Record(ctx context.Context, entry *ports.JournalEntry) error {
	query := `INSERT INTO event_journal (id, session_id, kind, dedup_key, currency, value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.SessionID, entry.Kind, entry.DedupKey,
		entry.Currency, entry.Value, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}
	return nil
}
