package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ridelink/tripsync/internal/pkg/models"
)

// ConversationRepo provides conversation membership lookups and message
// persistence over PostgreSQL
type ConversationRepo struct {
	db *sqlx.DB
}

// NewConversationRepo creates a new conversation repository
func NewConversationRepo(db *sqlx.DB) *ConversationRepo {
	return &ConversationRepo{db: db}
}

// IsParticipant reports whether the user belongs to the conversation
func (r *ConversationRepo) IsParticipant(ctx context.Context, conversationID, userID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM conversation_members
			WHERE conversation_id = $1 AND user_id = $2
		)
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, conversationID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check conversation membership: %w", err)
	}
	return exists, nil
}

// Members returns the user IDs belonging to the conversation
func (r *ConversationRepo) Members(ctx context.Context, conversationID string) ([]string, error) {
	query := `
		SELECT user_id FROM conversation_members
		WHERE conversation_id = $1
		ORDER BY user_id
	`

	var members []string
	if err := r.db.SelectContext(ctx, &members, query, conversationID); err != nil {
		return nil, fmt.Errorf("failed to list conversation members: %w", err)
	}
	return members, nil
}

// CreateMessage persists a chat message. Persistence happens before any
// broadcast so a delivered message is always recoverable from history.
func (r *ConversationRepo) CreateMessage(ctx context.Context, msg *models.Message) error {
	query := `
		INSERT INTO messages (
			id, conversation_id, sender_id, recipient_id, type, content, created_at
		) VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		msg.ID,
		msg.ConversationID,
		msg.SenderID,
		msg.RecipientID,
		msg.Type,
		msg.Content,
		msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}
