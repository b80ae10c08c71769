package usecase

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/ridelink/tripsync/internal/pkg/constants"
	"github.com/ridelink/tripsync/internal/pkg/models"
	"github.com/ridelink/tripsync/services/realtime"
	"github.com/ridelink/tripsync/services/realtime/rooms"
)

// SendChatMessage validates, authorizes and persists a chat message,
// then fans it out to the conversation room. Offline recipients get an
// out-of-band notification.
func (uc *realtimeUC) SendChatMessage(ctx context.Context, actor models.Actor, req *models.SendMessageRequest, excludeConnID string) (*models.Message, error) {
	room, err := rooms.ParseRoomID(req.RoomID)
	if err != nil || room.Kind != rooms.KindConversation {
		return nil, realtime.ErrValidation
	}
	if req.Content == "" {
		return nil, realtime.ErrValidation
	}
	maxLen := uc.cfg.Realtime.MaxMessageLength
	if maxLen > 0 && utf8.RuneCountInString(req.Content) > maxLen {
		return nil, realtime.ErrValidation
	}
	msgType := req.Type
	if msgType == "" {
		msgType = models.MessageTypeText
	}
	if !models.ValidMessageType(msgType) {
		return nil, realtime.ErrValidation
	}

	ok, err := uc.convs.IsParticipant(ctx, room.EntityID, actor.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, realtime.ErrForbidden
	}

	msg := &models.Message{
		ID:             uuid.NewString(),
		ConversationID: room.EntityID,
		SenderID:       actor.ID,
		RecipientID:    req.DestinataireID,
		Content:        req.Content,
		Type:           msgType,
		CreatedAt:      time.Now(),
	}
	if err := uc.convs.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	uc.rooms.Broadcast(room.ID(), constants.EventMessageNew, msg, excludeConnID)

	recipients := []string{}
	if msg.RecipientID != "" {
		recipients = append(recipients, msg.RecipientID)
	} else if members, err := uc.convs.Members(ctx, room.EntityID); err == nil {
		for _, m := range members {
			if m != actor.ID {
				recipients = append(recipients, m)
			}
		}
	}
	for _, r := range recipients {
		uc.notifyIfOffline(ctx, r, constants.EventMessageNew, msg)
	}

	return msg, nil
}
