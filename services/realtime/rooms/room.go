package rooms

import (
	"fmt"
	"strings"
)

// RoomKind scopes a broadcast group to an underlying entity
type RoomKind string

const (
	KindConversation RoomKind = "conversation"
	KindTrip         RoomKind = "trip"
	KindUser         RoomKind = "user"
)

// Room identifies a broadcast group: a kind plus the entity ID it is
// scoped to. The wire form is "kind:entityID".
type Room struct {
	Kind     RoomKind
	EntityID string
}

// ID returns the wire form of the room identifier
func (r Room) ID() string {
	return fmt.Sprintf("%s:%s", r.Kind, r.EntityID)
}

// ConversationRoom builds the room for a conversation
func ConversationRoom(conversationID string) Room {
	return Room{Kind: KindConversation, EntityID: conversationID}
}

// TripRoom builds the room for a trip
func TripRoom(tripID string) Room {
	return Room{Kind: KindTrip, EntityID: tripID}
}

// UserRoom builds an identity's personal inbox room
func UserRoom(userID string) Room {
	return Room{Kind: KindUser, EntityID: userID}
}

// ParseRoomID parses the wire form of a room identifier
func ParseRoomID(roomID string) (Room, error) {
	kind, entityID, ok := strings.Cut(roomID, ":")
	if !ok || entityID == "" {
		return Room{}, fmt.Errorf("malformed room id %q", roomID)
	}
	switch RoomKind(kind) {
	case KindConversation, KindTrip, KindUser:
		return Room{Kind: RoomKind(kind), EntityID: entityID}, nil
	}
	return Room{}, fmt.Errorf("unknown room kind %q", kind)
}
