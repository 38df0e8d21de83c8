package models

import (
	"time"
)

// Message is a single chat message inside a conversation. It is immutable
// once written except for the Read flag, which flips when the participant
// who did not author it views the conversation.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	Text           string    `json:"text"`
	Timestamp      time.Time `json:"timestamp"`
	Read           bool      `json:"isRead"`
}

// Conversation links an organization and a volunteer around one opportunity.
// At most one conversation exists per (organization, volunteer, opportunity)
// triple. The display-name fields are denormalized at creation time and go
// stale if the source records are renamed.
type Conversation struct {
	ID               string    `json:"id"`
	OrganizationID   string    `json:"organizationId"`
	VolunteerID      string    `json:"volunteerId"`
	OpportunityID    string    `json:"opportunityId"`
	OpportunityTitle string    `json:"opportunityTitle,omitempty"`
	OrganizationName string    `json:"organizationName,omitempty"`
	VolunteerName    string    `json:"volunteerName,omitempty"`
	Messages         []Message `json:"messages"`
	LastMessage      *Message  `json:"lastMessage,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// HasParticipant reports whether userID is one of the two participants.
func (c *Conversation) HasParticipant(userID string) bool {
	return c.OrganizationID == userID || c.VolunteerID == userID
}

// ConversationSummary is a conversation plus the per-viewer unread count.
// UnreadCount is never persisted; it is recomputed on every listing.
type ConversationSummary struct {
	Conversation
	UnreadCount int `json:"unreadCount"`
}
