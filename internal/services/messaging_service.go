package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/models"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/repository"
	"github.com/sirupsen/logrus"
)

// CreateConversationInput carries everything needed to open a conversation,
// including the denormalized display names cached on the record.
type CreateConversationInput struct {
	OrganizationID   string
	VolunteerID      string
	OpportunityID    string
	OpportunityTitle string
	OrganizationName string
	VolunteerName    string
	InitialMessage   string
}

// MessagingService owns conversations and their messages. Every mutation
// loads the whole conversations dataset, changes it in memory and writes it
// back; two concurrent writers are last-write-wins at dataset granularity.
type MessagingService struct {
	repo                *repository.ConversationRepository
	NotificationService *NotificationService
}

// NewMessagingService creates a new instance of MessagingService.
func NewMessagingService(repo *repository.ConversationRepository, notificationService *NotificationService) *MessagingService {
	return &MessagingService{
		repo:                repo,
		NotificationService: notificationService,
	}
}

// CreateConversation opens a conversation between an organization and a
// volunteer about one opportunity, seeded with an initial message authored by
// the organization. If a conversation for the same
// (organization, volunteer, opportunity) triple already exists it is returned
// unchanged and the new initial message is discarded. That discard mirrors
// the historical behavior and is flagged for product review; do not "fix" it
// here without clarification.
func (s *MessagingService) CreateConversation(ctx context.Context, input CreateConversationInput) (*models.Conversation, error) {
	conversations, err := s.repo.GetAllConversations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversations: %v", err)
	}

	for i := range conversations {
		existing := &conversations[i]
		if existing.OrganizationID == input.OrganizationID &&
			existing.VolunteerID == input.VolunteerID &&
			existing.OpportunityID == input.OpportunityID {
			logrus.WithField("conversation_id", existing.ID).Info("Conversation already exists, returning it")
			return existing, nil
		}
	}

	now := time.Now()
	conversation := models.Conversation{
		ID:               uuid.NewString(),
		OrganizationID:   input.OrganizationID,
		VolunteerID:      input.VolunteerID,
		OpportunityID:    input.OpportunityID,
		OpportunityTitle: input.OpportunityTitle,
		OrganizationName: input.OrganizationName,
		VolunteerName:    input.VolunteerName,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	message := models.Message{
		ID:             uuid.NewString(),
		ConversationID: conversation.ID,
		SenderID:       input.OrganizationID,
		Text:           input.InitialMessage,
		Timestamp:      now,
		Read:           false,
	}
	conversation.Messages = []models.Message{message}
	conversation.LastMessage = &message

	conversations = append(conversations, conversation)
	if err := s.repo.SaveAllConversations(ctx, conversations); err != nil {
		return nil, fmt.Errorf("failed to save conversation: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"conversation_id": conversation.ID,
		"organization_id": input.OrganizationID,
		"volunteer_id":    input.VolunteerID,
	}).Info("Conversation created")

	return &conversation, nil
}

// GetConversationsForUser lists the conversations the user participates in
// under the given role, newest activity first, each with the number of
// messages the user has not read yet. The unread count is never persisted,
// it is derived on every call.
func (s *MessagingService) GetConversationsForUser(ctx context.Context, userID, role string) ([]models.ConversationSummary, error) {
	conversations, err := s.repo.GetAllConversations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversations: %v", err)
	}

	summaries := []models.ConversationSummary{}
	for _, conversation := range conversations {
		switch role {
		case models.RoleVolunteer:
			if conversation.VolunteerID != userID {
				continue
			}
		case models.RoleOrganization:
			if conversation.OrganizationID != userID {
				continue
			}
		default:
			continue
		}

		unread := 0
		for _, message := range conversation.Messages {
			if message.SenderID != userID && !message.Read {
				unread++
			}
		}
		summaries = append(summaries, models.ConversationSummary{
			Conversation: conversation,
			UnreadCount:  unread,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return lastActivity(&summaries[i].Conversation).After(lastActivity(&summaries[j].Conversation))
	})

	return summaries, nil
}

// lastActivity is the timestamp of the latest message, falling back to the
// creation time for a conversation without messages. Creation always seeds a
// message, so the fallback is defensive only.
func lastActivity(c *models.Conversation) time.Time {
	if c.LastMessage != nil {
		return c.LastMessage.Timestamp
	}
	return c.CreatedAt
}

// GetConversationDetails returns one conversation and its messages in
// chronological order. Only the participant matching the declared role may
// view it. Viewing marks every message the viewer did not author as read and
// persists the flip; the viewer's own messages are untouched.
func (s *MessagingService) GetConversationDetails(ctx context.Context, conversationID, userID, role string) (*models.Conversation, []models.Message, error) {
	conversations, err := s.repo.GetAllConversations(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load conversations: %v", err)
	}

	index := -1
	for i := range conversations {
		if conversations[i].ID == conversationID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, nil, fmt.Errorf("conversation %s: %w", conversationID, ErrNotFound)
	}

	conversation := &conversations[index]
	switch role {
	case models.RoleVolunteer:
		if conversation.VolunteerID != userID {
			return nil, nil, fmt.Errorf("user %s is not the volunteer of conversation %s: %w", userID, conversationID, ErrAccessDenied)
		}
	case models.RoleOrganization:
		if conversation.OrganizationID != userID {
			return nil, nil, fmt.Errorf("user %s is not the organization of conversation %s: %w", userID, conversationID, ErrAccessDenied)
		}
	default:
		return nil, nil, fmt.Errorf("role %q cannot view conversations: %w", role, ErrAccessDenied)
	}

	flipped := 0
	for i := range conversation.Messages {
		message := &conversation.Messages[i]
		if message.SenderID != userID && !message.Read {
			message.Read = true
			flipped++
		}
	}

	if flipped > 0 {
		conversation.UpdatedAt = time.Now()
		if conversation.LastMessage != nil {
			// keep the denormalized pointer in sync with the flipped flag
			last := conversation.Messages[len(conversation.Messages)-1]
			conversation.LastMessage = &last
		}
		if err := s.repo.SaveAllConversations(ctx, conversations); err != nil {
			return nil, nil, fmt.Errorf("failed to persist read flags: %v", err)
		}
		logrus.WithFields(logrus.Fields{
			"conversation_id": conversationID,
			"user_id":         userID,
			"flipped":         flipped,
		}).Info("Messages marked as read")
	}

	messages := make([]models.Message, len(conversation.Messages))
	copy(messages, conversation.Messages)
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})

	return conversation, messages, nil
}

// SendMessage appends a message to a conversation. The sender must be one of
// the two participants. Empty text is a silent no-op, not an error. The other
// participant gets a best-effort notification; a failure there never fails
// the send.
func (s *MessagingService) SendMessage(ctx context.Context, conversationID, senderID, text string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	conversations, err := s.repo.GetAllConversations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversations: %v", err)
	}

	index := -1
	for i := range conversations {
		if conversations[i].ID == conversationID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, fmt.Errorf("conversation %s: %w", conversationID, ErrNotFound)
	}

	conversation := &conversations[index]
	if !conversation.HasParticipant(senderID) {
		return nil, fmt.Errorf("user %s is not a participant of conversation %s: %w", senderID, conversationID, ErrAccessDenied)
	}

	now := time.Now()
	message := models.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           text,
		Timestamp:      now,
		Read:           false,
	}
	conversation.Messages = append(conversation.Messages, message)
	conversation.LastMessage = &message
	conversation.UpdatedAt = now

	if err := s.repo.SaveAllConversations(ctx, conversations); err != nil {
		return nil, fmt.Errorf("failed to save message: %v", err)
	}

	recipient := conversation.VolunteerID
	if senderID == conversation.VolunteerID {
		recipient = conversation.OrganizationID
	}
	if s.NotificationService != nil {
		_, err := s.NotificationService.Create(ctx, recipient,
			fmt.Sprintf("New message about \"%s\"", conversation.OpportunityTitle),
			"/conversations/"+conversationID)
		if err != nil {
			logrus.WithError(err).Warn("Failed to notify message recipient")
		}
	}

	logrus.WithFields(logrus.Fields{
		"conversation_id": conversationID,
		"sender_id":       senderID,
	}).Info("Message sent")

	return &message, nil
}
