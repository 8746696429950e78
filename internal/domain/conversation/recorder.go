package conversation

import (
	"context"
	"log"

	"github.com/umaryunusa/wazobia/internal/infra/eventbus"
)

// TopicConversationTurn is the event bus topic the chat pipeline publishes a
// completed turn to.
const TopicConversationTurn = "conversation.turn"

// TurnEvent is the payload published after each chat exchange for an
// authenticated user.
type TurnEvent struct {
	UserID           string
	UserMessage      string
	AssistantMessage string
	Language         string
	Intent           string
}

// Recorder consumes conversation.turn events and persists both halves of the
// exchange. Persistence failures are logged, never propagated — losing a
// history row must not fail a chat response.
type Recorder struct {
	svc *Service
	bus eventbus.EventBus
}

// NewRecorder creates a Recorder over the given service and bus.
func NewRecorder(svc *Service, bus eventbus.EventBus) *Recorder {
	return &Recorder{svc: svc, bus: bus}
}

// Run subscribes to conversation.turn and processes events until ctx is
// cancelled. Call in a goroutine.
func (r *Recorder) Run(ctx context.Context) {
	events := r.bus.Subscribe(TopicConversationTurn)
	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-events:
			turn, ok := evt.Payload.(TurnEvent)
			if !ok {
				log.Printf("conversation recorder: dropping payload of type %T", evt.Payload)
				continue
			}
			r.record(ctx, turn)
		}
	}
}

// record writes a turn into the user's most recent conversation, creating one
// when the user has none.
func (r *Recorder) record(ctx context.Context, turn TurnEvent) {
	conversations, err := r.svc.ListByUser(ctx, turn.UserID)
	if err != nil {
		log.Printf("conversation recorder: list conversations: %v", err)
		return
	}

	var conversationID string
	if len(conversations) > 0 {
		conversationID = conversations[0].ID
	} else {
		c, err := r.svc.Create(ctx, turn.UserID, "New Conversation")
		if err != nil {
			log.Printf("conversation recorder: create conversation: %v", err)
			return
		}
		conversationID = c.ID
	}

	if _, err := r.svc.AddMessage(ctx, conversationID, "user", turn.UserMessage, turn.Language, turn.Intent); err != nil {
		log.Printf("conversation recorder: save user message: %v", err)
		return
	}
	if _, err := r.svc.AddMessage(ctx, conversationID, "assistant", turn.AssistantMessage, turn.Language, turn.Intent); err != nil {
		log.Printf("conversation recorder: save assistant message: %v", err)
	}
}
