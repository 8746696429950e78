// Package conversation persists chat history per user: conversations and
// their messages, with free-tier limits on both.
package conversation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/umaryunusa/wazobia/pkg/uuid"
)

// Free-tier limits.
const (
	MaxConversations           = 5
	MaxMessagesPerConversation = 10
)

// ErrConversationLimit is returned by Create when the user already has
// MaxConversations conversations.
var ErrConversationLimit = errors.New("conversation limit reached")

// ErrNotFound is returned when a conversation does not exist or belongs to
// another user. One error for both cases, so ids cannot be probed.
var ErrNotFound = errors.New("conversation not found")

// Conversation is one chat thread.
type Conversation struct {
	ID           string `json:"id"`
	UserID       string `json:"-"`
	Title        string `json:"title"`
	MessageCount int    `json:"message_count"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// Message is one stored chat turn half (user or assistant).
type Message struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Language  string `json:"language,omitempty"`
	Intent    string `json:"intent,omitempty"`
	CreatedAt string `json:"created_at"`
}

// UserStats summarises a user's usage against the free-tier limits.
type UserStats struct {
	ConversationCount          int  `json:"conversation_count"`
	MessageCount               int  `json:"message_count"`
	MaxConversations           int  `json:"max_conversations"`
	MaxMessagesPerConversation int  `json:"max_messages_per_conversation"`
	CanCreateConversation      bool `json:"can_create_conversation"`
}

// Service implements conversation CRUD over SQLite.
type Service struct {
	db *sql.DB
}

// NewService creates a Service backed by the given DB.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Create starts a new conversation for a user, enforcing MaxConversations.
func (s *Service) Create(ctx context.Context, userID, title string) (*Conversation, error) {
	var count int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM conversations WHERE user_id = ?", userID,
	).Scan(&count); err != nil {
		return nil, fmt.Errorf("count conversations: %w", err)
	}
	if count >= MaxConversations {
		return nil, ErrConversationLimit
	}

	c := &Conversation{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		CreatedAt: nowString(),
	}
	c.UpdatedAt = c.CreatedAt

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversations (id, user_id, title, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, c.ID, c.UserID, c.Title, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	return c, nil
}

// ListByUser returns a user's conversations, most recently updated first,
// each with its message count.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]Conversation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.user_id, c.title, c.created_at, c.updated_at, COUNT(m.id)
		FROM conversations c
		LEFT JOIN messages m ON m.conversation_id = c.id
		WHERE c.user_id = ?
		GROUP BY c.id
		ORDER BY c.updated_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []Conversation
	for rows.Next() {
		var c Conversation
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.CreatedAt, &c.UpdatedAt, &c.MessageCount); err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Get loads one conversation, scoped to its owner.
func (s *Service) Get(ctx context.Context, conversationID, userID string) (*Conversation, error) {
	var c Conversation
	err := s.db.QueryRowContext(ctx, `
		SELECT c.id, c.user_id, c.title, c.created_at, c.updated_at,
		       (SELECT COUNT(*) FROM messages WHERE conversation_id = c.id)
		FROM conversations c
		WHERE c.id = ? AND c.user_id = ?
	`, conversationID, userID).Scan(&c.ID, &c.UserID, &c.Title, &c.CreatedAt, &c.UpdatedAt, &c.MessageCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return &c, nil
}

// AddMessage appends a message and bumps the conversation's updated_at.
func (s *Service) AddMessage(ctx context.Context, conversationID, role, content, language, intent string) (*Message, error) {
	m := &Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Language:  language,
		Intent:    intent,
		CreatedAt: nowString(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT INTO messages (id, conversation_id, role, content, language, intent, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, m.ID, conversationID, m.Role, m.Content, nullable(m.Language), nullable(m.Intent), m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE conversations SET updated_at = ? WHERE id = ?", m.CreatedAt, conversationID,
	); err != nil {
		return nil, fmt.Errorf("touch conversation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return m, nil
}

// Messages returns all messages of a conversation in chronological order,
// scoped to the owner.
func (s *Service) Messages(ctx context.Context, conversationID, userID string) ([]Message, error) {
	if _, err := s.Get(ctx, conversationID, userID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, role, content, COALESCE(language, ''), COALESCE(intent, ''), created_at
		FROM messages
		WHERE conversation_id = ?
		ORDER BY created_at ASC, id ASC
	`, conversationID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Role, &m.Content, &m.Language, &m.Intent, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Stats reports a user's usage against the free-tier limits.
func (s *Service) Stats(ctx context.Context, userID string) (*UserStats, error) {
	st := &UserStats{
		MaxConversations:           MaxConversations,
		MaxMessagesPerConversation: MaxMessagesPerConversation,
	}

	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM conversations WHERE user_id = ?", userID,
	).Scan(&st.ConversationCount); err != nil {
		return nil, fmt.Errorf("count conversations: %w", err)
	}

	if err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM messages m
		JOIN conversations c ON m.conversation_id = c.id
		WHERE c.user_id = ?
	`, userID).Scan(&st.MessageCount); err != nil {
		return nil, fmt.Errorf("count messages: %w", err)
	}

	st.CanCreateConversation = st.ConversationCount < MaxConversations
	return st, nil
}

func nowString() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// nullable maps "" to NULL so optional columns stay queryable with IS NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
