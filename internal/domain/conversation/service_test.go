package conversation

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/umaryunusa/wazobia/internal/infra/eventbus"
	"github.com/umaryunusa/wazobia/internal/infra/sqlite"
	"github.com/umaryunusa/wazobia/pkg/uuid"
)

func newTestService(t *testing.T) (*Service, *sql.DB) {
	t.Helper()
	db, err := sqlite.NewDB(":memory:")
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := sqlite.MigrateUp(db); err != nil {
		t.Fatalf("MigrateUp failed: %v", err)
	}
	return NewService(db), db
}

func insertUser(t *testing.T, db *sql.DB) string {
	t.Helper()
	id := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO users (id, email, username, password_hash, created_at)
		VALUES (?, ?, ?, 'x', ?)
	`, id, id+"@example.com", id, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
	return id
}

func TestCreateAndGet(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	userID := insertUser(t, db)

	created, err := svc.Create(ctx, userID, "Lagos questions")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := svc.Get(ctx, created.ID, userID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "Lagos questions" || got.MessageCount != 0 {
		t.Errorf("conversation = %+v", got)
	}

	// Another user must not see it.
	otherID := insertUser(t, db)
	if _, err := svc.Get(ctx, created.ID, otherID); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-user Get err = %v, want ErrNotFound", err)
	}
}

func TestCreate_LimitEnforced(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	userID := insertUser(t, db)

	for i := 0; i < MaxConversations; i++ {
		if _, err := svc.Create(ctx, userID, "t"); err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
	}
	if _, err := svc.Create(ctx, userID, "over"); !errors.Is(err, ErrConversationLimit) {
		t.Errorf("err = %v, want ErrConversationLimit", err)
	}
}

func TestAddMessageAndList(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	userID := insertUser(t, db)

	c, err := svc.Create(ctx, userID, "chat")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.AddMessage(ctx, c.ID, "user", "sannu", "ha", "greeting"); err != nil {
		t.Fatalf("AddMessage failed: %v", err)
	}
	if _, err := svc.AddMessage(ctx, c.ID, "assistant", "Sannu! Yaya kuke?", "ha", "greeting"); err != nil {
		t.Fatalf("AddMessage failed: %v", err)
	}

	msgs, err := svc.Messages(ctx, c.ID, userID)
	if err != nil {
		t.Fatalf("Messages failed: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].Role != "user" || msgs[1].Role != "assistant" {
		t.Errorf("message order = %s, %s", msgs[0].Role, msgs[1].Role)
	}
	if msgs[0].Language != "ha" || msgs[0].Intent != "greeting" {
		t.Errorf("message metadata = %+v", msgs[0])
	}

	list, err := svc.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(list) != 1 || list[0].MessageCount != 2 {
		t.Errorf("list = %+v", list)
	}
}

func TestStats(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	userID := insertUser(t, db)

	c, err := svc.Create(ctx, userID, "chat")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.AddMessage(ctx, c.ID, "user", "hello", "en", ""); err != nil {
		t.Fatalf("AddMessage failed: %v", err)
	}

	st, err := svc.Stats(ctx, userID)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if st.ConversationCount != 1 || st.MessageCount != 1 {
		t.Errorf("stats = %+v", st)
	}
	if !st.CanCreateConversation {
		t.Error("expected CanCreateConversation true below the limit")
	}
	if st.MaxConversations != MaxConversations || st.MaxMessagesPerConversation != MaxMessagesPerConversation {
		t.Errorf("limits = %+v", st)
	}
}

func TestRecorder_PersistsTurn(t *testing.T) {
	svc, db := newTestService(t)
	userID := insertUser(t, db)

	bus := eventbus.New()
	recorder := NewRecorder(svc, bus)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go recorder.Run(ctx)

	// Give the recorder a moment to subscribe before publishing.
	time.Sleep(20 * time.Millisecond)

	bus.Publish(TopicConversationTurn, TurnEvent{
		UserID:           userID,
		UserMessage:      "how far",
		AssistantMessage: "I dey o!",
		Language:         "pcm",
		Intent:           "greeting",
	})

	deadline := time.Now().Add(2 * time.Second)
	for {
		list, err := svc.ListByUser(context.Background(), userID)
		if err != nil {
			t.Fatalf("ListByUser failed: %v", err)
		}
		if len(list) == 1 && list[0].MessageCount == 2 {
			if list[0].Title != "New Conversation" {
				t.Errorf("auto-created title = %q", list[0].Title)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("turn not persisted, conversations: %+v", list)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
