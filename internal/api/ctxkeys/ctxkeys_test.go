package ctxkeys

import (
	"context"
	"testing"
)

func TestWithValue_RoundTrip(t *testing.T) {
	ctx := WithValue(context.Background(), UserID, "user-1")
	ctx = WithValue(ctx, Username, "ada")

	if got, _ := ctx.Value(UserID).(string); got != "user-1" {
		t.Errorf("UserID = %q; want user-1", got)
	}
	if got, _ := ctx.Value(Username).(string); got != "ada" {
		t.Errorf("Username = %q; want ada", got)
	}
}

func TestKey_DoesNotCollideWithStringKeys(t *testing.T) {
	ctx := WithValue(context.Background(), UserID, "user-1")

	// A plain string of the same text must not read the typed key's value.
	if v := ctx.Value("user_id"); v != nil {
		t.Errorf("plain string key read %v; want nil", v)
	}
}
