package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryStorePutGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	t.Run("absent user", func(t *testing.T) {
		entry, err := store.Get(ctx, "nobody")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if entry != nil {
			t.Errorf("Get() = %+v, want nil for absent user", entry)
		}
	})

	t.Run("put then get", func(t *testing.T) {
		if err := store.Put(ctx, "user1", "token-a"); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		entry, err := store.Get(ctx, "user1")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if entry == nil || entry.Token != "token-a" || entry.UserID != "user1" {
			t.Errorf("Get() = %+v, want user1/token-a", entry)
		}
	})

	t.Run("put replaces prior entry", func(t *testing.T) {
		if err := store.Put(ctx, "user1", "token-b"); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		entry, err := store.Get(ctx, "user1")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if entry == nil || entry.Token != "token-b" {
			t.Errorf("Get() = %+v, want replaced token-b", entry)
		}
		if store.Len() != 1 {
			t.Errorf("Len() = %d, want 1 entry per user", store.Len())
		}
	})
}

func TestMemoryStoreConcurrent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Put(ctx, "shared", fmt.Sprintf("token-%d", n))
		}(i)
		go func(n int) {
			defer wg.Done()
			userID := fmt.Sprintf("user-%d", n)
			_ = store.Put(ctx, userID, "t")
			if _, err := store.Get(ctx, userID); err != nil {
				t.Errorf("Get() error = %v", err)
			}
		}(i)
	}
	wg.Wait()

	// The shared entry must be one of the written tokens, never a mix
	entry, err := store.Get(ctx, "shared")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if entry == nil {
		t.Fatal("Get() returned nil after concurrent writes")
	}
	var found bool
	for i := 0; i < 50; i++ {
		if entry.Token == fmt.Sprintf("token-%d", i) {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Get() token = %q, not one of the written values", entry.Token)
	}
}
