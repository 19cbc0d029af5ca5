package cache

import (
	"context"
	"testing"
	"time"
)

type entry struct {
	ID     uint     `json:"id"`
	Title  string   `json:"title"`
	Skills []string `json:"skills"`
}

func TestMemorySetGet(t *testing.T) {
	m := NewMemory(0)
	defer m.Close()
	ctx := context.Background()

	in := []entry{{ID: 1, Title: "First", Skills: []string{"go"}}, {ID: 2, Title: "Second"}}
	if err := m.Set(ctx, Key("public", "projects"), in, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	var out []entry
	found, err := m.Get(ctx, Key("public", "projects"), &out)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Fatal("expected cached value")
	}
	if len(out) != 2 || out[0].Title != "First" || out[0].Skills[0] != "go" || out[1].ID != 2 {
		t.Fatalf("unexpected cached value: %+v", out)
	}

	out[0].Title = "changed"
	var again []entry
	if _, err = m.Get(ctx, Key("public", "projects"), &again); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if again[0].Title != "First" {
		t.Fatal("cached value must not be shared with callers")
	}
}

func TestMemoryMiss(t *testing.T) {
	m := NewMemory(0)
	defer m.Close()
	var out entry
	found, err := m.Get(context.Background(), "missing", &out)
	if err != nil || found {
		t.Fatalf("expected miss, got found=%v err=%v", found, err)
	}
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory(0)
	defer m.Close()
	ctx := context.Background()
	if err := m.Set(ctx, "short", entry{ID: 1}, 10*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(50 * time.Millisecond)
	var out entry
	if found, _ := m.Get(ctx, "short", &out); found {
		t.Fatal("expected entry to be expired")
	}
}

func TestMemoryNoExpiry(t *testing.T) {
	m := NewMemory(0)
	defer m.Close()
	ctx := context.Background()
	if err := m.Set(ctx, "forever", entry{ID: 1}, 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	var out entry
	if found, _ := m.Get(ctx, "forever", &out); !found {
		t.Fatal("expected entry without ttl to be stored")
	}
}

func TestMemoryDeleteAndClear(t *testing.T) {
	m := NewMemory(0)
	defer m.Close()
	ctx := context.Background()
	for _, key := range []string{
		Key("public", "projects"), Key("public", "skills"), Key("other", "projects"),
	} {
		if err := m.Set(ctx, key, entry{Title: key}, time.Minute); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	if err := m.Delete(ctx, Key("public", "skills")); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	var out entry
	if found, _ := m.Get(ctx, Key("public", "skills"), &out); found {
		t.Fatal("expected deleted key to be gone")
	}

	if err := m.Clear(ctx, Prefix("public")); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if found, _ := m.Get(ctx, Key("public", "projects"), &out); found {
		t.Fatal("expected cleared key to be gone")
	}
	if found, _ := m.Get(ctx, Key("other", "projects"), &out); !found {
		t.Fatal("expected key outside prefix to survive")
	}
}

func TestMemoryEviction(t *testing.T) {
	m := NewMemory(2)
	defer m.Close()
	ctx := context.Background()
	for _, key := range []string{"a", "b", "c"} {
		if err := m.Set(ctx, key, entry{Title: key}, time.Minute); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}
	var out entry
	if found, _ := m.Get(ctx, "a", &out); found {
		t.Fatal("expected least recently used entry to be evicted")
	}
	if found, _ := m.Get(ctx, "c", &out); !found {
		t.Fatal("expected newest entry to be present")
	}
}

func TestNoop(t *testing.T) {
	var c Cache = Noop{}
	ctx := context.Background()
	if err := c.Set(ctx, "k", entry{ID: 1}, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	var out entry
	if found, err := c.Get(ctx, "k", &out); found || err != nil {
		t.Fatalf("expected miss, got found=%v err=%v", found, err)
	}
}

func TestKey(t *testing.T) {
	if got := Key("public", "projects"); got != "public:projects" {
		t.Fatalf("unexpected key %q", got)
	}
	if got := Prefix("public"); got != "public:" {
		t.Fatalf("unexpected prefix %q", got)
	}
}
