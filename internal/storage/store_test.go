package storage_test

import (
	"errors"
	"testing"

	"github.com/edupro/edupro-lms/internal/storage"
)

func TestFSStore_RoundTrip(t *testing.T) {
	st, err := storage.NewFSStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := st.Save("users", []byte(`[{"email":"a@b.c"}]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := st.Load("users")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(raw) != `[{"email":"a@b.c"}]` {
		t.Fatalf("unexpected value: %s", raw)
	}
}

func TestFSStore_MissingKey(t *testing.T) {
	st, err := storage.NewFSStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := st.Load("nope"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadJSON_MissingKeyLeavesDefault(t *testing.T) {
	st := storage.NewInMemoryStore()
	var users []string
	if storage.LoadJSON(st, "users", &users) {
		t.Fatalf("expected false for missing key")
	}
	if users != nil {
		t.Fatalf("value should be untouched, got %v", users)
	}
}

func TestLoadJSON_CorruptValueRecovers(t *testing.T) {
	st := storage.NewInMemoryStore()
	if err := st.Save("users", []byte(`{not json`)); err != nil {
		t.Fatal(err)
	}
	var users []string
	if storage.LoadJSON(st, "users", &users) {
		t.Fatalf("expected false for corrupt value")
	}
	if users != nil {
		t.Fatalf("value should be untouched, got %v", users)
	}
}

func TestSaveJSON_LoadJSON_RoundTrip(t *testing.T) {
	st := storage.NewInMemoryStore()
	in := map[string]int{"a": 1, "b": 2}
	if !storage.SaveJSON(st, "counts", in) {
		t.Fatalf("save failed")
	}
	out := map[string]int{}
	if !storage.LoadJSON(st, "counts", &out) {
		t.Fatalf("load failed")
	}
	if out["a"] != 1 || out["b"] != 2 {
		t.Fatalf("round trip mismatch: %v", out)
	}
}
