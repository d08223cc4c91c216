package memory

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

func isolateState(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")
}

func TestLoadMissingFileReturnsEmptyStore(t *testing.T) {
	isolateState(t)

	store, path, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if path == "" {
		t.Fatalf("Load() returned empty path")
	}
	if len(store.Entries) != 0 {
		t.Fatalf("fresh store has %d entries, want 0", len(store.Entries))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	isolateState(t)

	var store Store
	store.Remember("Where is my order?", "Check the tracking link in your email.")
	store.Remember("do you ship to canada", "Yes, within 5 business days.")

	_, path, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := Save(path, store); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat saved store: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("saved store permissions = %v, want 0600", perm)
	}

	loaded, _, err := Load()
	if err != nil {
		t.Fatalf("Load() after save error = %v", err)
	}
	if len(loaded.Entries) != 2 {
		t.Fatalf("loaded %d entries, want 2", len(loaded.Entries))
	}
	answer, ok := loaded.Lookup("where is MY order?")
	if !ok {
		t.Fatalf("Lookup after reload found nothing")
	}
	if answer != "Check the tracking link in your email." {
		t.Fatalf("Lookup answer = %q", answer)
	}
}

func TestLookupNormalizesAndCountsUses(t *testing.T) {
	var store Store
	store.Remember("what helps with jet lag", "Melatonin is a popular choice.")

	answer, ok := store.Lookup("  What   Helps With JET LAG ")
	if !ok {
		t.Fatalf("Lookup missed an equivalent query")
	}
	if answer != "Melatonin is a popular choice." {
		t.Fatalf("Lookup answer = %q", answer)
	}
	if store.Entries[0].Uses != 1 {
		t.Fatalf("Uses = %d after one lookup, want 1", store.Entries[0].Uses)
	}
	if store.Entries[0].LastUsedAt == "" {
		t.Fatalf("LastUsedAt not recorded")
	}

	if _, ok := store.Lookup("what helps with insomnia"); ok {
		t.Fatalf("Lookup matched an unrelated query")
	}
	if store.Entries[0].Uses != 1 {
		t.Fatalf("missed lookup changed Uses to %d", store.Entries[0].Uses)
	}
}

func TestRememberUpdatesExistingEntry(t *testing.T) {
	var store Store
	store.Remember("return policy?", "30 days.")
	store.Remember("  RETURN   policy? ", "30 days with a receipt.")

	if len(store.Entries) != 1 {
		t.Fatalf("got %d entries after an update, want 1", len(store.Entries))
	}
	if store.Entries[0].Answer != "30 days with a receipt." {
		t.Fatalf("updated answer = %q", store.Entries[0].Answer)
	}
}

func TestRememberIgnoresBlankInput(t *testing.T) {
	var store Store
	store.Remember("   ", "something")
	store.Remember("a question", "   ")
	if len(store.Entries) != 0 {
		t.Fatalf("blank input stored %d entries", len(store.Entries))
	}
}

func TestForget(t *testing.T) {
	var store Store
	store.Remember("do you sell gift cards", "Not yet.")

	if !store.Forget("DO you   sell gift cards") {
		t.Fatalf("Forget missed an equivalent query")
	}
	if len(store.Entries) != 0 {
		t.Fatalf("entry survived Forget")
	}
	if store.Forget("do you sell gift cards") {
		t.Fatalf("Forget reported success on an empty store")
	}
}

func TestNormalizeDropsDuplicatesAndCaps(t *testing.T) {
	var store Store
	for i := 0; i < maxEntries+20; i++ {
		store.Entries = append(store.Entries, Entry{
			Query:  fmt.Sprintf("question %d", i),
			Answer: "answer",
			Uses:   i,
		})
	}
	store.Entries = append(store.Entries,
		Entry{Query: "  Question 0 ", Answer: "duplicate"},
		Entry{Query: "negative", Answer: "answer", Uses: -3},
		Entry{Query: "", Answer: "orphan"},
	)
	store.normalize()

	if len(store.Entries) != maxEntries {
		t.Fatalf("got %d entries after normalize, want %d", len(store.Entries), maxEntries)
	}
	// Highest use counts survive the cap, in descending order.
	if store.Entries[0].Uses < store.Entries[len(store.Entries)-1].Uses {
		t.Fatalf("entries not ordered by use count")
	}
	for _, entry := range store.Entries {
		if entry.Uses < 0 {
			t.Fatalf("negative use count survived: %+v", entry)
		}
		if strings.TrimSpace(entry.Query) == "" {
			t.Fatalf("blank query survived normalize")
		}
	}
}
