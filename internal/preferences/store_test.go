package preferences_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/flock"

	"itemlists/internal/preferences"
	"itemlists/internal/testsupport"
)

const pattern = "acc_*_preferences.json"

func TestFindMissingDirectory(t *testing.T) {
	loc := preferences.Locator{Dir: filepath.Join(t.TempDir(), "absent"), Pattern: pattern}
	_, err := loc.Find()
	if !errors.Is(err, preferences.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "RuneLite directory not found") {
		t.Fatalf("unexpected message %q", err)
	}
}

func TestFindNoCandidates(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "settings.json"), "{}")
	_, err := preferences.Locator{Dir: dir, Pattern: pattern}.Find()
	if !errors.Is(err, preferences.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "No preference files found in") {
		t.Fatalf("unexpected message %q", err)
	}
}

func TestFindPicksNewest(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	testsupport.WritePreferences(t, dir, "acc_1_preferences.json", "{}", base)
	newest := testsupport.WritePreferences(t, dir, "acc_2_preferences.json", "{}", base.Add(time.Hour))
	testsupport.WritePreferences(t, dir, "acc_3_preferences.json", "{}", base.Add(-time.Hour))
	testsupport.WritePreferences(t, dir, "acc_4_preferences.json.tmp", "{}", base.Add(2*time.Hour))
	if err := os.Mkdir(filepath.Join(dir, "acc_5_preferences.json"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := preferences.Locator{Dir: dir, Pattern: pattern}.Find()
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got != newest {
		t.Fatalf("expected %s, got %s", newest, got)
	}
}

func TestStoreUpdateRewritesNewestFile(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WritePreferences(t, dir, "acc_7_preferences.json",
		`{"whitelistMode": false, "blockedItemIds": [1], "sellOnlyMode": true}`, time.Now())

	store := preferences.NewStore(preferences.Locator{Dir: dir, Pattern: pattern}, nil)
	saved, err := store.Update(context.Background(), func(doc *preferences.Document) error {
		_, err := doc.Toggle(2)
		return err
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if saved != path {
		t.Fatalf("saved to %s, want %s", saved, path)
	}

	doc, err := preferences.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ids, _ := doc.ActiveIDs(); !slices.Equal(ids, []int{1, 2}) {
		t.Fatalf("unexpected ids %v", ids)
	}
	if !doc.Bool(preferences.KeySellOnly) {
		t.Fatal("unknown keys must survive the rewrite")
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestStoreUpdateCallbackErrorSkipsWrite(t *testing.T) {
	dir := t.TempDir()
	body := `{"blockedItemIds": [1]}`
	path := testsupport.WritePreferences(t, dir, "acc_7_preferences.json", body, time.Now())

	store := preferences.NewStore(preferences.Locator{Dir: dir, Pattern: pattern}, nil)
	boom := errors.New("boom")
	if _, err := store.Update(context.Background(), func(*preferences.Document) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected callback error, got %v", err)
	}
	if got := testsupport.ReadFile(t, path); got != body {
		t.Fatalf("file rewritten after failed update: %s", got)
	}
}

func TestStoreUpdateHonoursLock(t *testing.T) {
	dir := t.TempDir()
	testsupport.WritePreferences(t, dir, "acc_7_preferences.json", `{}`, time.Now())

	held := flock.New(filepath.Join(dir, preferences.LockFileName))
	if ok, err := held.TryLock(); err != nil || !ok {
		t.Fatalf("TryLock = %v, %v", ok, err)
	}
	defer held.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	store := preferences.NewStore(preferences.Locator{Dir: dir, Pattern: pattern}, nil)
	_, err := store.Update(ctx, func(*preferences.Document) error {
		t.Fatal("callback must not run while the lock is held")
		return nil
	})
	if err == nil || !strings.Contains(err.Error(), "locked by another process") {
		t.Fatalf("expected lock error, got %v", err)
	}
}

func TestStoreLoadMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	testsupport.WritePreferences(t, dir, "acc_7_preferences.json", `{"whitelistMode": tru`, time.Now())
	store := preferences.NewStore(preferences.Locator{Dir: dir, Pattern: pattern}, nil)
	if _, _, err := store.Load(); err == nil || errors.Is(err, preferences.ErrNotFound) {
		t.Fatalf("expected parse error, got %v", err)
	}
}
