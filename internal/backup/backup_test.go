package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/habitlog/internal/constants"
	"github.com/julianstephens/habitlog/internal/models"
	"github.com/julianstephens/habitlog/internal/storage/sqlite"
)

// setupTestDB creates a habitlog database holding the given habit names.
func setupTestDB(t *testing.T, habits ...string) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "habitlog.db")
	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init database: %v", err)
	}
	defer store.Close()
	for i, name := range habits {
		if _, err := store.InsertEntry(models.HabitEntry{HabitName: name, Date: "2025-01-01", Timestamp: int64(i)}); err != nil {
			t.Fatalf("failed to insert entry: %v", err)
		}
	}
	return dbPath
}

func countEntries(t *testing.T, dbPath string) int {
	t.Helper()
	store := sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load %s: %v", dbPath, err)
	}
	defer store.Close()
	entries, err := store.GetAllEntries()
	if err != nil {
		t.Fatalf("failed to read entries: %v", err)
	}
	return len(entries)
}

// steppingClock advances by step on every call.
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		t := next
		next = next.Add(step)
		return t
	}
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t, "Run", "Read")

	mgr := NewManager(dbPath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if filepath.Dir(backupPath) != mgr.GetBackupDir() {
		t.Errorf("backup written to %s, want dir %s", backupPath, mgr.GetBackupDir())
	}
	if !strings.HasPrefix(filepath.Base(backupPath), constants.BackupFilePrefix) {
		t.Errorf("unexpected backup name %s", filepath.Base(backupPath))
	}
	if got := countEntries(t, backupPath); got != 2 {
		t.Errorf("expected 2 entries in backup, got %d", got)
	}
}

func TestBackupRotation(t *testing.T) {
	dbPath := setupTestDB(t, "Run")

	mgr := NewManager(dbPath)
	mgr.now = steppingClock(time.Date(2025, 1, 1, 8, 0, 0, 0, time.Local), time.Hour)

	for i := 0; i < constants.MaxBackups+5; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Fatalf("expected %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}

	for i := 1; i < len(backups); i++ {
		if !backups[i].Timestamp.Before(backups[i-1].Timestamp) {
			t.Errorf("backups not sorted newest first at %d", i)
		}
	}

	// the oldest five were pruned
	oldestKept := time.Date(2025, 1, 1, 13, 0, 0, 0, time.Local)
	if !backups[len(backups)-1].Timestamp.Equal(oldestKept) {
		t.Errorf("oldest kept backup = %v, want %v", backups[len(backups)-1].Timestamp, oldestKept)
	}
}

func TestUniqueBackupFilenames(t *testing.T) {
	dbPath := setupTestDB(t, "Run")

	mgr := NewManager(dbPath)
	fixed := time.Date(2025, 1, 1, 8, 0, 30, 0, time.Local)
	mgr.now = func() time.Time { return fixed }

	seen := map[string]bool{}
	for i := 0; i < 4; i++ {
		path, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		if seen[path] {
			t.Fatalf("duplicate backup path %s", path)
		}
		seen[path] = true
	}

	want := []string{
		"habitlog-20250101-0800.db",
		"habitlog-20250101-080030.db",
		"habitlog-20250101-080030-1.db",
		"habitlog-20250101-080030-2.db",
	}
	for _, name := range want {
		if !seen[filepath.Join(mgr.GetBackupDir(), name)] {
			t.Errorf("expected backup %s to exist", name)
		}
	}
}

func TestListBackups(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"notes.txt", "habitlog-garbage.db", "other-20250101-0800.db"} {
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, unrelated files ignored; got %d", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("expected backup size to be reported")
	}
}

func TestParseBackupName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
		want time.Time
	}{
		{"habitlog-20250102-1530.db", true, time.Date(2025, 1, 2, 15, 30, 0, 0, time.Local)},
		{"habitlog-20250102-153045.db", true, time.Date(2025, 1, 2, 15, 30, 45, 0, time.Local)},
		{"habitlog-20250102-153045-3.db", true, time.Date(2025, 1, 2, 15, 30, 45, 0, time.Local)},
		{"habitlog-2025.db", false, time.Time{}},
		{"otherapp-20250102-1530.db", false, time.Time{}},
	}

	for _, tt := range tests {
		got, ok := parseBackupName(tt.name)
		if ok != tt.ok || !got.Equal(tt.want) {
			t.Errorf("parseBackupName(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t, "Run", "Read")
	mgr := NewManager(dbPath)
	mgr.now = steppingClock(time.Date(2025, 1, 1, 8, 0, 0, 0, time.Local), time.Minute)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// "Clear All Data" after the backup
	store := sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := store.DeleteAllEntries(); err != nil {
		t.Fatalf("DeleteAllEntries failed: %v", err)
	}
	store.Close()

	preRestore, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	if preRestore == "" {
		t.Fatal("expected a pre-restore backup of the current database")
	}

	if got := countEntries(t, dbPath); got != 2 {
		t.Errorf("expected 2 entries after restore, got %d", got)
	}
	if got := countEntries(t, preRestore); got != 0 {
		t.Errorf("pre-restore backup should hold the cleared database, got %d entries", got)
	}
	if _, err := os.Stat(dbPath + ".restore.tmp"); !os.IsNotExist(err) {
		t.Error("temporary restore file left behind")
	}
}

func TestRestoreRejectsInvalidBackups(t *testing.T) {
	dbPath := setupTestDB(t, "Run")
	mgr := NewManager(dbPath)

	if _, err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Error("expected error for missing backup")
	}

	corrupt := filepath.Join(t.TempDir(), "habitlog-20250101-0800.db")
	if err := os.WriteFile(corrupt, []byte("this is not a sqlite database, just some text padding it out"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.RestoreBackup(corrupt); err == nil {
		t.Error("expected error for corrupted backup")
	}

	if got := countEntries(t, dbPath); got != 1 {
		t.Errorf("database should be untouched after failed restore, got %d entries", got)
	}
}

func TestBackupWithNoDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error when database does not exist")
	}
}
