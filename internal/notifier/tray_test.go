package notifier

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/habitlog/internal/constants"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func stubConfigDir(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	old := userConfigDirFunc
	t.Cleanup(func() { userConfigDirFunc = old })
	userConfigDirFunc = func() (string, error) { return tempDir, nil }
	return tempDir
}

func stubProcess(t *testing.T, executable string) {
	t.Helper()
	old := findProcessFunc
	t.Cleanup(func() { findProcessFunc = old })
	findProcessFunc = func(pid int) (ps.Process, error) {
		if executable == "" {
			return nil, nil
		}
		return &mockProcess{pid: pid, executable: executable}, nil
	}
}

func TestGetTrayAppConfigDir(t *testing.T) {
	tempDir := stubConfigDir(t)

	expectedDefault := filepath.Join(tempDir, constants.TrayAppIdentifier)
	dir, err := GetTrayAppConfigDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != expectedDefault {
		t.Errorf("expected %s, got %s", expectedDefault, dir)
	}

	if err := os.MkdirAll(expectedDefault, 0755); err != nil {
		t.Fatal(err)
	}
	customDir := "/custom/habitlog/dir"
	settingsJSON := fmt.Sprintf(`{"settings": {"lockfile_dir": "%s"}}`, customDir)
	if err := os.WriteFile(filepath.Join(expectedDefault, "settings.json"), []byte(settingsJSON), 0644); err != nil {
		t.Fatal(err)
	}

	dir, err = GetTrayAppConfigDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != customDir {
		t.Errorf("expected %s, got %s", customDir, dir)
	}
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	lockfilePath := filepath.Join(t.TempDir(), constants.NotifierLockfileName)

	if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
		t.Error("expected error for missing lockfile")
	}

	tests := []struct {
		name       string
		content    string
		executable string
		wantErr    string
	}{
		{name: "two-part format", content: "8080|12345", wantErr: "malformed"},
		{name: "garbage", content: "invalid", wantErr: "malformed"},
		{name: "empty secret", content: "8080|12345|", wantErr: "secret"},
		{name: "empty port", content: "|12345|s3cret", wantErr: "port"},
		{name: "port out of range", content: "99999|12345|s3cret", wantErr: "range"},
		{name: "bad pid", content: "8080|abc|s3cret", wantErr: "process ID"},
		{name: "process missing", content: "8080|12345|s3cret", executable: "", wantErr: "not running"},
		{name: "wrong executable", content: "8080|12345|s3cret", executable: "other-app", wantErr: "is not"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubProcess(t, tt.executable)
			if err := os.WriteFile(lockfilePath, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, _, err := findAndValidateTrayProcess(lockfilePath)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		stubProcess(t, constants.TrayExecutablePrefix)
		if err := os.WriteFile(lockfilePath, []byte("8080|12345|s3cret\n"), 0644); err != nil {
			t.Fatal(err)
		}
		port, secret, err := findAndValidateTrayProcess(lockfilePath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if port != "8080" || secret != "s3cret" {
			t.Errorf("got port %q secret %q", port, secret)
		}
	})
}

func newWebhookServer(t *testing.T, received *[]WebhookPayload) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("X-Habitlog-Secret") != "test-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Unauthorized"))
			return
		}
		var payload WebhookPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if payload.Text == "fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if received != nil {
			*received = append(*received, payload)
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)
	return server
}

func serverPort(server *httptest.Server) string {
	parts := strings.Split(server.URL, ":")
	return parts[len(parts)-1]
}

func TestSendNotification(t *testing.T) {
	port := serverPort(newWebhookServer(t, nil))
	client := NewTray().client

	if err := sendNotification(client, port, "test-secret", WebhookPayload{Text: "hello"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := sendNotification(client, port, "", WebhookPayload{Text: "hello"}); err == nil {
		t.Error("expected error for missing secret")
	}
	if err := sendNotification(client, port, "wrong-secret", WebhookPayload{Text: "hello"}); err == nil {
		t.Error("expected error for wrong secret")
	}
	if err := sendNotification(client, port, "test-secret", WebhookPayload{Text: "fail"}); err == nil {
		t.Error("expected error for server failure")
	}
}

func TestTrayNotifyEndToEnd(t *testing.T) {
	var received []WebhookPayload
	port := serverPort(newWebhookServer(t, &received))

	configDir := stubConfigDir(t)
	lockDir := filepath.Join(configDir, constants.TrayAppIdentifier)
	if err := os.MkdirAll(lockDir, 0755); err != nil {
		t.Fatal(err)
	}
	lockfile := filepath.Join(lockDir, constants.NotifierLockfileName)
	if err := os.WriteFile(lockfile, []byte(port+"|4242|test-secret"), 0644); err != nil {
		t.Fatal(err)
	}
	stubProcess(t, constants.TrayExecutablePrefix)

	tray := NewTray()
	if err := tray.Notify(PatternSuccess); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	if err := tray.Send("Don't forget to log today's habits"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if len(received) != 2 {
		t.Fatalf("expected 2 webhook calls, got %d", len(received))
	}
	if len(received[0].PatternMs) != 4 {
		t.Errorf("expected pattern timings in payload, got %v", received[0].PatternMs)
	}
	if received[1].Text != "Don't forget to log today's habits" || received[1].PatternMs != nil {
		t.Errorf("unexpected reminder payload: %+v", received[1])
	}
	if received[1].DurationMs != constants.NotificationDurationMs {
		t.Errorf("duration = %d, want %d", received[1].DurationMs, constants.NotificationDurationMs)
	}
}
