package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshepkov/lockbank/internal/client/client"
	"github.com/oshepkov/lockbank/internal/client/config"
	"github.com/oshepkov/lockbank/internal/client/lockstate"
	"github.com/oshepkov/lockbank/internal/client/repositories/credentials"
	"github.com/oshepkov/lockbank/internal/client/services"
	"github.com/oshepkov/lockbank/internal/client/session"
	"github.com/oshepkov/lockbank/internal/filex"
	"github.com/oshepkov/lockbank/internal/logging"
)

// newBankServer simulates the banking service: one known credential pair,
// one session key, a couple of accounts.
func newBankServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["username"] == "jdoe" && req["password"] == "hunter2" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"statusCode":        0,
				"sessionKey":        "sess-test",
				"sessionCreateDate": "2026-08-24 12:00:00",
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"statusCode": 3})
	})
	mux.HandleFunc("/accounts", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("session_key") != "sess-test" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"accountNumber": 1, "accountType": "chequing", "balance": 100.5},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// newTestApp builds an App with in-memory credentials, a REST client bound
// to the test server, and scripted stdin.
func newTestApp(t *testing.T, srv *httptest.Server, script string) (*App, *bytes.Buffer) {
	t.Helper()
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	api := client.NewRESTClient(u.Hostname(), u.Port(), false, &client.Options{
		HTTPClient: srv.Client(),
		Logger:     log,
	})

	creds := credentials.NewInMemoryRepository()
	sess := session.NewManager()
	lock := lockstate.New(20 * time.Millisecond)
	t.Cleanup(lock.Stop)

	statements, err := filex.NewStatementDir(t.TempDir())
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	var out bytes.Buffer
	return &App{
		config: cfg,
		auth:   services.NewAuthService(api, creds, sess, lock, log),
		bank:   services.NewBankService(api, sess, lock, statements, log),
		creds:  creds,
		lock:   lock,
		api:    api,
		log:    log,
		reader: bufio.NewReader(strings.NewReader(script)),
		out:    &out,
	}, &out
}

func stubPasswords(t *testing.T, passwords ...string) {
	t.Helper()
	orig := readPassword
	i := 0
	readPassword = func(fd int) ([]byte, error) {
		pw := passwords[i%len(passwords)]
		i++
		return []byte(pw), nil
	}
	t.Cleanup(func() { readPassword = orig })
}

func TestREPL_UnlockAndListAccounts(t *testing.T) {
	srv := newBankServer(t)

	script := "setpassword\nsetcreds\njdoe\nunlock\naccounts\nexit\n"
	app, out := newTestApp(t, srv, script)
	stubPasswords(t, "local-pass", "hunter2", "local-pass")

	app.Main(context.Background())

	s := out.String()
	assert.Contains(t, s, "Local password set.")
	assert.Contains(t, s, "Service credentials set.")
	assert.Contains(t, s, "Unlocked.")
	assert.Contains(t, s, "chequing #1: 100.50")
	assert.Contains(t, s, "Bye!")
}

func TestREPL_WrongLocalPasswordStaysLocked(t *testing.T) {
	srv := newBankServer(t)

	script := "setpassword\nunlock\nstatus\nexit\n"
	app, out := newTestApp(t, srv, script)
	stubPasswords(t, "local-pass", "wrong-pass", "x")

	app.Main(context.Background())

	s := out.String()
	assert.Contains(t, s, "Unlock failed (status -1).")
	assert.Contains(t, s, "state: [locked]")
}

func TestREPL_BackgroundRelocks(t *testing.T) {
	srv := newBankServer(t)

	script := "fg\nbg\nexit\n"
	app, out := newTestApp(t, srv, script)
	app.lock.Unlock()

	app.Main(context.Background())
	time.Sleep(60 * time.Millisecond)

	assert.True(t, app.lock.IsLocked())
	assert.Contains(t, out.String(), "Bye!")
}

func TestREPL_UnknownCommand(t *testing.T) {
	srv := newBankServer(t)

	app, out := newTestApp(t, srv, "frobnicate\nexit\n")
	app.Main(context.Background())

	assert.Contains(t, out.String(), "Unknown command: frobnicate")
}
