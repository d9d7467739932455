package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

// errExitCalled is a sentinel used to catch kong's os.Exit calls in tests.
var errExitCalled = errors.New("exit called")

func newParser(t *testing.T, cli *CLI) *kong.Kong {
	t.Helper()
	k, err := kong.New(cli,
		kong.Name("contactdesk"),
		kong.Vars{"version": "test"},
		kong.Bind(cli),
	)
	if err != nil {
		t.Fatal(err)
	}
	return k
}

func TestCLI_VersionFlag(t *testing.T) {
	// Given: a parser wired with version info and a trapped exit
	var cli CLI
	var buf bytes.Buffer
	k, err := kong.New(&cli,
		kong.Vars{"version": "v1.2.0 abc1234 2026-06-01T00:00:00Z"},
		kong.Writers(&buf, &buf),
		kong.Exit(func(int) { panic(errExitCalled) }),
	)
	if err != nil {
		t.Fatal(err)
	}

	// When: --version is passed
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic from --version flag")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, errExitCalled) {
			panic(r)
		}

		// Then: version, commit, and date all print
		output := buf.String()
		for _, want := range []string{"v1.2.0", "abc1234", "2026-06-01T00:00:00Z"} {
			if !strings.Contains(output, want) {
				t.Errorf("version output = %q, want to contain %q", output, want)
			}
		}
	}()

	k.Parse([]string{"--version"}) //nolint:errcheck // --version triggers panic via Exit hook
}

func TestCLI_NoArgsDefaultsToTui(t *testing.T) {
	// Given: a parser
	var cli CLI
	k := newParser(t, &cli)

	// When: no arguments are provided
	kctx, err := k.Parse([]string{})

	// Then: the default interactive command is selected
	if err != nil {
		t.Fatal(err)
	}
	if kctx.Command() != "tui" {
		t.Errorf("command = %q, want %q", kctx.Command(), "tui")
	}
}

func TestCLI_AddParsesFlags(t *testing.T) {
	var cli CLI
	k := newParser(t, &cli)

	_, err := k.Parse([]string{
		"add",
		"--name", "Alice",
		"--email", "alice@x.com",
		"--phone", "5551234",
		"--message", "hello",
	})
	if err != nil {
		t.Fatal(err)
	}

	if cli.Add.Name != "Alice" || cli.Add.Email != "alice@x.com" || cli.Add.Phone != "5551234" || cli.Add.Message != "hello" {
		t.Errorf("add flags = %+v, want the provided values", cli.Add)
	}
}

func TestCLI_AddRequiresContactFields(t *testing.T) {
	var cli CLI
	k := newParser(t, &cli)

	_, err := k.Parse([]string{"add", "--name", "Alice"})

	if err == nil {
		t.Fatal("add without email and phone should fail to parse")
	}
}

func TestCLI_RmParsesID(t *testing.T) {
	var cli CLI
	k := newParser(t, &cli)

	kctx, err := k.Parse([]string{"rm", "abc-123"})
	if err != nil {
		t.Fatal(err)
	}

	if kctx.Command() != "rm <id>" {
		t.Errorf("command = %q, want %q", kctx.Command(), "rm <id>")
	}
	if cli.Rm.ID != "abc-123" {
		t.Errorf("id = %q, want %q", cli.Rm.ID, "abc-123")
	}
}

func TestCLI_ServerFlagOverridesConfig(t *testing.T) {
	// Given: a server that records the paths it is asked for
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Contact deleted"}`)) //nolint:errcheck
	}))
	defer srv.Close()

	// And: a CLI pointing at a missing config file so defaults apply
	cli := CLI{
		Config: filepath.Join(t.TempDir(), "missing.yaml"),
		Server: srv.URL,
	}
	cli.Rm.ID = "abc-123"

	// When: the rm command runs
	if err := cli.Rm.Run(&cli); err != nil {
		t.Fatalf("rm failed: %v", err)
	}

	// Then: the request went to the overridden server
	if gotPath != "/api/contacts/abc-123" {
		t.Errorf("path = %q, want %q", gotPath, "/api/contacts/abc-123")
	}
}

func TestCLI_ListHitsGateway(t *testing.T) {
	// Given: a server returning two contacts
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/contacts" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"a","name":"Alice","email":"alice@x.com","phone":"5550001","createdAt":"2026-01-02T10:00:00Z"},{"id":"b","name":"Bob","email":"bob@x.com","phone":"5550002","createdAt":"2026-01-01T10:00:00Z"}]`)) //nolint:errcheck
	}))
	defer srv.Close()

	cli := CLI{
		Config: filepath.Join(t.TempDir(), "missing.yaml"),
		Server: srv.URL,
	}

	if err := cli.List.Run(&cli); err != nil {
		t.Fatalf("list failed: %v", err)
	}
}

func TestCLI_AddRejectsInvalidDraftLocally(t *testing.T) {
	// Given: a server that must never be reached
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid draft should not reach the gateway")
	}))
	defer srv.Close()

	cli := CLI{
		Config: filepath.Join(t.TempDir(), "missing.yaml"),
		Server: srv.URL,
	}
	cli.Add.Name = "A"
	cli.Add.Email = "not-an-email"
	cli.Add.Phone = "123"

	// When: the add command runs
	err := cli.Add.Run(&cli)

	// Then: it fails before any request is sent
	if err == nil {
		t.Fatal("invalid draft should fail")
	}
}
