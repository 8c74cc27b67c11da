package e2e_test

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/playerroster/internal/api"
	"github.com/mcoot/playerroster/internal/factory"
	"github.com/mcoot/playerroster/internal/testutil"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "roster-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/roster")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T, cfg factory.Config) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	app, err := factory.New(cfg)
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:        testutil.NopLogger(),
		PlayerService: app.PlayerService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
			_ = app.Close()
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type playerResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Title          string `json:"title"`
	Race           string `json:"race"`
	Profession     string `json:"profession"`
	Birthday       int64  `json:"birthday"`
	Banned         bool   `json:"banned"`
	Experience     int    `json:"experience"`
	Level          int    `json:"level"`
	UntilNextLevel int    `json:"untilNextLevel"`
}

type countResponse struct {
	Count int `json:"count"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t, factory.Config{})
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_PlayerLifecycle(t *testing.T) {
	for _, storageCfg := range []factory.Config{
		{StorageType: factory.StorageTypeMemory},
		{StorageType: factory.StorageTypeSQLite, SQLitePath: filepath.Join(t.TempDir(), "roster.db")},
	} {
		t.Run(storageCfg.StorageType, func(t *testing.T) {
			ts := startTestServer(t, storageCfg)
			defer ts.shutdown()

			cli := newCLIRunner(t, ts.addr)

			// Create
			output, err := cli.run("player", "create",
				"--name", "Ann", "--title", "Lady", "--race", "HUMAN", "--profession", "WARRIOR",
				"--birthday", "2050-01-01", "--experience", "0")
			require.NoError(t, err, "output: %s", output)

			var created playerResponse
			require.NoError(t, json.Unmarshal([]byte(output), &created))
			assert.Equal(t, int64(1), created.ID)
			assert.Equal(t, 0, created.Level)
			assert.Equal(t, 100, created.UntilNextLevel)
			assert.False(t, created.Banned)

			// Update experience
			output, err = cli.run("player", "update", "1", "--experience", "100")
			require.NoError(t, err, "output: %s", output)

			var updated playerResponse
			require.NoError(t, json.Unmarshal([]byte(output), &updated))
			assert.Equal(t, 1, updated.Level)
			assert.Equal(t, 200, updated.UntilNextLevel)

			// Invalid update is rejected
			output, err = cli.run("player", "update", "1", "--title", "This title is far too long to be valid")
			require.Error(t, err)
			assert.Contains(t, output, "INVALID_PLAYER")

			// Get
			output, err = cli.run("player", "get", "1")
			require.NoError(t, err, "output: %s", output)

			var got playerResponse
			require.NoError(t, json.Unmarshal([]byte(output), &got))
			assert.Equal(t, updated, got)

			// List and count
			output, err = cli.run("player", "list", "--race", "HUMAN")
			require.NoError(t, err, "output: %s", output)

			var listed []playerResponse
			require.NoError(t, json.Unmarshal([]byte(output), &listed))
			assert.Len(t, listed, 1)

			output, err = cli.run("player", "count", "--min-level", "2")
			require.NoError(t, err, "output: %s", output)

			var count countResponse
			require.NoError(t, json.Unmarshal([]byte(output), &count))
			assert.Equal(t, 0, count.Count)

			// Delete
			output, err = cli.run("player", "delete", "1")
			require.NoError(t, err, "output: %s", output)

			var deleted playerResponse
			require.NoError(t, json.Unmarshal([]byte(output), &deleted))
			assert.Equal(t, updated, deleted)

			output, err = cli.run("player", "get", "1")
			require.Error(t, err)
			assert.Contains(t, output, "PLAYER_NOT_FOUND")
		})
	}
}

func TestCLI_BadID(t *testing.T) {
	ts := startTestServer(t, factory.Config{})
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("player", "get", "0")
	require.Error(t, err)
	assert.Contains(t, output, "INVALID_REQUEST")
}
