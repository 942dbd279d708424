//go:build pact
// +build pact

package pacttest

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "northwind-api"
	ConsumerName = "clinic-portal"

	StateCredentialsConfigured = "default credentials are configured"
	StateTokenLive             = "token pact-live-token is live"
	StateTokenPoolEmpty        = "no tokens have been issued"
	StatePatientMissing        = "no patient with id 404"
)

const (
	Username = "4dm1n"
	Password = "NotSoSecurePa$$"

	// LiveToken is seeded straight into the token pool by the provider state handler.
	LiveToken    = "14ee21fad3f557bf12cdf0ffc0e1cc1b83558754d039e52d2759fcf9e84fae51"
	// UnknownToken never appears in any pool.
	UnknownToken = "0000000000000000000000000000000000000000000000000000000000000000"

	MissingPatientID int64 = 404

	// TokenPattern matches hex encoded SHA-256 tokens.
	TokenPattern = "^[0-9a-f]{64}$"
)

// BasicAuth renders an Authorization header value for user and password.
func BasicAuth(user, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+password))
}

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the clinic portal consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
