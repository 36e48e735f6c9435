package cli

import (
	"bytes"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/horizon/internal/config"
	"github.com/alexanderramin/horizon/internal/fixture"
	"github.com/alexanderramin/horizon/internal/service"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// testApp returns an App serving the bundled fixture with defaults, isolated
// from the developer's config and environment.
func testApp(t *testing.T) *App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DBPath = t.TempDir() + "/horizon.db"
	return &App{
		Config:    &cfg,
		Portfolio: service.NewPortfolioService(fixture.Snapshot()),
		Now:       func() time.Time { return testNow },
	}
}

// executeCmd runs the root command with args and returns combined output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}
