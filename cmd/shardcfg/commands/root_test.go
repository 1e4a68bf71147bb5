package commands

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/shardcfg/internal/errors"
	"github.com/thoreinstein/shardcfg/internal/logging"
)

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetState(t)
			t.Setenv("SHARDCFG_DEBUG", "")
			verbosity = tt.verbosity
			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := logging.FromContext(rootCmd.Context())
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if tt.wantLevel > logging.LevelTrace && logger.Enabled(t.Context(), tt.wantLevel-4) {
				t.Errorf("expected level %v to be disabled", tt.wantLevel-4)
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	tests := []struct {
		envVal    string
		wantLevel slog.Level
	}{
		{"1", slog.LevelDebug},
		{"true", slog.LevelDebug},
		{"2", logging.LevelTrace},
		{"0", slog.LevelWarn},
		{"foo", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run("SHARDCFG_DEBUG="+tt.envVal, func(t *testing.T) {
			resetState(t)
			t.Setenv("SHARDCFG_DEBUG", tt.envVal)

			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if logger.Enabled(t.Context(), tt.wantLevel-1) {
				t.Errorf("expected level %v to be disabled", tt.wantLevel-1)
			}
		})
	}
}

func TestSetupLogging_QuietAndVerbose(t *testing.T) {
	resetState(t)
	quiet, verbosity = true, 1

	err := setupLogging(rootCmd)
	if code := errors.FromError(err).Code; code != errors.ExitUser {
		t.Errorf("exit code = %d, want %d (err = %v)", code, errors.ExitUser, err)
	}
}

func TestSetupLogging_BadFormat(t *testing.T) {
	resetState(t)
	logFormat = "xml"

	if err := setupLogging(rootCmd); err == nil {
		t.Error("setupLogging should reject an unknown log format")
	}
}

func TestSetupLogging_LogFile(t *testing.T) {
	resetState(t)
	logFile = filepath.Join(t.TempDir(), "shardcfg.log")

	if err := setupLogging(rootCmd); err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	logging.FromContext(rootCmd.Context()).Debug("to the file only")

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"to the file only"`) {
		t.Errorf("log file = %q", data)
	}
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{"nil", nil, errors.ExitSuccess, ""},
		{"system", errors.New("disk on fire"), errors.ExitSystem, "Error: disk on fire\n"},
		{"hint", errors.WithHint(errors.Wrap(errors.ErrConflict, "save"), "remove it"), errors.ExitUser,
			"Error: save: stored shard config already exists\nHint: remove it\n"},
		{"silent", errors.NewExitError(nil, errors.ExitUser), errors.ExitUser, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if code := PrintError(&buf, tt.err); code != tt.wantCode {
				t.Errorf("PrintError() = %d, want %d", code, tt.wantCode)
			}
			if buf.String() != tt.wantOut {
				t.Errorf("output = %q, want %q", buf.String(), tt.wantOut)
			}
		})
	}
}
