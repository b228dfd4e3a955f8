package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	t.Run("should be named tokentally", func(t *testing.T) {
		cmd := NewRootCmd()

		if !strings.HasPrefix(cmd.Use, "tokentally") {
			t.Errorf("Expected command name to start with 'tokentally', got %s", cmd.Use)
		}
	})

	t.Run("should expose the model flag with its default", func(t *testing.T) {
		cmd := NewRootCmd()

		flag := cmd.Flags().Lookup("model")
		if flag == nil {
			t.Fatal("Expected --model flag to exist")
		}
		if flag.DefValue != "gemini-2.0-flash-001" {
			t.Errorf("Expected default model gemini-2.0-flash-001, got %s", flag.DefValue)
		}
	})

	t.Run("should default epochs to 3", func(t *testing.T) {
		cmd := NewRootCmd()

		flag := cmd.Flags().Lookup("epochs")
		if flag == nil {
			t.Fatal("Expected --epochs flag to exist")
		}
		if flag.DefValue != "3" {
			t.Errorf("Expected default epochs 3, got %s", flag.DefValue)
		}
	})

	t.Run("should reject more than one positional argument", func(t *testing.T) {
		cmd := NewRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"a.jsonl", "b.jsonl"})

		if err := cmd.Execute(); err == nil {
			t.Error("Expected command to return error for two positional arguments")
		}
	})

	t.Run("should fail fast on a missing dataset file", func(t *testing.T) {
		cmd := NewRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.jsonl")})

		err := cmd.Execute()
		if err == nil {
			t.Fatal("Expected command to return error for a missing file")
		}
		if !strings.Contains(err.Error(), "not found") {
			t.Errorf("Expected error message to mention the missing file, got: %s", err)
		}
	})

	t.Run("should return helpful error when GOOGLE_CLOUD_PROJECT not set", func(t *testing.T) {
		// Clear the environment variables for this test
		for _, key := range []string{"GOOGLE_CLOUD_PROJECT", "GOOGLE_CLOUD_LOCATION"} {
			if original := os.Getenv(key); original != "" {
				os.Unsetenv(key)
				defer os.Setenv(key, original)
			}
		}

		dataset := filepath.Join(t.TempDir(), "training.jsonl")
		if err := os.WriteFile(dataset, []byte(`{"contents":[{"parts":[{"text":"hi"}]}]}`+"\n"), 0644); err != nil {
			t.Fatal(err)
		}

		cmd := NewRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{dataset})

		err := cmd.Execute()
		if err == nil {
			t.Fatal("Expected command to return error when GOOGLE_CLOUD_PROJECT not set")
		}

		errorMsg := err.Error()
		if !strings.Contains(errorMsg, "GOOGLE_CLOUD_PROJECT") {
			t.Errorf("Expected error message to mention GOOGLE_CLOUD_PROJECT, got: %s", errorMsg)
		}
		if !strings.Contains(errorMsg, "export GOOGLE_CLOUD_PROJECT") {
			t.Errorf("Expected error message to include setup instructions, got: %s", errorMsg)
		}
	})
}

func TestResolveDatasetPath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no argument", args: nil, want: defaultDatasetPath},
		{name: "empty argument", args: []string{""}, want: defaultDatasetPath},
		{name: "whitespace argument", args: []string{"   "}, want: defaultDatasetPath},
		{name: "explicit path", args: []string{"other/data.jsonl"}, want: "other/data.jsonl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveDatasetPath(tt.args); got != tt.want {
				t.Errorf("resolveDatasetPath(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
