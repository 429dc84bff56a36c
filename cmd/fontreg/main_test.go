package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{name: "debug", value: "debug", want: slog.LevelDebug},
		{name: "info", value: "info", want: slog.LevelInfo},
		{name: "warn", value: "warn", want: slog.LevelWarn},
		{name: "warning_alias", value: "warning", want: slog.LevelWarn},
		{name: "error", value: "error", want: slog.LevelError},
		{name: "case_insensitive", value: "DEBUG", want: slog.LevelDebug},
		{name: "unset_defaults_to_info", value: "", want: slog.LevelInfo},
		{name: "invalid_falls_back_to_info", value: "loud", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// t.Setenv forbids t.Parallel; the FONTREG prefix is what
			// routes the variable through the viper env binding.
			t.Setenv("FONTREG_LOG_LEVEL", tt.value)
			assert.Equal(t, tt.want, getLogLevel())
		})
	}
}
