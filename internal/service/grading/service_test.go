package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/model"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/transport/console"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/platform/logger"
)

func TestProcessCreatesDemoInput(t *testing.T) {
	logger.SetNopLogger()

	dir := t.TempDir()
	input := filepath.Join(dir, "students_input.txt")
	report := filepath.Join(dir, "students_report.txt")

	var buf bytes.Buffer
	svc := NewGradingService(input, report, console.NewPrinter(&buf))

	students, err := svc.Process(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, students, 4)
	assert.Contains(t, buf.String(), "[Demo] Created sample input")

	raw, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Equal(t,
		"Alice Smith (ID: 101): Score = 84, Grade = A\n"+
			"John Mensah (ID: 102): Score = 73, Grade = B\n"+
			"Ama Owusu (ID: 103): Score = 58, Grade = D\n"+
			"Kofi Asare (ID: 104): Score = 47, Grade = F\n",
		string(raw))

	// The second run reuses the existing input.
	buf.Reset()
	_, err = svc.Process(context.Background(), "")
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "[Demo]")
}

func TestRun(t *testing.T) {
	logger.SetNopLogger()

	dir := t.TempDir()
	report := filepath.Join(dir, "report.txt")

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1,Ann\n"), 0o644))

	good := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(good, []byte("104,Kofi Asare,47\n"), 0o644))

	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))

	tests := []struct {
		name       string
		input      string
		report     string
		wantErr    error
		wantOut    string
		notWantOut string
	}{
		{
			name:    "missing explicit input",
			input:   filepath.Join(dir, "nope.txt"),
			report:  report,
			wantErr: ErrInputNotFound,
			wantOut: "Input file '" + filepath.Join(dir, "nope.txt") + "' not found.",
		},
		{
			name:    "malformed input",
			input:   bad,
			report:  report,
			wantErr: model.ErrMissingField,
			wantOut: "[Missing Field]",
		},
		{
			name:    "report directory is created",
			input:   good,
			report:  filepath.Join(dir, "out", "students_report.txt"),
			wantOut: "Report written to '" + filepath.Join(dir, "out", "students_report.txt") + "'.",
		},
		{
			name:       "unwritable report is not a missing input",
			input:      good,
			report:     filepath.Join(blocker, "students_report.txt"),
			wantErr:    model.ErrPersistence,
			wantOut:    "[Persistence]",
			notWantOut: "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			svc := NewGradingService(filepath.Join(dir, "default.txt"), tt.report, console.NewPrinter(&buf))

			err := svc.Run(context.Background(), tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Contains(t, buf.String(), tt.wantOut)
			if tt.notWantOut != "" {
				assert.NotContains(t, buf.String(), tt.notWantOut)
			}
		})
	}

	_, err := os.Stat(report)
	assert.ErrorIs(t, err, os.ErrNotExist, "no report is written when parsing fails")
}
