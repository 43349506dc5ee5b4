package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/model"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/transport/console"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/platform/logger"
)

// ErrInputNotFound marks a missing input file, as opposed to any other
// missing path such as the report directory.
var ErrInputNotFound = errors.New("input file not found")

var demoInput = []string{
	"101,Alice Smith,84",
	"102,John Mensah,73",
	"103,Ama Owusu,58",
	"104,Kofi Asare,47",
}

type service struct {
	inputPath  string
	reportPath string
	out        *console.Printer
}

func NewGradingService(inputPath, reportPath string, out *console.Printer) *service {
	return &service{inputPath: inputPath, reportPath: reportPath, out: out}
}

// Process reads input (the configured default when empty) and writes the
// report. The default input is created with demo data if it does not exist.
func (s *service) Process(ctx context.Context, input string) ([]model.Student, error) {
	const op = "grading.Process"

	if input == "" {
		input = s.inputPath
		created, err := ensureDemoInput(input)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if created {
			s.out.Line("[Demo] Created sample input at '%s'.", input)
		}
	}

	log := logger.With(logger.String("input", input), logger.String("report", s.reportPath))

	f, err := os.Open(input)
	if err != nil {
		log.Error(ctx, "open input", logger.ErrorF(err))
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w: %w", op, ErrInputNotFound, err)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	students, err := ParseStudents(f)
	if err != nil {
		log.Error(ctx, "parse input", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := writeReportFile(s.reportPath, students); err != nil {
		log.Error(ctx, "write report", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w: write report: %w", op, model.ErrPersistence, err)
	}

	log.Info(ctx, "report written", logger.Int("students", len(students)))
	return students, nil
}

func (s *service) Run(ctx context.Context, input string) error {
	_, err := s.Process(ctx, input)
	switch {
	case err == nil:
		s.out.Line("Report written to '%s'.", s.reportPath)
	case errors.Is(err, ErrInputNotFound):
		s.out.Line("Input file '%s' not found.", input)
	default:
		s.out.Caught(err)
	}
	return err
}

func ensureDemoInput(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, err
		}
	}
	if err := os.WriteFile(path, []byte(strings.Join(demoInput, "\n")+"\n"), 0o644); err != nil {
		return false, err
	}
	return true, nil
}

func writeReportFile(path string, students []model.Student) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteReport(f, students); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
