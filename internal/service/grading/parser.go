package service

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/model"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/repository/keyed"
)

const studentFields = 3

// ParseStudents reads "id,name,score" records and stops at the first bad line.
// Blank lines are skipped; line numbers in errors are 1-based.
func ParseStudents(r io.Reader) ([]model.Student, error) {
	const op = "grading.ParseStudents"

	repo := keyed.New[model.Student]()
	order := make([]model.Student, 0)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		st, err := parseStudent(lineNo, line)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := repo.Add(st); err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", op, lineNo, err)
		}
		order = append(order, st)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: read: %w", op, err)
	}

	return order, nil
}

func parseStudent(lineNo int, line string) (model.Student, error) {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if len(parts) < studentFields {
		return model.Student{}, fmt.Errorf("%w: line %d: expected %d fields (Id, FullName, Score), got %d",
			model.ErrMissingField, lineNo, studentFields, len(parts))
	}

	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return model.Student{}, fmt.Errorf("%w: line %d: invalid id '%s'", model.ErrInvalidFormat, lineNo, parts[0])
	}

	score, err := strconv.Atoi(parts[2])
	if err != nil {
		return model.Student{}, fmt.Errorf("%w: line %d: score '%s' is not an integer", model.ErrInvalidFormat, lineNo, parts[2])
	}

	return model.Student{ID: id, FullName: parts[1], Score: score}, nil
}

// WriteReport writes one line per student in input order.
func WriteReport(w io.Writer, students []model.Student) error {
	bw := bufio.NewWriter(w)
	for _, s := range students {
		if _, err := fmt.Fprintln(bw, s.String()); err != nil {
			return fmt.Errorf("grading.WriteReport: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("grading.WriteReport: %w", err)
	}
	return nil
}
