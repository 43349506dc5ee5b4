package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want ErrorKind
		text string
	}{
		{"nil", nil, KindUnknown, "Error"},
		{"plain", errors.New("x"), KindUnknown, "Error"},
		{"duplicate", fmt.Errorf("%w: item 1", ErrDuplicateKey), KindDuplicateKey, "Duplicate"},
		{"wrapped twice", fmt.Errorf("op: %w", fmt.Errorf("%w: 9", ErrNotFound)), KindNotFound, "Not Found"},
		{"invalid argument", ErrInvalidArgument, KindInvalidArgument, "Invalid Argument"},
		{"missing field", ErrMissingField, KindMissingField, "Missing Field"},
		{"invalid format", ErrInvalidFormat, KindInvalidFormat, "Invalid Format"},
		{"persistence", fmt.Errorf("%w: %w", ErrPersistence, errors.New("eof")), KindPersistence, "Persistence"},
		{"persistence wrapping duplicate", fmt.Errorf("load: %w: %w", ErrPersistence, fmt.Errorf("%w: id 2", ErrDuplicateKey)), KindPersistence, "Persistence"},
		{"funds", ErrInsufficientFunds, KindInsufficientFunds, "Insufficient Funds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := KindOf(tt.err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, got.String())
		})
	}
}

func TestGradeFor(t *testing.T) {
	t.Parallel()

	cases := map[int]Grade{
		100: GradeA, 80: GradeA,
		79: GradeB, 70: GradeB,
		69: GradeC, 60: GradeC,
		59: GradeD, 50: GradeD,
		49: GradeF, 0: GradeF, -3: GradeF,
	}
	for score, want := range cases {
		assert.Equal(t, want, GradeFor(score), "score %d", score)
	}
}

func TestFormatCents(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$0.00", FormatCents(0))
	assert.Equal(t, "$120.00", FormatCents(12000))
	assert.Equal(t, "$7.05", FormatCents(705))
	assert.Equal(t, "-$120.50", FormatCents(-12050))
}

func TestStringers(t *testing.T) {
	t.Parallel()

	s := Student{ID: 104, FullName: "Kofi Asare", Score: 47}
	assert.Equal(t, "Kofi Asare (ID: 104): Score = 47, Grade = F", s.String())

	e := ElectronicItem{ID: 1, Name: "Laptop", Quantity: 10, Brand: "Dell", WarrantyMonths: 24}
	assert.Equal(t, "Electronics #1: Laptop (Dell), Qty=10, Warranty=24m", e.String())

	p := Patient{ID: 2, Name: "John Mensah", Age: 45, Gender: "M"}
	assert.Equal(t, "Patient #2: John Mensah, 45, M", p.String())
}
