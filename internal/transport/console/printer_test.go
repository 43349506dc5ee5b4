package console

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/model"
)

func TestPrinter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Heading("Patients")
	List(p, []model.Patient{{ID: 1, Name: "Alice Smith", Age: 30, Gender: "F"}}, "No patients.")
	List(p, []model.Prescription{}, "No prescriptions.")
	p.OK("Removed item #%d", 3)
	p.Caught(fmt.Errorf("op: %w: item with id 999 not found", model.ErrNotFound))
	p.Caught(nil)

	want := "\n== Patients ==\n" +
		"Patient #1: Alice Smith, 30, F\n" +
		"No prescriptions.\n" +
		"[OK] Removed item #3\n" +
		"[Not Found] op: not found: item with id 999 not found\n"
	assert.Equal(t, want, buf.String())
}
