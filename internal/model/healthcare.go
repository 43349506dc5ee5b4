package model

import (
	"fmt"
	"time"
)

// DateLayout is the short date format used in console output.
const DateLayout = "2006-01-02"

type Patient struct {
	ID     int
	Name   string
	Age    int
	Gender string
}

func (p Patient) Key() int { return p.ID }

func (p Patient) String() string {
	return fmt.Sprintf("Patient #%d: %s, %d, %s", p.ID, p.Name, p.Age, p.Gender)
}

type Prescription struct {
	ID             int
	PatientID      int
	MedicationName string
	DateIssued     time.Time
}

func (rx Prescription) Key() int { return rx.ID }

func (rx Prescription) String() string {
	return fmt.Sprintf("Rx #%d for Patient %d: %s on %s",
		rx.ID, rx.PatientID, rx.MedicationName, rx.DateIssued.Format(DateLayout))
}
