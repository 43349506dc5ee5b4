package service

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/model"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/repository/keyed"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/transport/console"
	"github.com/Hughesneal88/dcit318-assignment3-11178252/platform/logger"
)

type service struct {
	patients      *keyed.Repository[model.Patient]
	prescriptions *keyed.Repository[model.Prescription]
	byPatient     map[int][]model.Prescription
	out           *console.Printer
	now           func() time.Time
}

func NewHealthService(out *console.Printer) *service {
	return &service{
		patients:      keyed.New[model.Patient](),
		prescriptions: keyed.New[model.Prescription](),
		byPatient:     map[int][]model.Prescription{},
		out:           out,
		now:           time.Now,
	}
}

func (s *service) Patients() *keyed.Repository[model.Patient]           { return s.patients }
func (s *service) Prescriptions() *keyed.Repository[model.Prescription] { return s.prescriptions }

func (s *service) Seed(ctx context.Context) error {
	const op = "healthcare.Seed"

	y, m, d := s.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	patients := []model.Patient{
		{ID: 1, Name: "Alice Smith", Age: 30, Gender: "F"},
		{ID: 2, Name: "John Mensah", Age: 45, Gender: "M"},
		{ID: 3, Name: "Ama Owusu", Age: 22, Gender: "F"},
	}
	prescriptions := []model.Prescription{
		{ID: 101, PatientID: 1, MedicationName: "Amoxicillin 500mg", DateIssued: today.AddDate(0, 0, -10)},
		{ID: 102, PatientID: 1, MedicationName: "Ibuprofen 200mg", DateIssued: today.AddDate(0, 0, -5)},
		{ID: 103, PatientID: 2, MedicationName: "Metformin 500mg", DateIssued: today.AddDate(0, 0, -2)},
		{ID: 104, PatientID: 3, MedicationName: "Cetirizine 10mg", DateIssued: today.AddDate(0, 0, -1)},
		{ID: 105, PatientID: 2, MedicationName: "Lisinopril 10mg", DateIssued: today},
	}

	for _, p := range patients {
		if err := s.patients.Add(p); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	for _, rx := range prescriptions {
		if err := s.prescriptions.Add(rx); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	logger.Info(ctx, "healthcare seeded",
		logger.Int("patients", s.patients.Len()),
		logger.Int("prescriptions", s.prescriptions.Len()),
	)
	return nil
}

// BuildPrescriptionMap regroups the current prescriptions by patient id.
// Within a patient, prescriptions keep ascending id order.
func (s *service) BuildPrescriptionMap() {
	s.byPatient = lo.GroupBy(s.prescriptions.All(), func(rx model.Prescription) int {
		return rx.PatientID
	})
}

// PrescriptionsFor returns a copy of the grouped prescriptions; never nil.
func (s *service) PrescriptionsFor(patientID int) []model.Prescription {
	list, ok := s.byPatient[patientID]
	if !ok {
		return []model.Prescription{}
	}
	return append([]model.Prescription(nil), list...)
}

func (s *service) PrintAllPatients() {
	s.out.Heading("Patients")
	console.List(s.out, s.patients.All(), "No patients.")
}

func (s *service) PrintPrescriptionsFor(patientID int) {
	s.out.Heading(fmt.Sprintf("Prescriptions for Patient %d", patientID))
	console.List(s.out, s.PrescriptionsFor(patientID), "No prescriptions.")
}

func (s *service) Run(ctx context.Context, patientID int) error {
	if err := s.Seed(ctx); err != nil {
		return err
	}
	s.BuildPrescriptionMap()

	s.PrintAllPatients()

	if _, err := s.patients.ByID(patientID); err != nil {
		s.out.Caught(err)
		return nil
	}
	s.PrintPrescriptionsFor(patientID)

	return nil
}
