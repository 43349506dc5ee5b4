package model

import "fmt"

type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// GradeFor maps a score to a letter; each threshold is inclusive.
func GradeFor(score int) Grade {
	switch {
	case score >= 80:
		return GradeA
	case score >= 70:
		return GradeB
	case score >= 60:
		return GradeC
	case score >= 50:
		return GradeD
	default:
		return GradeF
	}
}

type Student struct {
	ID       int
	FullName string
	Score    int
}

func (s Student) Key() int     { return s.ID }
func (s Student) Grade() Grade { return GradeFor(s.Score) }

func (s Student) String() string {
	return fmt.Sprintf("%s (ID: %d): Score = %d, Grade = %s", s.FullName, s.ID, s.Score, s.Grade())
}
