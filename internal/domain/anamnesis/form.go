package anamnesis

import "time"

// Forma normalizada da ficha usada pela camada de UI. Os fatos
// booleanos legados viram respostas tri-state "yes"/"no".

const (
	AnswerYes = "yes"
	AnswerNo  = "no"
)

type Personal struct {
	FullName   string
	BirthDate  string
	Phone      string
	Email      string
	Profession string
}

type Lifestyle struct {
	Smoking          string
	Alcohol          string
	PhysicalActivity string
	SleepQuality     string
	WaterIntake      string
	Diet             string
}

type Health struct {
	Pregnant          string
	UsesMedication    string
	MedicationNotes   string
	Allergies         string
	AllergyNotes      string
	SkinConditions    []string
	MedicalConditions string
}

type Objectives struct {
	MainGoal       string
	TreatmentAreas []string
	Expectations   string
}

type Form struct {
	Personal   Personal
	Lifestyle  Lifestyle
	Health     Health
	Objectives Objectives

	TermsAccepted   bool
	TermsAcceptedAt *time.Time
}
