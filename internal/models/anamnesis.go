package models

import "time"

// AnamnesisRecord é a forma de fio da ficha de anamnese. Carrega as duas
// gerações de esquema: os campos tri-state atuais ("yes"/"no") e os
// booleanos legados que fichas antigas ainda trazem. A precedência entre
// eles vive em internal/domain/anamnesis.
type AnamnesisRecord struct {
	ID     uint   `json:"id"`
	UserID string `json:"user_id"`

	// -------- Dados pessoais --------
	FullName   string `json:"full_name"`
	BirthDate  string `json:"birth_date"` // YYYY-MM-DD
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Profession string `json:"profession"`

	// -------- Estilo de vida (esquema atual) --------
	Smoking          string `json:"smoking"`           // "yes" | "no"
	Alcohol          string `json:"alcohol"`           // "yes" | "no"
	PhysicalActivity string `json:"physical_activity"` // "yes" | "no"
	SleepQuality     string `json:"sleep_quality"`
	WaterIntake      string `json:"water_intake"`
	Diet             string `json:"diet"`

	// -------- Estilo de vida (esquema legado) --------
	Smoker        bool `json:"smoker"`
	DrinksAlcohol bool `json:"drinks_alcohol"`
	Exercises     bool `json:"exercises"`

	// -------- Saúde (esquema atual) --------
	Pregnant          string   `json:"pregnant"`        // "yes" | "no"
	UsesMedication    string   `json:"uses_medication"` // "yes" | "no"
	MedicationNotes   string   `json:"medication_notes"`
	Allergies         string   `json:"allergies"` // "yes" | "no"
	AllergyNotes      string   `json:"allergy_notes"`
	SkinConditions    []string `json:"skin_conditions"`
	MedicalConditions string   `json:"medical_conditions"`

	// -------- Saúde (esquema legado) --------
	IsPregnant      bool `json:"is_pregnant"`
	TakesMedication bool `json:"takes_medication"`
	HasAllergies    bool `json:"has_allergies"`

	// -------- Objetivos --------
	MainGoal       string   `json:"main_goal"`
	TreatmentAreas []string `json:"treatment_areas"`
	Expectations   string   `json:"expectations"`

	TermsAccepted   bool       `json:"terms_accepted"`
	TermsAcceptedAt *time.Time `json:"terms_accepted_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
