package anamnesis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EspacoVida/spa-portal/internal/models"
)

func TestToNormalized_LegacyFallback(t *testing.T) {
	// ficha antiga: só os booleanos legados preenchidos
	rec := &models.AnamnesisRecord{
		Smoker:          true,
		DrinksAlcohol:   false,
		Exercises:       true,
		IsPregnant:      false,
		TakesMedication: true,
		HasAllergies:    false,
	}

	f := ToNormalized(rec)

	assert.Equal(t, AnswerYes, f.Lifestyle.Smoking)
	assert.Equal(t, AnswerNo, f.Lifestyle.Alcohol)
	assert.Equal(t, AnswerYes, f.Lifestyle.PhysicalActivity)
	assert.Equal(t, AnswerNo, f.Health.Pregnant)
	assert.Equal(t, AnswerYes, f.Health.UsesMedication)
	assert.Equal(t, AnswerNo, f.Health.Allergies)
}

func TestToNormalized_CurrentSchemaWinsOverLegacy(t *testing.T) {
	// conflito: campo atual diz "no", legado diz true → atual vence
	rec := &models.AnamnesisRecord{
		Smoking: AnswerNo,
		Smoker:  true,

		Allergies:    AnswerYes,
		HasAllergies: false,
	}

	f := ToNormalized(rec)

	assert.Equal(t, AnswerNo, f.Lifestyle.Smoking)
	assert.Equal(t, AnswerYes, f.Health.Allergies)
}

func TestToNormalized_MissingEverythingDefaultsToNo(t *testing.T) {
	f := ToNormalized(&models.AnamnesisRecord{})

	assert.Equal(t, AnswerNo, f.Lifestyle.Smoking)
	assert.Equal(t, AnswerNo, f.Lifestyle.Alcohol)
	assert.Equal(t, AnswerNo, f.Lifestyle.PhysicalActivity)
	assert.Equal(t, AnswerNo, f.Health.Pregnant)
	assert.Equal(t, AnswerNo, f.Health.UsesMedication)
	assert.Equal(t, AnswerNo, f.Health.Allergies)
}

func TestToNormalized_NilRecordIsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		f := ToNormalized(nil)
		assert.Equal(t, AnswerNo, f.Lifestyle.Smoking)
		assert.False(t, f.TermsAccepted)
	})
}

func TestToWire_DefaultsAreNeverNil(t *testing.T) {
	rec := ToWire(Form{})

	assert.NotNil(t, rec.SkinConditions)
	assert.NotNil(t, rec.TreatmentAreas)
	assert.Empty(t, rec.SkinConditions)
	assert.False(t, rec.TermsAccepted)
}

func TestToWire_DerivesLegacyBooleans(t *testing.T) {
	f := Form{}
	f.Lifestyle.Smoking = AnswerYes
	f.Health.Allergies = AnswerNo

	rec := ToWire(f)

	assert.True(t, rec.Smoker)
	assert.False(t, rec.HasAllergies)
	assert.Equal(t, AnswerYes, rec.Smoking)
}

func TestToWire_PreservesSections(t *testing.T) {
	f := Form{
		Personal: Personal{FullName: "Maria Silva", Email: "maria@exemplo.com"},
		Health: Health{
			SkinConditions: []string{"rosácea"},
		},
		Objectives: Objectives{
			MainGoal:       "limpeza de pele",
			TreatmentAreas: []string{"rosto"},
		},
		TermsAccepted: true,
	}

	rec := ToWire(f)

	assert.Equal(t, "Maria Silva", rec.FullName)
	assert.Equal(t, []string{"rosácea"}, rec.SkinConditions)
	assert.Equal(t, []string{"rosto"}, rec.TreatmentAreas)
	assert.True(t, rec.TermsAccepted)
}

func TestMigration_LegacyRecordEndsUpInCurrentSchema(t *testing.T) {
	legacy := &models.AnamnesisRecord{Smoker: true, TakesMedication: true}

	wire := ToWire(ToNormalized(legacy))

	assert.Equal(t, AnswerYes, wire.Smoking)
	assert.Equal(t, AnswerYes, wire.UsesMedication)
	assert.Equal(t, AnswerNo, wire.Alcohol)
	// legados derivados continuam coerentes para leitores antigos
	assert.True(t, wire.Smoker)
	assert.False(t, wire.DrinksAlcohol)
}

func TestIsComplete(t *testing.T) {
	assert.False(t, IsComplete(nil))

	f := &Form{}
	assert.False(t, IsComplete(f), "ficha existente sem termos aceitos não está completa")

	f.TermsAccepted = true
	assert.True(t, IsComplete(f))
}
