package anamnesis

import "github.com/EspacoVida/spa-portal/internal/models"

// ======================================================
// ADAPTADORES (totais, puros, nunca lançam)
// ======================================================
//
// Fichas antigas gravaram fatos de saúde como booleanos; o esquema atual
// usa "yes"/"no". A precedência é fixa: campo atual não vazio vence;
// senão cai no legado, convertido true→"yes", false/ausente→"no".
// A tabela de regras abaixo existe para essa precedência ser auditável
// em um lugar só.

func legacyAnswer(b bool) string {
	if b {
		return AnswerYes
	}
	return AnswerNo
}

type fallbackRule struct {
	current string
	legacy  bool
	dst     *string
}

func resolve(rules []fallbackRule) {
	for _, r := range rules {
		if r.current != "" {
			*r.dst = r.current
			continue
		}
		*r.dst = legacyAnswer(r.legacy)
	}
}

// ToNormalized converte a ficha de fio para a forma da UI. Aceita ficha
// parcial ou corrompida: tudo que faltar vira default — o formulário de
// anamnese precisa renderizar mesmo com histórico ruim.
func ToNormalized(rec *models.AnamnesisRecord) Form {
	if rec == nil {
		rec = &models.AnamnesisRecord{}
	}

	f := Form{
		Personal: Personal{
			FullName:   rec.FullName,
			BirthDate:  rec.BirthDate,
			Phone:      rec.Phone,
			Email:      rec.Email,
			Profession: rec.Profession,
		},
		Lifestyle: Lifestyle{
			SleepQuality: rec.SleepQuality,
			WaterIntake:  rec.WaterIntake,
			Diet:         rec.Diet,
		},
		Health: Health{
			MedicationNotes:   rec.MedicationNotes,
			AllergyNotes:      rec.AllergyNotes,
			SkinConditions:    copyStrings(rec.SkinConditions),
			MedicalConditions: rec.MedicalConditions,
		},
		Objectives: Objectives{
			MainGoal:       rec.MainGoal,
			TreatmentAreas: copyStrings(rec.TreatmentAreas),
			Expectations:   rec.Expectations,
		},
		TermsAccepted:   rec.TermsAccepted,
		TermsAcceptedAt: rec.TermsAcceptedAt,
	}

	resolve([]fallbackRule{
		{rec.Smoking, rec.Smoker, &f.Lifestyle.Smoking},
		{rec.Alcohol, rec.DrinksAlcohol, &f.Lifestyle.Alcohol},
		{rec.PhysicalActivity, rec.Exercises, &f.Lifestyle.PhysicalActivity},
		{rec.Pregnant, rec.IsPregnant, &f.Health.Pregnant},
		{rec.UsesMedication, rec.TakesMedication, &f.Health.UsesMedication},
		{rec.Allergies, rec.HasAllergies, &f.Health.Allergies},
	})

	return f
}

// ToWire converte a forma da UI para a ficha de fio no esquema atual.
// Migração é com perda em direção ao esquema novo: os booleanos legados
// são derivados das respostas atuais para leitores antigos.
func ToWire(f Form) *models.AnamnesisRecord {
	return &models.AnamnesisRecord{
		FullName:   f.Personal.FullName,
		BirthDate:  f.Personal.BirthDate,
		Phone:      f.Personal.Phone,
		Email:      f.Personal.Email,
		Profession: f.Personal.Profession,

		Smoking:          f.Lifestyle.Smoking,
		Alcohol:          f.Lifestyle.Alcohol,
		PhysicalActivity: f.Lifestyle.PhysicalActivity,
		SleepQuality:     f.Lifestyle.SleepQuality,
		WaterIntake:      f.Lifestyle.WaterIntake,
		Diet:             f.Lifestyle.Diet,

		Smoker:        f.Lifestyle.Smoking == AnswerYes,
		DrinksAlcohol: f.Lifestyle.Alcohol == AnswerYes,
		Exercises:     f.Lifestyle.PhysicalActivity == AnswerYes,

		Pregnant:          f.Health.Pregnant,
		UsesMedication:    f.Health.UsesMedication,
		MedicationNotes:   f.Health.MedicationNotes,
		Allergies:         f.Health.Allergies,
		AllergyNotes:      f.Health.AllergyNotes,
		SkinConditions:    nonNil(copyStrings(f.Health.SkinConditions)),
		MedicalConditions: f.Health.MedicalConditions,

		IsPregnant:      f.Health.Pregnant == AnswerYes,
		TakesMedication: f.Health.UsesMedication == AnswerYes,
		HasAllergies:    f.Health.Allergies == AnswerYes,

		MainGoal:       f.Objectives.MainGoal,
		TreatmentAreas: nonNil(copyStrings(f.Objectives.TreatmentAreas)),
		Expectations:   f.Objectives.Expectations,

		TermsAccepted:   f.TermsAccepted,
		TermsAcceptedAt: f.TermsAcceptedAt,
	}
}

// IsComplete: ficha existe E termos aceitos. Só existir não basta.
func IsComplete(f *Form) bool {
	return f != nil && f.TermsAccepted
}

func copyStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
