package validate

import (
	"github.com/and161185/kid-clinic/internal/i18n"
	"github.com/and161185/kid-clinic/internal/model"
)

// ChildForm is the spec of the add-kid form; every field is required.
func ChildForm() Spec {
	return Spec{
		model.FieldFullName:        {Required: true, Kind: Freeform, Label: i18n.KeyFullName},
		model.FieldNationalID:      {Required: true, Kind: Numeric, Label: i18n.KeyNationalID},
		model.FieldURN:             {Required: true, Kind: Numeric, Label: i18n.KeyURN},
		model.FieldSex:             {Required: true, Kind: Enum, Choices: i18n.Values(i18n.Sexes()), Label: i18n.KeySex},
		model.FieldNationality:     {Required: true, Kind: Enum, Choices: i18n.Values(i18n.Nationalities()), Label: i18n.KeyNationality},
		model.FieldInsurance:       {Required: true, Kind: Enum, Choices: i18n.Values(i18n.InsuranceProviders()), Label: i18n.KeyInsurance},
		model.FieldInsuranceNumber: {Required: true, Kind: Freeform, Label: i18n.KeyInsuranceNumber},
		model.FieldDateOfBirth:     {Required: true, Kind: Date, Label: i18n.KeyDateOfBirth},
	}
}
