package sunat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contasunat/pkg/sunat"
)

func TestValidateRUC(t *testing.T) {
	assert.NoError(t, sunat.ValidateRUC("20131312955"), "RUC de SUNAT")
	assert.NoError(t, sunat.ValidateRUC("20100066603"))
	assert.NoError(t, sunat.ValidateRUC("201-0006-6603"), "admite separadores")

	assert.Error(t, sunat.ValidateRUC("20131312954"), "dígito verificador incorrecto")
	assert.Error(t, sunat.ValidateRUC("2013131295"), "10 dígitos")
	assert.Error(t, sunat.ValidateRUC("30131312955"), "prefijo inválido")
}

func TestComputeRUCCheckDigit(t *testing.T) {
	d, err := sunat.ComputeRUCCheckDigit("2013131295")
	require.NoError(t, err)
	assert.Equal(t, byte('5'), d)

	_, err = sunat.ComputeRUCCheckDigit("123")
	assert.Error(t, err)
}

func TestSchemeForAffectation(t *testing.T) {
	cases := map[string]sunat.TaxScheme{
		"10": sunat.SchemeIGV,
		"20": sunat.SchemeEXO,
		"30": sunat.SchemeINA,
		"":   sunat.SchemeIGV,
	}
	for code, want := range cases {
		assert.Equal(t, want, sunat.SchemeForAffectation(code), "código %q", code)
	}
	assert.Equal(t, "9997", sunat.SchemeEXO.ID)
	assert.Equal(t, "FRE", sunat.SchemeINA.TypeCode)
}
