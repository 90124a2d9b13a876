package taxid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gior-api/pkg/taxid"
)

func TestCheckDigit(t *testing.T) {
	cases := map[string]byte{
		"900123456": '8',
		"800197268": '4',
		"860034313": '7',
	}
	for nit, want := range cases {
		got, err := taxid.CheckDigit(nit)
		require.NoError(t, err)
		assert.Equal(t, want, got, nit)
	}

	_, err := taxid.CheckDigit("1234")
	assert.ErrorIs(t, err, taxid.ErrInvalidNIT)
}

func TestValidateNIT(t *testing.T) {
	for _, ok := range []string{"900123456-8", "800.197.268-4", "8600343137"} {
		assert.NoError(t, taxid.ValidateNIT(ok), ok)
	}

	assert.ErrorIs(t, taxid.ValidateNIT("900123456-1"), taxid.ErrInvalidNIT)
	assert.ErrorIs(t, taxid.ValidateNIT("900123456"), taxid.ErrInvalidNIT)
}
