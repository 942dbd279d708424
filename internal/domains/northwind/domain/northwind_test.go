package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeQueryValidate(t *testing.T) {
	limit := 5
	negative := -1
	require.NoError(t, EmployeeQuery{}.Validate())
	require.NoError(t, EmployeeQuery{Limit: &limit, Offset: 2, Order: OrderCity}.Validate())
	require.ErrorIs(t, EmployeeQuery{Order: "salary"}.Validate(), ErrInvalidOrder)
	require.ErrorIs(t, EmployeeQuery{Offset: -1}.Validate(), ErrNegativePaging)
	require.ErrorIs(t, EmployeeQuery{Limit: &negative}.Validate(), ErrNegativePaging)
}

func TestNormalizeCategoryName(t *testing.T) {
	name, err := NormalizeCategoryName("  Seafood ")
	require.NoError(t, err)
	assert.Equal(t, "Seafood", name)

	_, err = NormalizeCategoryName(" ")
	require.ErrorIs(t, err, ErrEmptyCategoryName)
}

func TestJoinAddress(t *testing.T) {
	assert.Equal(t, "Obere Str. 57 12209 Berlin Germany", JoinAddress("Obere Str. 57", "12209", "Berlin", "Germany"))
	assert.Equal(t, "Av. 1  Lima Peru", JoinAddress("Av. 1", "", "Lima", "Peru"))
}
