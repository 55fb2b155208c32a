package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pathParams struct {
	ID    string `param:"id" validate:"required,client_id"`
	Sheet string `param:"sheet" validate:"omitempty,sheet_name"`
}

type listQuery struct {
	Page int `query:"page" validate:"omitempty,min=1"`
}

func TestClientID(t *testing.T) {
	v := GetValidator().GetValidate()

	for _, id := range []string{"id1", "abc-123", "A_b"} {
		assert.NoError(t, v.Struct(pathParams{ID: id}), id)
	}

	for _, id := range []string{"", "../etc", "id 1", "ação"} {
		assert.Error(t, v.Struct(pathParams{ID: id}), id)
	}
}

func TestSheetName(t *testing.T) {
	v := GetValidator().GetValidate()

	for _, sheet := range []string{"clients", "accounts", "branches"} {
		assert.NoError(t, v.Struct(pathParams{ID: "id1", Sheet: sheet}), sheet)
	}
	assert.Error(t, v.Struct(pathParams{ID: "id1", Sheet: "clientes"}))
}

func TestFieldNamesFromTags(t *testing.T) {
	err := GetValidator().GetValidate().Struct(listQuery{Page: -1})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "page", verrs[0].Field())
	assert.Equal(t, "min", verrs[0].Tag())
}

func TestGetValidatorSingleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
