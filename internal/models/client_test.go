package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaritalStatus_KnownAndLabel(t *testing.T) {
	assert.True(t, MaritalStatusSingle.Known())
	assert.Equal(t, "single", MaritalStatusSingle.Label())
	assert.Equal(t, "widowed", MaritalStatusWidowed.Label())

	other := MaritalStatus("União Estável")
	assert.False(t, other.Known())
	assert.Equal(t, "União Estável", other.Label())
}

func TestClient_DisplayName(t *testing.T) {
	client := Client{Name: "Jane Doe"}
	assert.Equal(t, "Jane Doe", client.DisplayName())

	social := "Janey"
	client.SocialName = &social
	assert.Equal(t, "Janey", client.DisplayName())
}

func TestDate_ValidAndInvalid(t *testing.T) {
	valid := NewDate(1990, time.January, 1)
	assert.True(t, valid.Valid())
	assert.Equal(t, "1990-01-01", valid.String())

	invalid := InvalidDate("31/31/1990")
	assert.False(t, invalid.Valid())
	assert.Equal(t, InvalidDateText, invalid.String())
	assert.Equal(t, "31/31/1990", invalid.Raw)
	assert.NotEqual(t, NewDate(1970, time.January, 1), invalid)
}

func TestDate_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Valid   Date `json:"valid"`
		Invalid Date `json:"invalid"`
	}{NewDate(2001, time.March, 9), InvalidDate("garbage")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"valid":"2001-03-09","invalid":null}`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal([]byte(`"2001-03-09"`), &decoded))
	assert.Equal(t, NewDate(2001, time.March, 9), decoded)

	require.NoError(t, json.Unmarshal([]byte(`null`), &decoded))
	assert.False(t, decoded.Valid())
}

func TestClient_JSONOmitsAbsentOptionalText(t *testing.T) {
	data, err := json.Marshal(Client{ID: "id1", Name: "Jane Doe", BirthDate: NewDate(1990, time.January, 1)})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded, "social_name")
	assert.NotContains(t, decoded, "national_id")
	assert.Equal(t, "1990-01-01", decoded["birth_date"])
}
