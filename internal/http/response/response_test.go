package response

import (
	"net/http"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOK(t *testing.T) {
	data := map[string]string{"key": "value"}
	resp := OK(data)

	assert.True(t, resp.Success)
	assert.Equal(t, "OK", resp.Message)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Empty(t, resp.Errors)
	assert.Equal(t, map[string]any{"key": "value"}, resp.Data)
}

func TestError(t *testing.T) {
	resp := Error(http.StatusInternalServerError, "something went wrong")

	assert.False(t, resp.Success)
	assert.Equal(t, "something went wrong", resp.Message)
	assert.Equal(t, http.StatusInternalServerError, resp.Status)
	assert.Nil(t, resp.Data)
}

func TestFieldErrors(t *testing.T) {
	resp := FieldErrors(map[string]string{"name": "has already been taken"})

	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Status)
	assert.Equal(t, "has already been taken", resp.Errors["name"])
}

func TestValidationError(t *testing.T) {
	type TestStruct struct {
		Name  string   `validate:"required,max=5"`
		Price *float64 `validate:"required,gte=0"`
	}

	v := validator.New()
	ts := TestStruct{}

	err := v.Struct(ts)
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))

	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Status)
	assert.Equal(t, "field Name is a required field", resp.Errors["Name"])
	assert.Equal(t, "field Price is a required field", resp.Errors["Price"])
}

func TestValidationErrorGte(t *testing.T) {
	type TestStruct struct {
		Price *float64 `validate:"required,gte=0"`
	}

	v := validator.New()
	price := -1.0
	ts := TestStruct{Price: &price}

	err := v.Struct(ts)
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, "field Price must be greater than or equal to 0", resp.Errors["Price"])
}

func TestCleanDropsEmptyFields(t *testing.T) {
	type payload struct {
		Name  string   `json:"name"`
		Empty string   `json:"empty"`
		Tags  []string `json:"tags"`
		Note  *string  `json:"note"`
	}

	cleaned := Clean(payload{Name: "Chair"})

	m, ok := cleaned.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Chair", m["name"])
	assert.NotContains(t, m, "empty")
	assert.NotContains(t, m, "tags")
	assert.NotContains(t, m, "note")
}

func TestCleanKeepsZeroNumbers(t *testing.T) {
	cleaned := Clean(map[string]any{"price": 0.0, "id": 1})

	m, ok := cleaned.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, m, "price")
	assert.Contains(t, m, "id")
}

// Два последовательных ответа не должны влиять друг на друга:
// формирование конверта не использует разделяемое изменяемое состояние.
func TestNoStateLeakBetweenResponses(t *testing.T) {
	first := FieldErrors(map[string]string{"name": "has already been taken"})
	second := OK(map[string]string{"name": "Chair"})

	assert.False(t, first.Success)
	assert.NotEmpty(t, first.Errors)

	assert.True(t, second.Success)
	assert.Empty(t, second.Errors)
	assert.Equal(t, http.StatusOK, second.Status)
}
