package bind

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderForm struct {
	ProductID uint   `json:"product_id" validate:"required"`
	Status    string `json:"status" validate:"required"`
	Note      string `json:"note" validate:"nullable|max:50"`
}

func TestJSON(t *testing.T) {
	body := `{"product_id": 3, "status": "Pending", "note": "gift wrap"}`
	r := httptest.NewRequest("POST", "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	var form orderForm
	errs, err := JSON(r, &form)
	require.NoError(t, err)
	assert.Empty(t, errs)

	assert.Equal(t, uint(3), form.ProductID)
	assert.Equal(t, "Pending", form.Status)
	assert.Equal(t, "gift wrap", form.Note)
}

func TestJSONMalformed(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"product_id":`))
	r.Header.Set("Content-Type", "application/json")

	var form orderForm
	_, err := JSON(r, &form)
	assert.Error(t, err)
}

func TestJSONValidationFailures(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"note": "x"}`))
	r.Header.Set("Content-Type", "application/json")

	var form orderForm
	errs, err := JSON(r, &form)
	require.NoError(t, err)
	assert.Contains(t, errs, "product_id")
	assert.Contains(t, errs, "status")
}

func TestForm(t *testing.T) {
	values := url.Values{
		"product_id": {"7"},
		"status":     {"Delivered"},
	}
	r := httptest.NewRequest("POST", "/", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var form orderForm
	errs, err := Form(r, &form)
	require.NoError(t, err)
	assert.Empty(t, errs)

	assert.Equal(t, uint(7), form.ProductID)
	assert.Equal(t, "Delivered", form.Status)
	assert.Empty(t, form.Note)
}

func TestFormBadNumber(t *testing.T) {
	values := url.Values{"product_id": {"seven"}}
	r := httptest.NewRequest("POST", "/", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var form orderForm
	_, err := Form(r, &form)
	assert.Error(t, err)
}

func TestFormMissingFieldsLeftZero(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(""))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var form orderForm
	errs, err := Form(r, &form)
	require.NoError(t, err)
	assert.Contains(t, errs, "product_id")
}
