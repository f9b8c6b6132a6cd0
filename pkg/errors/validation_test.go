package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorCollector(t *testing.T) {
	c := NewValidationErrorCollector()
	assert.False(t, c.HasError())

	c.Add(NewValidationError(400, "keyword", "is required")).
		Add(NewValidationError(400, "category_id", "must be positive", "got -1"))

	assert.True(t, c.HasError())
	assert.Len(t, c.Errors(), 2)
	assert.Equal(t, "keyword: is required, category_id: must be positive, got -1", c.Error())
}

func TestNewHTTPErrorDefaultsStatus(t *testing.T) {
	err := NewHTTPError(110004, "Keyword not found", 0)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "Keyword not found", err.Error())
}
