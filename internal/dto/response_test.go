package dto

import (
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationMessage_BodyErrors(t *testing.T) {
	assert.Equal(t, "request body is required", ValidationMessage(io.EOF))
	assert.Equal(t, "request body is required", ValidationMessage(fmt.Errorf("decode: %w", io.EOF)))

	var v map[string]any
	err := json.Unmarshal([]byte(`{"title":`), &v)
	assert.Equal(t, "request body is not valid JSON", ValidationMessage(err))

	var req CreateLabelRequest
	err = json.Unmarshal([]byte(`{"name":7}`), &req)
	assert.Equal(t, "name must be a string", ValidationMessage(err))
}
