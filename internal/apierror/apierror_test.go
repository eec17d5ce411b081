package apierror

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError_ClientErrorKeepsMessage(t *testing.T) {
	err := NewError(http.StatusBadRequest, "Coluna de ordenação inválida.")

	assert.Equal(t, http.StatusBadRequest, err.GetStatus())
	assert.Equal(t, "Coluna de ordenação inválida.", err.Error())
}

func TestNewError_ClientErrorAppendsCauses(t *testing.T) {
	err := NewError(http.StatusUnprocessableEntity, "validation failed", errors.New("expected integer"), nil)

	assert.Equal(t, "validation failed: expected integer", err.Error())
}

func TestNewError_ServerErrorIsGeneric(t *testing.T) {
	err := NewError(http.StatusInternalServerError, "failed to list operacoes", errors.New("pq: relation \"t_operacao\" does not exist"))

	assert.Equal(t, http.StatusInternalServerError, err.GetStatus())
	assert.Equal(t, InternalErrorMessage, err.Error())
}

func TestErrorBody_JSONShape(t *testing.T) {
	body, err := json.Marshal(NewError(http.StatusBadRequest, "bad"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"error":"bad"}`, string(body))
}
