package operacao

import (
	"database/sql"
	"testing"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowToOperacao_ParsesNumericFields(t *testing.T) {
		row := &operacaoRow{
		ID:                  sql.NullString{String: "7", Valid: true},
		CodigoClassificador: null.From("CLS01"),
		ValorMovimento:      sql.NullString{String: "19.90", Valid: true},
		DataOperacao:        null.From("2024-01-15T00:00:00Z"),
		IDCliente:           sql.NullString{String: "42", Valid: true},
		NomeCliente:         null.From("Maria"),
	}

	op, err := rowToOperacao(row)
	require.NoError(t, err)

	assert.Equal(t, int64(7), op.ID)
	require.NotNil(t, op.IDCliente)
	assert.Equal(t, int64(42), *op.IDCliente)
	require.NotNil(t, op.ValorMovimento)
	assert.Equal(t, 19.9, *op.ValorMovimento)
	assert.Equal(t, "CLS01", *op.CodigoClassificador)
	assert.Equal(t, "Maria", *op.NomeCliente)
	assert.Equal(t, "2024-01-15T00:00:00Z", *op.DataOperacao)
	assert.Nil(t, op.TituloClassificador)
	assert.Nil(t, op.DataContabil)
}

func TestRowToOperacao_NullNumericsStayNil(t *testing.T) {
	op, err := rowToOperacao(&operacaoRow{
		ID: sql.NullString{String: "1", Valid: true},
	})
	require.NoError(t, err)

	assert.Nil(t, op.IDCliente)
	assert.Nil(t, op.ValorMovimento)
}

func TestRowToOperacao_NegativeAmount(t *testing.T) {
	op, err := rowToOperacao(&operacaoRow{
		ID:             sql.NullString{String: "3", Valid: true},
		ValorMovimento: sql.NullString{String: "-1250.05", Valid: true},
	})
	require.NoError(t, err)

	assert.Equal(t, -1250.05, *op.ValorMovimento)
}

func TestRowToOperacao_FailsClosed(t *testing.T) {
	tests := map[string]*operacaoRow{
		"null id": {},
		"id not numeric": {
			ID: sql.NullString{String: "abc", Valid: true},
		},
		"id_cliente not numeric": {
			ID:        sql.NullString{String: "1", Valid: true},
			IDCliente: sql.NullString{String: "12a", Valid: true},
		},
		"valor_movimento not numeric": {
			ID:             sql.NullString{String: "1", Valid: true},
			ValorMovimento: sql.NullString{String: "R$ 10,00", Valid: true},
		},
	}

	for name, row := range tests {
		t.Run(name, func(t *testing.T) {
			op, err := rowToOperacao(row)
			assert.Error(t, err)
			assert.Nil(t, op)
		})
	}
}

func TestOperacaoRow_DateColumnsPassThrough(t *testing.T) {
	var fromDate, fromText, fromNull null.Val[string]

	require.NoError(t, fromDate.Scan(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, fromText.Scan([]byte("15/01/2024")))
	require.NoError(t, fromNull.Scan(nil))

	op, err := rowToOperacao(&operacaoRow{
		ID:              sql.NullString{String: "1", Valid: true},
		DataOperacao:    fromDate,
		DataContabil:    fromText,
		DataReferencia:  fromNull,
		DataAtualizacao: null.From("2024-01-15 10:30:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-15T00:00:00Z", *op.DataOperacao)
	assert.Equal(t, "15/01/2024", *op.DataContabil)
	assert.Equal(t, "2024-01-15 10:30:00", *op.DataAtualizacao)
	assert.Nil(t, op.DataReferencia)
}
