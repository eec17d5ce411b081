package operacao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSort_Default(t *testing.T) {
	sort, err := ParseSort("")
	assert.NoError(t, err)
	assert.Equal(t, DefaultSort, sort)
}

func TestParseSort_AllowedColumns(t *testing.T) {
	tests := []struct {
		raw      string
		expected Sort
	}{
		{raw: "id,asc", expected: Sort{Column: SortColumnID, Direction: SortAsc}},
		{raw: "descricao", expected: Sort{Column: SortColumnDescricao, Direction: SortAsc}},
		{raw: "valor,desc", expected: Sort{Column: SortColumnValor, Direction: SortDesc}},
		{raw: "valor,DESC", expected: Sort{Column: SortColumnValor, Direction: SortDesc}},
		{raw: "DATA_CONTABIL,Desc", expected: Sort{Column: SortColumnDataContabil, Direction: SortDesc}},
		{raw: "Id,descending", expected: Sort{Column: SortColumnID, Direction: SortAsc}},
		{raw: "id, desc", expected: Sort{Column: SortColumnID, Direction: SortAsc}},
		{raw: "id,", expected: Sort{Column: SortColumnID, Direction: SortAsc}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			sort, err := ParseSort(tt.raw)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, sort)
		})
	}
}

func TestParseSort_RejectsUnknownColumn(t *testing.T) {
	for _, raw := range []string{
		"nome_cliente,asc",
		"id;DROP TABLE t_operacao",
		"valor_movimento",
		",desc",
		" id,asc",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseSort(raw)
			assert.ErrorIs(t, err, ErrInvalidSortColumn)
		})
	}
}

func TestSortColumnNames(t *testing.T) {
	assert.Equal(t, []string{"id", "descricao", "valor", "data_contabil"}, SortColumnNames())
}

func TestSortDirection_String(t *testing.T) {
	assert.Equal(t, "ASC", SortAsc.String())
	assert.Equal(t, "DESC", SortDesc.String())
	assert.Equal(t, SortDesc, ParseSortDirection("dEsC"))
	assert.Equal(t, SortAsc, ParseSortDirection("asc"))
}
