package operacao

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/aarondl/opt/null"
	"github.com/shopspring/decimal"
)

// operacaoRow is a t_operacao row as the driver returns it. Numeric columns
// are read as text so they are parsed in exactly one place. Date columns are
// passed through as text; a date or timestamp column arrives in RFC 3339.
type operacaoRow struct {
	ID                  sql.NullString   `db:"id"`
	CodigoClassificador null.Val[string] `db:"codigo_classificador"`
	TituloClassificador null.Val[string] `db:"titulo_classificador"`
	ValorMovimento      sql.NullString   `db:"valor_movimento"`
	DataAtualizacao     null.Val[string] `db:"data_atualizacao"`
	DataReferencia      null.Val[string] `db:"data_referencia"`
	DataProcessamento   null.Val[string] `db:"data_processamento"`
	DataOperacao        null.Val[string] `db:"data_operacao"`
	DataContabil        null.Val[string] `db:"data_contabil"`
	IDCliente           sql.NullString   `db:"id_cliente"`
	CPFCliente          null.Val[string] `db:"cpf_cliente"`
	NomeCliente         null.Val[string] `db:"nome_cliente"`
	Produto             null.Val[string] `db:"produto"`
	TipoCartao          null.Val[string] `db:"tipo_cartao"`
	RedeOrigem          null.Val[string] `db:"rede_origem"`
	Empresa             null.Val[string] `db:"empresa"`
	Filial              null.Val[string] `db:"filial"`
	CodigoVencimento    null.Val[string] `db:"codigo_vencimento"`
}

// rowColumns is the select list, in the order of operacaoRow.
var rowColumns = []string{
	"id",
	"codigo_classificador",
	"titulo_classificador",
	"valor_movimento",
	"data_atualizacao",
	"data_referencia",
	"data_processamento",
	"data_operacao",
	"data_contabil",
	"id_cliente",
	"cpf_cliente",
	"nome_cliente",
	"produto",
	"tipo_cartao",
	"rede_origem",
	"empresa",
	"filial",
	"codigo_vencimento",
}

// rowToOperacao parses the numeric columns. A NULL id_cliente or
// valor_movimento stays nil; anything unparsable is an error for the whole
// row rather than a guessed value.
func rowToOperacao(row *operacaoRow) (*Operacao, error) {
	if !row.ID.Valid {
		return nil, fmt.Errorf("t_operacao: null id")
	}
	id, err := strconv.ParseInt(row.ID.String, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("t_operacao: parse id %q: %w", row.ID.String, err)
	}

	var idCliente *int64
	if row.IDCliente.Valid {
		parsed, err := strconv.ParseInt(row.IDCliente.String, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("t_operacao %d: parse id_cliente %q: %w", id, row.IDCliente.String, err)
		}
		idCliente = &parsed
	}

	var valorMovimento *float64
	if row.ValorMovimento.Valid {
		parsed, err := decimal.NewFromString(row.ValorMovimento.String)
		if err != nil {
			return nil, fmt.Errorf("t_operacao %d: parse valor_movimento %q: %w", id, row.ValorMovimento.String, err)
		}
		valor := parsed.InexactFloat64()
		valorMovimento = &valor
	}

	return &Operacao{
		ID:                  id,
		CodigoClassificador: row.CodigoClassificador.Ptr(),
		TituloClassificador: row.TituloClassificador.Ptr(),
		ValorMovimento:      valorMovimento,
		DataAtualizacao:     row.DataAtualizacao.Ptr(),
		DataReferencia:      row.DataReferencia.Ptr(),
		DataProcessamento:   row.DataProcessamento.Ptr(),
		DataOperacao:        row.DataOperacao.Ptr(),
		DataContabil:        row.DataContabil.Ptr(),
		IDCliente:           idCliente,
		CPFCliente:          row.CPFCliente.Ptr(),
		NomeCliente:         row.NomeCliente.Ptr(),
		Produto:             row.Produto.Ptr(),
		TipoCartao:          row.TipoCartao.Ptr(),
		RedeOrigem:          row.RedeOrigem.Ptr(),
		Empresa:             row.Empresa.Ptr(),
		Filial:              row.Filial.Ptr(),
		CodigoVencimento:    row.CodigoVencimento.Ptr(),
	}, nil
}
