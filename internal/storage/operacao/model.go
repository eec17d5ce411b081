package operacao

import "context"

const TableName = "t_operacao"

// Operacao is a t_operacao row with its numeric fields parsed.
type Operacao struct {
	ID                  int64
	CodigoClassificador *string
	TituloClassificador *string
	ValorMovimento      *float64
	DataAtualizacao     *string
	DataReferencia      *string
	DataProcessamento   *string
	DataOperacao        *string
	DataContabil        *string
	IDCliente           *int64
	CPFCliente          *string
	NomeCliente         *string
	Produto             *string
	TipoCartao          *string
	RedeOrigem          *string
	Empresa             *string
	Filial              *string
	CodigoVencimento    *string
}

// OperacaoFilter selects one page of operacoes. CodigoClassificador and
// DataContabil are matched for equality against codigo_classificador and
// data_operacao. Count ignores Limit, Offset and Sort.
type OperacaoFilter struct {
	CodigoClassificador string
	DataContabil        string
	Limit               int
	Offset              int
	Sort                Sort
}

// IOperacaoTable defines the read operations on t_operacao.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type IOperacaoTable interface {
	Count(ctx context.Context, filter *OperacaoFilter) (int64, error)
	List(ctx context.Context, filter *OperacaoFilter) ([]*Operacao, error)
}
