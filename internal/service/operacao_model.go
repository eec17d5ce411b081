package service

import (
	"github.com/carson-networks/operacoes-server/internal/storage/operacao"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Operacao represents a t_operacao record in the service layer.
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

// PageRequest is a validated request for one page of operacoes.
// Page and Size are at least 1.
type PageRequest struct {
	CodigoClassificador string
	DataContabil        string
	Page                int
	Size                int
	Sort                operacao.Sort
}

// OperacaoPage is one page of operacoes plus the totals for the whole filter.
type OperacaoPage struct {
	TotalItems  int64
	TotalPages  int64
	CurrentPage int
	PageSize    int
	Operacoes   []Operacao
}
