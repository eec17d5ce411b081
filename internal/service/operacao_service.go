package service

import (
	"context"

	"github.com/carson-networks/operacoes-server/internal/storage"
	"github.com/carson-networks/operacoes-server/internal/storage/operacao"
)

// OperacaoService handles operacao queries.
type OperacaoService struct {
	storage *storage.Storage
}

// NewOperacaoService creates a new OperacaoService.
func NewOperacaoService(store *storage.Storage) *OperacaoService {
	return &OperacaoService{storage: store}
}

// ListOperacoes counts the rows matching the request and then loads the
// requested page. A failure in either query fails the whole call.
func (s *OperacaoService) ListOperacoes(ctx context.Context, req PageRequest) (*OperacaoPage, error) {
	filter := &operacao.OperacaoFilter{
		CodigoClassificador: req.CodigoClassificador,
		DataContabil:        req.DataContabil,
		Limit:               req.Size,
		Offset:              (req.Page - 1) * req.Size,
		Sort:                req.Sort,
	}

	totalItems, err := s.storage.Operacoes.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Operacoes.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	operacoes := make([]Operacao, len(rows))
	for i, row := range rows {
		operacoes[i] = Operacao{
			ID:                  row.ID,
			CodigoClassificador: row.CodigoClassificador,
			TituloClassificador: row.TituloClassificador,
			ValorMovimento:      row.ValorMovimento,
			DataAtualizacao:     row.DataAtualizacao,
			DataReferencia:      row.DataReferencia,
			DataProcessamento:   row.DataProcessamento,
			DataOperacao:        row.DataOperacao,
			DataContabil:        row.DataContabil,
			IDCliente:           row.IDCliente,
			CPFCliente:          row.CPFCliente,
			NomeCliente:         row.NomeCliente,
			Produto:             row.Produto,
			TipoCartao:          row.TipoCartao,
			RedeOrigem:          row.RedeOrigem,
			Empresa:             row.Empresa,
			Filial:              row.Filial,
			CodigoVencimento:    row.CodigoVencimento,
		}
	}

	return &OperacaoPage{
		TotalItems:  totalItems,
		TotalPages:  totalPages(totalItems, req.Size),
		CurrentPage: req.Page,
		PageSize:    req.Size,
		Operacoes:   operacoes,
	}, nil
}

// totalPages is ceil(totalItems / size).
func totalPages(totalItems int64, size int) int64 {
	if totalItems <= 0 || size <= 0 {
		return 0
	}
	pageSize := int64(size)
	pages := totalItems / pageSize
	if totalItems%pageSize != 0 {
		pages++
	}
	return pages
}
