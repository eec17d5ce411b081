package operacao

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/operacoes-server/internal/logging"
	"github.com/carson-networks/operacoes-server/internal/service"
	"github.com/carson-networks/operacoes-server/internal/storage/operacao"
)

const (
	missingParamsMessage     = `Parâmetros obrigatórios ausentes. Por favor, forneça "codigoClassificador" e "dataContabil".`
	invalidPaginationMessage = `Os parâmetros "page" e "size" devem ser números positivos.`
	invalidSortPrefix        = "Coluna de ordenação inválida. Permitidas: "
)

// ListOperacoesInput is the Huma input for listing operacoes. Every parameter
// is read as text and validated by parseListOperacoesInput so that all
// rejections share one status code and body.
type ListOperacoesInput struct {
	CodigoClassificador string `query:"codigoClassificador" doc:"Classifier code (required)"`
	DataContabil        string `query:"dataContabil" doc:"Accounting date, matched exactly against data_operacao (required)"`
	Page                string `query:"page" doc:"Page number starting at 1, default 1"`
	Size                string `query:"size" doc:"Page size, default 10"`
	Sort                string `query:"sort" doc:"column,direction with column in id, descricao, valor, data_contabil; default id,asc"`
}

// ListOperacoesResponseBody is the response body for listing operacoes.
type ListOperacoesResponseBody struct {
	Pagination Pagination `json:"pagination"`
	Data       []Operacao `json:"data" doc:"Page of operacoes"`
}

// ListOperacoesOutput is the Huma output for listing operacoes.
type ListOperacoesOutput struct {
	Body ListOperacoesResponseBody
}

// operacaoLister is the interface for listing operacoes.
type operacaoLister interface {
	ListOperacoes(ctx context.Context, req service.PageRequest) (*service.OperacaoPage, error)
}

// ListOperacoesHandler handles GET /operacoes.
type ListOperacoesHandler struct {
	OperacaoService operacaoLister
}

// NewListOperacoesHandler creates a new ListOperacoesHandler.
func NewListOperacoesHandler(svc operacaoLister) *ListOperacoesHandler {
	return &ListOperacoesHandler{OperacaoService: svc}
}

// Register registers the list operacoes endpoint with the Huma API.
func (h *ListOperacoesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-operacoes",
		Method:      http.MethodGet,
		Path:        "/operacoes",
		Summary:     "List operacoes",
		Description: "Returns one page of t_operacao rows for a classifier code and accounting date.",
		Tags:        []string{"Operacoes"},
	}, h.handle)
}

// parseListOperacoesInput validates the query parameters in order: required
// filters, then page and size, then sort. Nothing reaches the store unless
// all of them pass.
func parseListOperacoesInput(input *ListOperacoesInput) (*service.PageRequest, error) {
	if input.CodigoClassificador == "" || input.DataContabil == "" {
		return nil, huma.NewError(http.StatusBadRequest, missingParamsMessage)
	}

	page, pageOK := parsePositiveInt(input.Page, service.DefaultPage)
	size, sizeOK := parsePositiveInt(input.Size, service.DefaultPageSize)
	if !pageOK || !sizeOK || page-1 > math.MaxInt/size {
		return nil, huma.NewError(http.StatusBadRequest, invalidPaginationMessage)
	}

	sort, err := operacao.ParseSort(input.Sort)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, invalidSortPrefix+strings.Join(operacao.SortColumnNames(), ", "))
	}

	return &service.PageRequest{
		CodigoClassificador: input.CodigoClassificador,
		DataContabil:        input.DataContabil,
		Page:                page,
		Size:                size,
		Sort:                sort,
	}, nil
}

// parsePositiveInt returns fallback for an empty value. Otherwise it reads
// the leading base-10 integer after any whitespace, so "2abc" is 2 and "1.5"
// is 1, and returns false when there are no digits or the value is below 1.
func parsePositiveInt(raw string, fallback int) (int, bool) {
	if raw == "" {
		return fallback, true
	}

	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	value, err := strconv.Atoi(s[:end])
	if err != nil || value < 1 {
		return 0, false
	}
	return value, true
}

func (h *ListOperacoesHandler) handle(ctx context.Context, input *ListOperacoesInput) (*ListOperacoesOutput, error) {
	logData := logging.GetLogData(ctx)
	req, err := parseListOperacoesInput(input)
	if err != nil {
		return nil, err
	}

	if logData != nil {
		logData.AddData("codigoClassificador", req.CodigoClassificador)
		logData.AddData("page", req.Page)
		logData.AddData("size", req.Size)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listOperacoesMs")
	}
	page, err := h.OperacaoService.ListOperacoes(ctx, *req)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if logData != nil {
			logData.SetError(err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list operacoes", err)
	}

	if logData != nil {
		logData.AddData("operacaoCount", len(page.Operacoes))
		logData.AddData("totalItems", page.TotalItems)
	}

	resp := ListOperacoesResponseBody{
		Pagination: Pagination{
			TotalItems:  page.TotalItems,
			TotalPages:  page.TotalPages,
			CurrentPage: page.CurrentPage,
			PageSize:    page.PageSize,
		},
		Data: make([]Operacao, len(page.Operacoes)),
	}

	for i, op := range page.Operacoes {
		resp.Data[i] = Operacao{
			ID:                  op.ID,
			CodigoClassificador: op.CodigoClassificador,
			TituloClassificador: op.TituloClassificador,
			ValorMovimento:      op.ValorMovimento,
			DataAtualizacao:     op.DataAtualizacao,
			DataReferencia:      op.DataReferencia,
			DataProcessamento:   op.DataProcessamento,
			DataOperacao:        op.DataOperacao,
			DataContabil:        op.DataContabil,
			IDCliente:           op.IDCliente,
			CPFCliente:          op.CPFCliente,
			NomeCliente:         op.NomeCliente,
			Produto:             op.Produto,
			TipoCartao:          op.TipoCartao,
			RedeOrigem:          op.RedeOrigem,
			Empresa:             op.Empresa,
			Filial:              op.Filial,
			CodigoVencimento:    op.CodigoVencimento,
		}
	}

	return &ListOperacoesOutput{Body: resp}, nil
}
