package operacao

// Operacao is the API response model for a t_operacao row. Field names are
// the column names; null columns are serialized as null.
type Operacao struct {
	ID                  int64    `json:"id" doc:"Operation identifier"`
	CodigoClassificador *string  `json:"codigo_classificador" doc:"Classifier code"`
	TituloClassificador *string  `json:"titulo_classificador" doc:"Classifier title"`
	ValorMovimento      *float64 `json:"valor_movimento" doc:"Amount"`
	DataAtualizacao     *string  `json:"data_atualizacao" doc:"Last update"`
	DataReferencia      *string  `json:"data_referencia" doc:"Reference date"`
	DataProcessamento   *string  `json:"data_processamento" doc:"Processing date"`
	DataOperacao        *string  `json:"data_operacao" doc:"Operation date"`
	DataContabil        *string  `json:"data_contabil" doc:"Accounting date"`
	IDCliente           *int64   `json:"id_cliente" doc:"Client identifier"`
	CPFCliente          *string  `json:"cpf_cliente" doc:"Client tax id"`
	NomeCliente         *string  `json:"nome_cliente" doc:"Client name"`
	Produto             *string  `json:"produto"`
	TipoCartao          *string  `json:"tipo_cartao" doc:"Card type"`
	RedeOrigem          *string  `json:"rede_origem" doc:"Origin network"`
	Empresa             *string  `json:"empresa" doc:"Company"`
	Filial              *string  `json:"filial" doc:"Branch"`
	CodigoVencimento    *string  `json:"codigo_vencimento" doc:"Due date code"`
}

// Pagination describes the page returned and the size of the whole result.
type Pagination struct {
	TotalItems  int64 `json:"totalItems" doc:"Rows matching the filter"`
	TotalPages  int64 `json:"totalPages" doc:"ceil(totalItems / pageSize)"`
	CurrentPage int   `json:"currentPage" doc:"Page returned"`
	PageSize    int   `json:"pageSize" doc:"Requested page size"`
}
