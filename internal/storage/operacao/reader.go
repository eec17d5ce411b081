package operacao

import (
	"context"
	"fmt"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IOperacaoTable = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// Count returns the number of rows matching the filter.
func (r *Reader) Count(ctx context.Context, filter *OperacaoFilter) (int64, error) {
	total, err := bob.One(ctx, r.exec, countQuery(filter), scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", TableName, err)
	}
	return total, nil
}

// List returns one sorted page of rows matching the filter.
func (r *Reader) List(ctx context.Context, filter *OperacaoFilter) ([]*Operacao, error) {
	rows, err := bob.All(ctx, r.exec, listQuery(filter), scan.StructMapper[operacaoRow]())
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", TableName, err)
	}

	result := make([]*Operacao, len(rows))
	for i := range rows {
		op, err := rowToOperacao(&rows[i])
		if err != nil {
			return nil, err
		}
		result[i] = op
	}
	return result, nil
}

// filterMods is the WHERE clause shared by the count and the list query.
func filterMods(filter *OperacaoFilter) []bob.Mod[*dialect.SelectQuery] {
	return []bob.Mod[*dialect.SelectQuery]{
		sm.From(psql.Quote(TableName)),
		sm.Where(psql.Quote("codigo_classificador").EQ(psql.Arg(filter.CodigoClassificador))),
		sm.Where(psql.Quote("data_operacao").EQ(psql.Arg(filter.DataContabil))),
	}
}

func countQuery(filter *OperacaoFilter) bob.BaseQuery[*dialect.SelectQuery] {
	queryMods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw("count(*)")),
	}, filterMods(filter)...)
	return psql.Select(queryMods...)
}

func listQuery(filter *OperacaoFilter) bob.BaseQuery[*dialect.SelectQuery] {
	columns := make([]any, len(rowColumns))
	for i, column := range rowColumns {
		columns[i] = psql.Quote(column)
	}

	sort := filter.Sort
	if sort.Column == "" {
		sort = DefaultSort
	}

	orderBy := sm.OrderBy(psql.Quote(sort.Column.String()))
	if sort.Direction == SortDesc {
		orderBy = orderBy.Desc()
	} else {
		orderBy = orderBy.Asc()
	}

	queryMods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
	}, filterMods(filter)...)
	queryMods = append(queryMods,
		orderBy,
		sm.Limit(psql.Arg(filter.Limit)),
		sm.Offset(psql.Arg(filter.Offset)),
	)
	return psql.Select(queryMods...)
}
