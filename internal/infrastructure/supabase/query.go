package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Query consulta em construção contra uma tabela remota. A sintaxe espelha a
// da API REST do backend (operadores eq., order=coluna.direção, select com
// joins embutidos).
type Query struct {
	c      *Client
	table  string
	params url.Values
}

// From inicia uma consulta sobre a tabela informada.
func (c *Client) From(table string) *Query {
	return &Query{c: c, table: table, params: url.Values{}}
}

// Select define as colunas (e joins embutidos, ex.: "*,payment_methods(*)").
func (q *Query) Select(columns string) *Query {
	q.params.Set("select", columns)
	return q
}

// Eq adiciona um filtro de igualdade (coluna=eq.valor).
func (q *Query) Eq(column, value string) *Query {
	q.params.Set(column, "eq."+value)
	return q
}

// IsTrue filtra coluna booleana verdadeira (is_active=is.true).
func (q *Query) IsTrue(column string) *Query {
	q.params.Set(column, "is.true")
	return q
}

// Order ordena pelo campo informado.
func (q *Query) Order(column string, ascending bool) *Query {
	dir := "desc"
	if ascending {
		dir = "asc"
	}
	q.params.Set("order", column+"."+dir)
	return q
}

// Limit limita o número de linhas devolvidas.
func (q *Query) Limit(n int) *Query {
	q.params.Set("limit", fmt.Sprintf("%d", n))
	return q
}

func (q *Query) path() string {
	return restBasePath + "/" + q.table
}

// Get executa a leitura; out deve ser ponteiro para slice do tipo da tabela.
func (q *Query) Get(ctx context.Context, out any) error {
	return q.c.do(ctx, http.MethodGet, q.path(), q.params, nil, out)
}

// Insert persiste body e decodifica a(s) linha(s) criada(s) em out (slice).
func (q *Query) Insert(ctx context.Context, body, out any) error {
	return q.c.do(ctx, http.MethodPost, q.path(), q.params, body, out)
}

// Update aplica body às linhas que casam com os filtros já definidos.
func (q *Query) Update(ctx context.Context, body, out any) error {
	return q.c.do(ctx, http.MethodPatch, q.path(), q.params, body, out)
}

// Delete remove as linhas que casam com os filtros. Retorna somente após a
// confirmação do backend.
func (q *Query) Delete(ctx context.Context) error {
	return q.c.do(ctx, http.MethodDelete, q.path(), q.params, nil, nil)
}
