// Package destination grava as entidades sincronizadas no datastore tabular
package destination

import (
	"context"
	"errors"
)

//go:generate mockgen -source=store.go -destination=mocks/store.go -package=mocks

// BatchSize é o máximo de registros aceitos por chamada de escrita
const BatchSize = 10

var ErrRecordNotFound = errors.New("destination: record not found")

// Fields são os valores de um registro indexados pelo nome da coluna
type Fields map[string]any

type Record struct {
	ID          string `json:"id"`
	CreatedTime string `json:"createdTime,omitempty"`
	Fields      Fields `json:"fields"`
}

type ListOptions struct {
	MaxRecords      int
	FilterByFormula string
}

// Store é o contrato mínimo do datastore de destino. Delete, Create e Update
// aceitam no máximo BatchSize itens por chamada.
type Store interface {
	List(ctx context.Context, table string, opts ListOptions) ([]Record, error)
	Get(ctx context.Context, table, id string) (Record, error)
	Delete(ctx context.Context, table string, ids []string) error
	Create(ctx context.Context, table string, records []Fields, typecast bool) ([]Record, error)
	Update(ctx context.Context, table string, records []Record) ([]Record, error)
}
