package destination

import (
	"context"
	"errors"

	"github.com/vfg2006/ads-metrics-sync/internal/domain"
	"github.com/vfg2006/ads-metrics-sync/pkg/log"
	"github.com/vfg2006/ads-metrics-sync/pkg/ratelimit"
)

// BatchWriter limpa e recria as tabelas em lotes de BatchSize, aguardando o
// limitador depois de cada lote. O limitador pertence a uma única execução.
type BatchWriter struct {
	store   Store
	limiter *ratelimit.Window
}

func NewBatchWriter(store Store, limiter *ratelimit.Window) *BatchWriter {
	return &BatchWriter{
		store:   store,
		limiter: limiter,
	}
}

// ClearAll remove todos os registros da tabela. A primeira falha interrompe
// a limpeza dessa tabela e é devolvida junto com o total já removido.
func (w *BatchWriter) ClearAll(ctx context.Context, table string) (int, error) {
	records, err := w.store.List(ctx, table, ListOptions{})
	if err != nil {
		return 0, asWriteError(table, "list", err)
	}

	if len(records) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}

	deleted := 0
	for _, chunk := range chunks(ids, BatchSize) {
		if err := w.store.Delete(ctx, table, chunk); err != nil {
			return deleted, asWriteError(table, "delete", err)
		}
		deleted += len(chunk)

		if err := w.throttle(ctx); err != nil {
			return deleted, err
		}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"table":   table,
		"records": deleted,
	}).Info("Registros removidos")

	return deleted, nil
}

// CreateMany cria os registros em lotes, preservando a ordem de entrada no retorno
func (w *BatchWriter) CreateMany(ctx context.Context, table string, records []Fields) ([]Record, error) {
	created := make([]Record, 0, len(records))
	if len(records) == 0 {
		return created, nil
	}

	for _, chunk := range chunks(records, BatchSize) {
		out, err := w.store.Create(ctx, table, chunk, true)
		if err != nil {
			return created, asWriteError(table, "create", err)
		}
		created = append(created, out...)

		if err := w.throttle(ctx); err != nil {
			return created, err
		}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"table":   table,
		"records": len(created),
	}).Info("Registros criados")

	return created, nil
}

func (w *BatchWriter) throttle(ctx context.Context) error {
	if w.limiter == nil {
		return nil
	}

	w.limiter.Record()
	return w.limiter.Acquire(ctx)
}

func asWriteError(table, op string, err error) error {
	var writeErr *domain.DestinationWriteError
	if errors.As(err, &writeErr) {
		return err
	}

	return &domain.DestinationWriteError{Table: table, Op: op, Err: err}
}

func chunks[T any](items []T, size int) [][]T {
	out := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[start:end])
	}
	return out
}
