// Package postgres implementa o destination.Store em uma única tabela do Postgres,
// para ambientes sem acesso ao Airtable.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"

	database "github.com/vfg2006/ads-metrics-sync/infrastructure/database/postgres"
	"github.com/vfg2006/ads-metrics-sync/infrastructure/destination"
	"github.com/vfg2006/ads-metrics-sync/internal/domain"
	"github.com/vfg2006/ads-metrics-sync/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const recordsTable = "destination_records"

const schema = `
CREATE TABLE IF NOT EXISTS destination_records (
	seq          BIGSERIAL,
	id           TEXT PRIMARY KEY,
	table_name   TEXT NOT NULL,
	fields       JSONB NOT NULL DEFAULT '{}'::jsonb,
	created_time TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS destination_records_table_idx ON destination_records (table_name, seq);
`

type Store struct {
	conn database.Queryer
	psql squirrel.StatementBuilderType
}

func NewStore(conn database.Queryer) *Store {
	return &Store{
		conn: conn,
		psql: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// EnsureSchema cria a tabela de registros se ela ainda não existir
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.conn.ExecContext(ctx, schema); err != nil {
		return wrapDBError(err)
	}
	return nil
}

func (s *Store) listQuery(table string, opts destination.ListOptions) (string, []any, error) {
	query := s.psql.
		Select("id", "fields", "created_time").
		From(recordsTable).
		Where(squirrel.Eq{"table_name": table}).
		OrderBy("seq ASC")

	if opts.MaxRecords > 0 {
		query = query.Limit(uint64(opts.MaxRecords))
	}

	return query.ToSql()
}

func (s *Store) List(ctx context.Context, table string, opts destination.ListOptions) ([]destination.Record, error) {
	if opts.FilterByFormula != "" {
		return nil, fmt.Errorf("postgres: filterByFormula não é suportado")
	}

	query, args, err := s.listQuery(table, opts)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (s *Store) Get(ctx context.Context, table, id string) (destination.Record, error) {
	query, args, err := s.psql.
		Select("id", "fields", "created_time").
		From(recordsTable).
		Where(squirrel.Eq{"table_name": table, "id": id}).
		ToSql()
	if err != nil {
		return destination.Record{}, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record, err := scanRecord(s.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return destination.Record{}, destination.ErrRecordNotFound
		}
		return destination.Record{}, wrapDBError(err)
	}

	return record, nil
}

func (s *Store) deleteQuery(table string, ids []string) (string, []any, error) {
	return s.psql.
		Delete(recordsTable).
		Where(squirrel.Eq{"table_name": table, "id": ids}).
		ToSql()
}

func (s *Store) Delete(ctx context.Context, table string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if len(ids) > destination.BatchSize {
		return fmt.Errorf("postgres: delete aceita no máximo %d ids, recebeu %d", destination.BatchSize, len(ids))
	}

	query, args, err := s.deleteQuery(table, ids)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return &domain.DestinationWriteError{Table: table, Op: "delete", Err: wrapDBError(err)}
	}

	return nil
}

func (s *Store) insertQuery(table string, ids []string, records []destination.Fields) (string, []any, error) {
	insert := s.psql.
		Insert(recordsTable).
		Columns("id", "table_name", "fields").
		Suffix("RETURNING id, fields, created_time")

	for i, f := range records {
		data, err := json.Marshal(f)
		if err != nil {
			return "", nil, fmt.Errorf("erro ao serializar campos para JSON: %w", err)
		}
		insert = insert.Values(ids[i], table, string(data))
	}

	return insert.ToSql()
}

// Create grava os registros na ordem recebida. O typecast é ignorado: os
// campos são guardados como JSON sem coerção.
func (s *Store) Create(ctx context.Context, table string, records []destination.Fields, typecast bool) ([]destination.Record, error) {
	if len(records) == 0 {
		return []destination.Record{}, nil
	}
	if len(records) > destination.BatchSize {
		return nil, fmt.Errorf("postgres: create aceita no máximo %d registros, recebeu %d", destination.BatchSize, len(records))
	}

	ids := make([]string, 0, len(records))
	for range records {
		id, err := utils.GenerateRecordID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar id do registro: %w", err)
		}
		ids = append(ids, id)
	}

	query, args, err := s.insertQuery(table, ids, records)
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &domain.DestinationWriteError{Table: table, Op: "create", Err: wrapDBError(err)}
	}
	defer rows.Close()

	created, err := scanRecords(rows)
	if err != nil {
		return nil, &domain.DestinationWriteError{Table: table, Op: "create", Err: err}
	}

	return orderByIDs(created, ids), nil
}

func (s *Store) updateQuery(table string, record destination.Record) (string, []any, error) {
	data, err := json.Marshal(record.Fields)
	if err != nil {
		return "", nil, fmt.Errorf("erro ao serializar campos para JSON: %w", err)
	}

	return s.psql.
		Update(recordsTable).
		Set("fields", squirrel.Expr("fields || ?::jsonb", string(data))).
		Where(squirrel.Eq{"table_name": table, "id": record.ID}).
		Suffix("RETURNING id, fields, created_time").
		ToSql()
}

type transactor interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

// Update mescla os campos informados aos existentes, como o PATCH do Airtable.
// Com uma conexão transacional o lote inteiro é gravado ou descartado junto.
func (s *Store) Update(ctx context.Context, table string, records []destination.Record) ([]destination.Record, error) {
	if len(records) > destination.BatchSize {
		return nil, fmt.Errorf("postgres: update aceita no máximo %d registros, recebeu %d", destination.BatchSize, len(records))
	}

	tx, ok := s.conn.(transactor)
	if !ok {
		return s.update(ctx, s.conn, table, records)
	}

	var updated []destination.Record
	err := tx.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		updated, err = s.update(ctx, tx, table, records)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Store) update(ctx context.Context, q database.Queryer, table string, records []destination.Record) ([]destination.Record, error) {
	updated := make([]destination.Record, 0, len(records))
	for _, r := range records {
		query, args, err := s.updateQuery(table, r)
		if err != nil {
			return nil, err
		}

		record, err := scanRecord(q.QueryRowContext(ctx, query, args...))
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, &domain.DestinationWriteError{Table: table, Op: "update", Err: destination.ErrRecordNotFound}
			}
			return nil, &domain.DestinationWriteError{Table: table, Op: "update", Err: wrapDBError(err)}
		}
		updated = append(updated, record)
	}

	return updated, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (destination.Record, error) {
	var (
		record      destination.Record
		fieldsJSON  []byte
		createdTime time.Time
	)

	if err := row.Scan(&record.ID, &fieldsJSON, &createdTime); err != nil {
		return destination.Record{}, err
	}

	record.Fields = destination.Fields{}
	if len(fieldsJSON) > 0 {
		if err := json.Unmarshal(fieldsJSON, &record.Fields); err != nil {
			return destination.Record{}, fmt.Errorf("erro ao deserializar campos: %w", err)
		}
	}
	record.CreatedTime = createdTime.UTC().Format(time.RFC3339)

	return record, nil
}

func scanRecords(rows *sql.Rows) ([]destination.Record, error) {
	records := make([]destination.Record, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// orderByIDs devolve os registros na ordem dos ids gerados, já que RETURNING
// de um INSERT com várias linhas não garante ordem
func orderByIDs(records []destination.Record, ids []string) []destination.Record {
	byID := make(map[string]destination.Record, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}

	out := make([]destination.Record, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			out = append(out, r)
		}
	}
	return out
}

func wrapDBError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
