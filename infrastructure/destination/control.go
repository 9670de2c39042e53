package destination

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vfg2006/ads-metrics-sync/internal/domain"
)

// Colunas da tabela de controle
const (
	FieldMasterStartDate = "Master Start Date"
	FieldMasterEndDate   = "Master End Date"
	FieldStatus          = "Status"
	FieldLastPullStatus  = "Last Pull Status"
	FieldLastPullTime    = "Last Pull Time"
	FieldRecordsUpdated  = "Records Updated"
)

// ControlPanel lê o intervalo de datas e grava o status das execuções no
// registro de controle. Sem id de registro, o primeiro registro da tabela é usado.
type ControlPanel struct {
	store Store
	table string
}

func NewControlPanel(store Store) *ControlPanel {
	return &ControlPanel{
		store: store,
		table: domain.SetDateTable,
	}
}

func (p *ControlPanel) ReadDateRange(ctx context.Context, recordID string) (domain.DateRange, error) {
	record, err := p.target(ctx, recordID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return domain.DateRange{}, domain.NewValidationError("record_id", "No date range found in Set Date table")
		}
		return domain.DateRange{}, err
	}

	start := dateCell(record.Fields[FieldMasterStartDate])
	end := dateCell(record.Fields[FieldMasterEndDate])
	if start == "" || end == "" {
		return domain.DateRange{}, domain.NewValidationError("date_range", "Master Start Date and Master End Date must be set")
	}

	return domain.NewDateRange(start, end)
}

func (p *ControlPanel) UpdateStatus(ctx context.Context, recordID string, update domain.StatusUpdate) error {
	record, err := p.target(ctx, recordID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil
		}
		return err
	}

	at := update.At
	if at.IsZero() {
		at = time.Now()
	}

	_, err = p.store.Update(ctx, p.table, []Record{{
		ID: record.ID,
		Fields: Fields{
			FieldStatus:         string(update.Status),
			FieldLastPullStatus: update.Message,
			FieldLastPullTime:   at.UTC().Format(time.RFC3339),
			FieldRecordsUpdated: update.RecordsUpdated,
		},
	}})

	return err
}

func (p *ControlPanel) target(ctx context.Context, recordID string) (Record, error) {
	if recordID != "" {
		return p.store.Get(ctx, p.table, recordID)
	}

	records, err := p.store.List(ctx, p.table, ListOptions{MaxRecords: 1})
	if err != nil {
		return Record{}, err
	}
	if len(records) == 0 {
		return Record{}, ErrRecordNotFound
	}

	return records[0], nil
}

// dateCell aceita células de data (YYYY-MM-DD) e de data e hora (RFC3339)
func dateCell(value any) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	if _, err := time.Parse(time.DateOnly, s); err == nil {
		return s
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(time.DateOnly)
	}

	return s
}
