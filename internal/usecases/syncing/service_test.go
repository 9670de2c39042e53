package syncing

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-metrics-sync/infrastructure/destination"
	"github.com/vfg2006/ads-metrics-sync/internal/domain"
	"github.com/vfg2006/ads-metrics-sync/internal/usecases/syncing/mocks"
)

var fixedNow = time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	fetcher      *mocks.MockAdsFetcher
	writer       *mocks.MockRecordWriter
	control      *mocks.MockControlPanel
	service      *Service
	writersBuilt int
}

func newFixture(t *testing.T, customerID string) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		fetcher: mocks.NewMockAdsFetcher(ctrl),
		writer:  mocks.NewMockRecordWriter(ctrl),
		control: mocks.NewMockControlPanel(ctrl),
	}

	f.service = NewService(f.fetcher, func() RecordWriter {
		f.writersBuilt++
		return f.writer
	}, f.control, customerID)
	f.service.now = func() time.Time { return fixedNow }

	return f
}

func status(s domain.SyncStatus, message string, records int) domain.StatusUpdate {
	return domain.StatusUpdate{Status: s, Message: message, RecordsUpdated: records, At: fixedNow}
}

func echoCreate(ctx context.Context, table string, records []destination.Fields) ([]destination.Record, error) {
	out := make([]destination.Record, 0, len(records))
	for _, r := range records {
		out = append(out, destination.Record{ID: "rec", Fields: r})
	}
	return out, nil
}

func mustRange(t *testing.T, start, end string) domain.DateRange {
	t.Helper()
	dr, err := domain.NewDateRange(start, end)
	require.NoError(t, err)
	return dr
}

func TestService_PullWithDateRange(t *testing.T) {
	t.Run("Deve limpar, buscar, vincular e gravar os quatro tipos", func(t *testing.T) {
		f := newFixture(t, "1234567890")
		dateRange := mustRange(t, "2024-06-01", "2024-06-30")

		gomock.InOrder(
			f.control.EXPECT().UpdateStatus(gomock.Any(), "recSet", status(domain.SyncStatusPulling, "Pulling 2024-06-01 to 2024-06-30...", 0)).Return(nil),
			f.control.EXPECT().UpdateStatus(gomock.Any(), "recSet", status(domain.SyncStatusSuccess, "Successfully pulled 3 records", 3)).Return(nil),
		)

		f.writer.EXPECT().ClearAll(gomock.Any(), domain.CampaignsTable).Return(4, nil)
		f.writer.EXPECT().ClearAll(gomock.Any(), domain.AdGroupsTable).Return(0, errors.New("422"))
		f.writer.EXPECT().ClearAll(gomock.Any(), domain.KeywordsTable).Return(0, nil)
		f.writer.EXPECT().ClearAll(gomock.Any(), domain.AdsTable).Return(0, nil)

		f.fetcher.EXPECT().FetchCampaigns(gomock.Any(), dateRange).Return([]*domain.Campaign{{ID: "1", Name: "C1"}}, nil)
		f.fetcher.EXPECT().FetchAdGroups(gomock.Any(), dateRange).Return([]*domain.AdGroup{{ID: "10", Name: "Core", CampaignID: "1"}}, nil)
		f.fetcher.EXPECT().FetchKeywords(gomock.Any(), dateRange).Return([]*domain.Keyword{{ID: "100", AdGroupID: "10"}}, nil)
		f.fetcher.EXPECT().FetchAds(gomock.Any(), dateRange).Return(nil, nil)

		f.writer.EXPECT().CreateMany(gomock.Any(), domain.CampaignsTable, gomock.Len(1)).DoAndReturn(echoCreate)
		f.writer.EXPECT().CreateMany(gomock.Any(), domain.AdGroupsTable, gomock.Len(1)).DoAndReturn(echoCreate)
		f.writer.EXPECT().CreateMany(gomock.Any(), domain.KeywordsTable, gomock.Len(1)).
			DoAndReturn(func(ctx context.Context, table string, records []destination.Fields) ([]destination.Record, error) {
				assert.Equal(t, "C1", records[0]["Campaign Name"])
				assert.Equal(t, "1", records[0]["Campaign ID"])
				assert.Equal(t, "Core", records[0]["Ad Group Name"])
				return echoCreate(ctx, table, records)
			})
		f.writer.EXPECT().CreateMany(gomock.Any(), domain.AdsTable, gomock.Len(0)).DoAndReturn(echoCreate)

		result, err := f.service.PullWithDateRange(context.Background(), "2024-06-01", "2024-06-30", "recSet")
		require.NoError(t, err)

		assert.True(t, result.Success)
		assert.NotEmpty(t, result.RunID)
		assert.Equal(t, 3, result.TotalRecords)
		assert.Equal(t, domain.Breakdown{Campaigns: 1, AdGroups: 1, Keywords: 1, Ads: 0}, result.Breakdown)
		assert.Equal(t, "2024-06-01", result.StartDate)
		assert.Equal(t, "2024-06-30", result.EndDate)
		assert.Equal(t, 1, f.writersBuilt)
	})

	t.Run("Deve gravar Error e devolver o mesmo erro quando uma busca falhar", func(t *testing.T) {
		f := newFixture(t, "1234567890")

		upstreamErr := &domain.UpstreamQueryError{StatusCode: 429, Body: "quota"}

		gomock.InOrder(
			f.control.EXPECT().UpdateStatus(gomock.Any(), "", status(domain.SyncStatusPulling, "Pulling 2024-06-01 to 2024-06-30...", 0)).Return(nil),
			f.control.EXPECT().UpdateStatus(gomock.Any(), "", status(domain.SyncStatusError, "Error: Google Ads API Error (429): quota", 0)).Return(nil),
		)

		f.writer.EXPECT().ClearAll(gomock.Any(), gomock.Any()).Return(0, nil).Times(4)

		f.fetcher.EXPECT().FetchCampaigns(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		f.fetcher.EXPECT().FetchAdGroups(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		f.fetcher.EXPECT().FetchKeywords(gomock.Any(), gomock.Any()).Return(nil, upstreamErr)
		f.fetcher.EXPECT().FetchAds(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		result, err := f.service.PullWithDateRange(context.Background(), "2024-06-01", "2024-06-30", "")
		assert.Nil(t, result)
		assert.Same(t, upstreamErr, err)
	})

	t.Run("Deve gravar Error quando a escrita falhar", func(t *testing.T) {
		f := newFixture(t, "1234567890")

		writeErr := &domain.DestinationWriteError{Table: domain.AdsTable, Op: "create", StatusCode: 422, Err: errors.New("UNKNOWN_FIELD_NAME")}

		f.control.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.control.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), status(domain.SyncStatusError, "Error: "+writeErr.Error(), 0)).Return(nil)

		f.writer.EXPECT().ClearAll(gomock.Any(), gomock.Any()).Return(0, nil).Times(4)

		f.fetcher.EXPECT().FetchCampaigns(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.fetcher.EXPECT().FetchAdGroups(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.fetcher.EXPECT().FetchKeywords(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.fetcher.EXPECT().FetchAds(gomock.Any(), gomock.Any()).Return([]*domain.Ad{{ID: "900"}}, nil)

		f.writer.EXPECT().CreateMany(gomock.Any(), domain.AdsTable, gomock.Any()).Return(nil, writeErr)
		f.writer.EXPECT().CreateMany(gomock.Any(), gomock.Not(domain.AdsTable), gomock.Any()).DoAndReturn(echoCreate).AnyTimes()

		_, err := f.service.PullWithDateRange(context.Background(), "2024-06-01", "2024-06-30", "")
		assert.True(t, domain.IsDestinationWriteError(err))
	})

	t.Run("Deve rejeitar datas inválidas sem tocar no destino", func(t *testing.T) {
		tests := []struct {
			name  string
			start string
			end   string
		}{
			{name: "Início ausente", start: "", end: "2024-06-30"},
			{name: "Valor MISSING", start: "MISSING", end: "2024-06-30"},
			{name: "Formato inválido", start: "01/06/2024", end: "2024-06-30"},
			{name: "Início depois do fim", start: "2024-07-01", end: "2024-06-30"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(t, "1234567890")

				f.control.EXPECT().UpdateStatus(gomock.Any(), "", gomock.Cond(func(x any) bool {
					return x.(domain.StatusUpdate).Status == domain.SyncStatusError
				})).Return(nil)

				_, err := f.service.PullWithDateRange(context.Background(), tt.start, tt.end, "")
				assert.True(t, domain.IsValidationError(err))
				assert.Zero(t, f.writersBuilt)
			})
		}
	})

	t.Run("Deve falhar antes de limpar quando o customer id não estiver configurado", func(t *testing.T) {
		f := newFixture(t, "")

		gomock.InOrder(
			f.control.EXPECT().UpdateStatus(gomock.Any(), "", gomock.Any()).Return(nil),
			f.control.EXPECT().UpdateStatus(gomock.Any(), "", status(domain.SyncStatusError, "Error: GOOGLE_ADS_CUSTOMER_ID not set in environment", 0)).Return(nil),
		)

		_, err := f.service.PullWithDateRange(context.Background(), "2024-06-01", "2024-06-30", "")
		assert.True(t, domain.IsValidationError(err))
		assert.Zero(t, f.writersBuilt)
	})

	t.Run("Não deve propagar falhas ao gravar o status", func(t *testing.T) {
		f := newFixture(t, "1234567890")

		f.control.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("airtable down")).Times(2)
		f.writer.EXPECT().ClearAll(gomock.Any(), gomock.Any()).Return(0, nil).Times(4)

		f.fetcher.EXPECT().FetchCampaigns(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.fetcher.EXPECT().FetchAdGroups(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.fetcher.EXPECT().FetchKeywords(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.fetcher.EXPECT().FetchAds(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.writer.EXPECT().CreateMany(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoCreate).Times(4)

		result, err := f.service.PullWithDateRange(context.Background(), "2024-06-01", "2024-06-30", "")
		require.NoError(t, err)
		assert.Zero(t, result.TotalRecords)
	})
}

func TestService_RunSurvivesCallerCancellation(t *testing.T) {
	t.Run("Deve concluir a execução mesmo com o contexto do chamador cancelado", func(t *testing.T) {
		f := newFixture(t, "1234567890")

		parent, cancel := context.WithCancel(context.Background())
		defer cancel()

		notCancelled := func(ctx context.Context) {
			assert.NoError(t, ctx.Err())
		}

		f.control.EXPECT().UpdateStatus(gomock.Any(), "", gomock.Any()).
			DoAndReturn(func(ctx context.Context, recordID string, update domain.StatusUpdate) error {
				notCancelled(ctx)
				return nil
			}).Times(2)
		f.writer.EXPECT().ClearAll(gomock.Any(), gomock.Any()).Return(0, nil).Times(4)

		f.fetcher.EXPECT().FetchCampaigns(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, dr domain.DateRange) ([]*domain.Campaign, error) {
				cancel()
				notCancelled(ctx)
				return []*domain.Campaign{{ID: "1"}}, nil
			})
		f.fetcher.EXPECT().FetchAdGroups(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.fetcher.EXPECT().FetchKeywords(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.fetcher.EXPECT().FetchAds(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.writer.EXPECT().CreateMany(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, table string, records []destination.Fields) ([]destination.Record, error) {
				notCancelled(ctx)
				return echoCreate(ctx, table, records)
			}).Times(4)

		result, err := f.service.PullWithDateRange(parent, "2024-06-01", "2024-06-30", "")
		require.NoError(t, err)
		assert.Equal(t, 1, result.TotalRecords)
	})

	t.Run("Deve gravar Error com o contexto do chamador já cancelado", func(t *testing.T) {
		f := newFixture(t, "1234567890")

		parent, cancel := context.WithCancel(context.Background())
		defer cancel()

		upstreamErr := &domain.UpstreamQueryError{StatusCode: 500, Body: "INTERNAL"}

		var written []domain.SyncStatus
		f.control.EXPECT().UpdateStatus(gomock.Any(), "", gomock.Any()).
			DoAndReturn(func(ctx context.Context, recordID string, update domain.StatusUpdate) error {
				if err := ctx.Err(); err != nil {
					return err
				}
				written = append(written, update.Status)
				return nil
			}).Times(2)
		f.writer.EXPECT().ClearAll(gomock.Any(), gomock.Any()).Return(0, nil).Times(4)

		f.fetcher.EXPECT().FetchCampaigns(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, dr domain.DateRange) ([]*domain.Campaign, error) {
				cancel()
				return nil, upstreamErr
			})
		f.fetcher.EXPECT().FetchAdGroups(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.fetcher.EXPECT().FetchKeywords(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.fetcher.EXPECT().FetchAds(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := f.service.PullWithDateRange(parent, "2024-06-01", "2024-06-30", "")
		assert.Same(t, upstreamErr, err)
		assert.Equal(t, []domain.SyncStatus{domain.SyncStatusPulling, domain.SyncStatusError}, written)
	})
}

func TestService_WriteFailureDoesNotStopOtherKinds(t *testing.T) {
	f := newFixture(t, "1234567890")

	writeErr := &domain.DestinationWriteError{Table: domain.AdsTable, Op: "create", StatusCode: 422, Err: errors.New("INVALID_VALUE_FOR_CELL")}

	campaigns := make([]*domain.Campaign, 0, 30)
	for i := 0; i < 30; i++ {
		campaigns = append(campaigns, &domain.Campaign{ID: fmt.Sprintf("%d", i+1)})
	}

	f.control.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.writer.EXPECT().ClearAll(gomock.Any(), gomock.Any()).Return(0, nil).Times(4)

	f.fetcher.EXPECT().FetchCampaigns(gomock.Any(), gomock.Any()).Return(campaigns, nil)
	f.fetcher.EXPECT().FetchAdGroups(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.fetcher.EXPECT().FetchKeywords(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.fetcher.EXPECT().FetchAds(gomock.Any(), gomock.Any()).Return([]*domain.Ad{{ID: "900"}}, nil)

	adsFailed := make(chan struct{})
	f.writer.EXPECT().CreateMany(gomock.Any(), domain.AdsTable, gomock.Any()).
		DoAndReturn(func(ctx context.Context, table string, records []destination.Fields) ([]destination.Record, error) {
			close(adsFailed)
			return nil, writeErr
		})

	var campaignsWritten int
	f.writer.EXPECT().CreateMany(gomock.Any(), domain.CampaignsTable, gomock.Len(30)).
		DoAndReturn(func(ctx context.Context, table string, records []destination.Fields) ([]destination.Record, error) {
			<-adsFailed
			time.Sleep(20 * time.Millisecond)
			assert.NoError(t, ctx.Err())
			created, err := echoCreate(ctx, table, records)
			campaignsWritten = len(created)
			return created, err
		})
	f.writer.EXPECT().CreateMany(gomock.Any(), domain.AdGroupsTable, gomock.Any()).DoAndReturn(echoCreate)
	f.writer.EXPECT().CreateMany(gomock.Any(), domain.KeywordsTable, gomock.Any()).DoAndReturn(echoCreate)

	_, err := f.service.PullWithDateRange(context.Background(), "2024-06-01", "2024-06-30", "")
	assert.Same(t, writeErr, err)
	assert.Equal(t, 30, campaignsWritten)
}

func TestService_PullAllData(t *testing.T) {
	t.Run("Deve usar o intervalo do registro de controle", func(t *testing.T) {
		f := newFixture(t, "1234567890")
		dateRange := mustRange(t, "2024-05-01", "2024-05-31")

		gomock.InOrder(
			f.control.EXPECT().UpdateStatus(gomock.Any(), "recSet", status(domain.SyncStatusPulling, "Starting data pull...", 0)).Return(nil),
			f.control.EXPECT().ReadDateRange(gomock.Any(), "recSet").Return(dateRange, nil),
			f.control.EXPECT().UpdateStatus(gomock.Any(), "recSet", status(domain.SyncStatusSuccess, "Successfully pulled 1 records", 1)).Return(nil),
		)

		f.writer.EXPECT().ClearAll(gomock.Any(), gomock.Any()).Return(0, nil).Times(4)

		f.fetcher.EXPECT().FetchCampaigns(gomock.Any(), dateRange).Return([]*domain.Campaign{{ID: "1"}}, nil)
		f.fetcher.EXPECT().FetchAdGroups(gomock.Any(), dateRange).Return(nil, nil)
		f.fetcher.EXPECT().FetchKeywords(gomock.Any(), dateRange).Return(nil, nil)
		f.fetcher.EXPECT().FetchAds(gomock.Any(), dateRange).Return(nil, nil)
		f.writer.EXPECT().CreateMany(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoCreate).Times(4)

		result, err := f.service.PullAllData(context.Background(), "recSet")
		require.NoError(t, err)
		assert.Equal(t, 1, result.Breakdown.Campaigns)
		assert.Equal(t, "2024-05-01", result.StartDate)
	})

	t.Run("Deve gravar Error quando o registro de controle não tiver datas", func(t *testing.T) {
		f := newFixture(t, "1234567890")

		readErr := domain.NewValidationError("date_range", "Master Start Date and Master End Date must be set")

		gomock.InOrder(
			f.control.EXPECT().UpdateStatus(gomock.Any(), "", gomock.Any()).Return(nil),
			f.control.EXPECT().ReadDateRange(gomock.Any(), "").Return(domain.DateRange{}, readErr),
			f.control.EXPECT().UpdateStatus(gomock.Any(), "", status(domain.SyncStatusError, "Error: Master Start Date and Master End Date must be set", 0)).Return(nil),
		)

		_, err := f.service.PullAllData(context.Background(), "")
		assert.Same(t, readErr, err)
		assert.Zero(t, f.writersBuilt)
	})

	t.Run("Deve criar um escritor novo a cada execução", func(t *testing.T) {
		f := newFixture(t, "1234567890")
		dateRange := mustRange(t, "2024-05-01", "2024-05-31")

		f.control.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.control.EXPECT().ReadDateRange(gomock.Any(), gomock.Any()).Return(dateRange, nil).Times(2)
		f.writer.EXPECT().ClearAll(gomock.Any(), gomock.Any()).Return(0, nil).Times(8)
		f.fetcher.EXPECT().FetchCampaigns(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
		f.fetcher.EXPECT().FetchAdGroups(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
		f.fetcher.EXPECT().FetchKeywords(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
		f.fetcher.EXPECT().FetchAds(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
		f.writer.EXPECT().CreateMany(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoCreate).Times(8)

		first, err := f.service.PullAllData(context.Background(), "")
		require.NoError(t, err)
		second, err := f.service.PullAllData(context.Background(), "")
		require.NoError(t, err)

		assert.Equal(t, 2, f.writersBuilt)
		assert.NotEqual(t, first.RunID, second.RunID)
	})
}
