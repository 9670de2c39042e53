// Package airtable implementa o destination.Store sobre a API REST do Airtable
package airtable

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/ads-metrics-sync/infrastructure/destination"
	"github.com/vfg2006/ads-metrics-sync/internal/config"
	"github.com/vfg2006/ads-metrics-sync/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	pageSize       = 100
	defaultTimeout = 30 * time.Second
)

type listResponse struct {
	Records []destination.Record `json:"records"`
	Offset  string               `json:"offset"`
}

type recordsResponse struct {
	Records []destination.Record `json:"records"`
}

type createRequest struct {
	Records  []createRecord `json:"records"`
	Typecast bool           `json:"typecast,omitempty"`
}

type createRecord struct {
	Fields destination.Fields `json:"fields"`
}

type updateRequest struct {
	Records []destination.Record `json:"records"`
}

type Client struct {
	baseURL    string
	baseID     string
	token      string
	httpClient *http.Client
}

func NewClient(cfg config.Airtable, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:    cfg.URL,
		baseID:     cfg.BaseID,
		token:      cfg.Token(),
		httpClient: httpClient,
	}
}

// List percorre todas as páginas da tabela seguindo o offset
func (c *Client) List(ctx context.Context, table string, opts destination.ListOptions) ([]destination.Record, error) {
	records := make([]destination.Record, 0)
	offset := ""

	for {
		params := url.Values{}
		params.Set("pageSize", strconv.Itoa(pageSize))
		if opts.MaxRecords > 0 {
			params.Set("maxRecords", strconv.Itoa(opts.MaxRecords))
		}
		if opts.FilterByFormula != "" {
			params.Set("filterByFormula", opts.FilterByFormula)
		}
		if offset != "" {
			params.Set("offset", offset)
		}

		var page listResponse
		if err := c.do(ctx, http.MethodGet, c.tableURL(table)+"?"+params.Encode(), nil, &page); err != nil {
			return nil, errors.Wrapf(err, "airtable: list %q", table)
		}

		records = append(records, page.Records...)

		if page.Offset == "" || (opts.MaxRecords > 0 && len(records) >= opts.MaxRecords) {
			break
		}
		offset = page.Offset
	}

	return records, nil
}

func (c *Client) Get(ctx context.Context, table, id string) (destination.Record, error) {
	var record destination.Record

	err := c.do(ctx, http.MethodGet, c.tableURL(table)+"/"+url.PathEscape(id), nil, &record)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return destination.Record{}, destination.ErrRecordNotFound
		}
		return destination.Record{}, errors.Wrapf(err, "airtable: get %q from %q", id, table)
	}

	return record, nil
}

func (c *Client) Delete(ctx context.Context, table string, ids []string) error {
	if len(ids) > destination.BatchSize {
		return errors.Errorf("airtable: delete aceita no máximo %d ids, recebeu %d", destination.BatchSize, len(ids))
	}

	params := url.Values{}
	for _, id := range ids {
		params.Add("records[]", id)
	}

	var resp recordsResponse
	if err := c.do(ctx, http.MethodDelete, c.tableURL(table)+"?"+params.Encode(), nil, &resp); err != nil {
		return writeError(table, "delete", err)
	}

	return nil
}

func (c *Client) Create(ctx context.Context, table string, records []destination.Fields, typecast bool) ([]destination.Record, error) {
	if len(records) > destination.BatchSize {
		return nil, errors.Errorf("airtable: create aceita no máximo %d registros, recebeu %d", destination.BatchSize, len(records))
	}

	body := createRequest{
		Records:  make([]createRecord, 0, len(records)),
		Typecast: typecast,
	}
	for _, f := range records {
		body.Records = append(body.Records, createRecord{Fields: f})
	}

	var resp recordsResponse
	if err := c.do(ctx, http.MethodPost, c.tableURL(table), body, &resp); err != nil {
		return nil, writeError(table, "create", err)
	}

	return resp.Records, nil
}

func (c *Client) Update(ctx context.Context, table string, records []destination.Record) ([]destination.Record, error) {
	if len(records) > destination.BatchSize {
		return nil, errors.Errorf("airtable: update aceita no máximo %d registros, recebeu %d", destination.BatchSize, len(records))
	}

	body := updateRequest{Records: make([]destination.Record, 0, len(records))}
	for _, r := range records {
		body.Records = append(body.Records, destination.Record{ID: r.ID, Fields: r.Fields})
	}

	var resp recordsResponse
	if err := c.do(ctx, http.MethodPatch, c.tableURL(table), body, &resp); err != nil {
		return nil, writeError(table, "update", err)
	}

	return resp.Records, nil
}

func (c *Client) tableURL(table string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.baseID, url.PathEscape(table))
}

// apiError guarda a resposta de erro do Airtable sem alteração
type apiError struct {
	StatusCode int
	Body       string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("airtable respondeu %d: %s", e.StatusCode, e.Body)
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "erro ao serializar a requisição")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &apiError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return nil
}

func writeError(table, op string, err error) error {
	writeErr := &domain.DestinationWriteError{Table: table, Op: op, Err: err}

	var apiErr *apiError
	if errors.As(err, &apiErr) {
		writeErr.StatusCode = apiErr.StatusCode
	}

	return writeErr
}
