// Package cargo talks to a MediaWiki Cargo endpoint over HTTP. It
// implements the query gateway the typed client is built on: parameter
// assembly, pagination, response decoding, and the WHERE-clause builder
// shared by every typed query.
package cargo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/rift/pkg/types"
)

// APIError is a structured error body returned by the MediaWiki API.
type APIError struct {
	Code string
	Info string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %s: %s", e.Code, e.Info)
}

// StatusError reports a non-2xx HTTP response from the endpoint.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// Client is the HTTP gateway to a Cargo endpoint. It satisfies
// types.Gateway and is safe for concurrent use.
type Client struct {
	baseURL   string
	userAgent string
	pageSize  int
	http      *http.Client
}

// NewClient builds a gateway from a validated Config.
func NewClient(cfg types.Config) *Client {
	pageSize := cfg.PageSize
	if pageSize < 1 || pageSize > types.MaxPageSize {
		pageSize = types.DefaultPageSize
	}
	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		pageSize:  pageSize,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

type cargoResponse struct {
	CargoQuery []struct {
		Title map[string]string `json:"title"`
	} `json:"cargoquery"`
	Error *apiErrorBody `json:"error"`
}

type imageInfoResponse struct {
	Query struct {
		Pages map[string]struct {
			Title     string `json:"title"`
			ImageInfo []struct {
				URL string `json:"url"`
			} `json:"imageinfo"`
		} `json:"pages"`
	} `json:"query"`
	Error *apiErrorBody `json:"error"`
}

type apiErrorBody struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// Query runs q against the endpoint, requesting pageSize rows at a time
// until a page comes back short. A full final page costs one extra
// request that returns no rows; that is the price of not trusting the
// server to report totals. Returns an empty, non-nil slice when nothing
// matches.
func (c *Client) Query(ctx context.Context, q types.CargoQuery) ([]types.Row, error) {
	pageSize := c.pageSize
	if q.Limit > 0 && q.Limit < pageSize {
		pageSize = q.Limit
	}

	rows := make([]types.Row, 0)
	offset := 0
	for {
		batch, err := c.queryPage(ctx, q, pageSize, offset)
		if err != nil {
			return nil, err
		}
		rows = append(rows, batch...)
		if q.Limit > 0 && len(rows) >= q.Limit {
			return rows[:q.Limit], nil
		}
		if len(batch) < pageSize {
			return rows, nil
		}
		offset += len(batch)
	}
}

func (c *Client) queryPage(ctx context.Context, q types.CargoQuery, limit, offset int) ([]types.Row, error) {
	params := url.Values{}
	params.Set("action", "cargoquery")
	params.Set("format", "json")
	params.Set("tables", strings.Join(q.Tables, ","))
	params.Set("fields", strings.Join(q.Fields, ","))
	if q.Where != "" {
		params.Set("where", q.Where)
	}
	if q.JoinOn != "" {
		params.Set("join_on", q.JoinOn)
	}
	if q.OrderBy != "" {
		params.Set("order_by", q.OrderBy)
	}
	if q.GroupBy != "" {
		params.Set("group_by", q.GroupBy)
	}
	params.Set("limit", strconv.Itoa(limit))
	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}

	var envelope cargoResponse
	if err := c.get(ctx, params, &envelope); err != nil {
		return nil, err
	}
	if envelope.Error != nil {
		return nil, &APIError{Code: envelope.Error.Code, Info: envelope.Error.Info}
	}

	rows := make([]types.Row, 0, len(envelope.CargoQuery))
	for _, item := range envelope.CargoQuery {
		rows = append(rows, normalizeRow(item.Title))
	}
	return rows, nil
}

// ImageInfo resolves file page titles to URLs via action=query. The
// result maps the title as the server reports it; titles the wiki does
// not know are simply absent.
func (c *Client) ImageInfo(ctx context.Context, titles ...string) (map[string]string, error) {
	urls := make(map[string]string, len(titles))
	if len(titles) == 0 {
		return urls, nil
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("prop", "imageinfo")
	params.Set("iiprop", "url")
	params.Set("titles", strings.Join(titles, "|"))

	var envelope imageInfoResponse
	if err := c.get(ctx, params, &envelope); err != nil {
		return nil, err
	}
	if envelope.Error != nil {
		return nil, &APIError{Code: envelope.Error.Code, Info: envelope.Error.Info}
	}

	for _, page := range envelope.Query.Pages {
		if len(page.ImageInfo) == 0 {
			continue
		}
		urls[page.Title] = page.ImageInfo[0].URL
	}
	return urls, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID())

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// requestID tags each outgoing request for server-side correlation.
// UUIDv7 sorts by time; fall back to v4 if the clock misbehaves.
func requestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// normalizeRow restores underscores in response column names. The API
// serves underscored columns such as DateTime_UTC with spaces unless
// the query aliased them; mapping back here keeps row keys aligned
// with the column names the schemas declare.
func normalizeRow(title map[string]string) types.Row {
	row := make(types.Row, len(title))
	for k, v := range title {
		row[strings.ReplaceAll(k, " ", "_")] = v
	}
	return row
}
