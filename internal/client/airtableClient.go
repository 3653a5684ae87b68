package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jimothydawson/phoebe-fund/internal/config"
	"github.com/jimothydawson/phoebe-fund/internal/model"
)

// RecordStore is the external spreadsheet-backed datastore holding order and
// subscriber rows. It offers no multi-record transaction: every create is an
// independent HTTP call.
type RecordStore interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	ListOrders(ctx context.Context) ([]*model.Order, error)
	CountOrdersByPaymentID(ctx context.Context, paymentID string) (int, error)
	CreateSubscriber(ctx context.Context, sub *model.Subscriber) error
}

type airtableClientImpl struct {
	httpClient       *http.Client
	baseApiURL       string
	apiKey           string
	baseID           string
	ordersTable      string
	subscribersTable string
}

func NewAirtableClient(cfg *config.Airtable) RecordStore {
	return &airtableClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL:       cfg.BaseApiURL,
		apiKey:           cfg.APIKey,
		baseID:           cfg.BaseID,
		ordersTable:      cfg.OrdersTable,
		subscribersTable: cfg.SubscribersTable,
	}
}

type airtableRecord struct {
	ID          string         `json:"id,omitempty"`
	CreatedTime string         `json:"createdTime,omitempty"`
	Fields      map[string]any `json:"fields"`
}

type airtableList struct {
	Records []airtableRecord `json:"records"`
}

func (c *airtableClientImpl) tableURL(table string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseApiURL, c.baseID, url.PathEscape(table))
}

func (c *airtableClientImpl) createRecord(ctx context.Context, table string, fields map[string]any) error {
	body, err := json.Marshal(map[string]any{"fields": fields})
	if err != nil {
		return fmt.Errorf("marshal record fields: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tableURL(table), bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("airtable error %d: %s", resp.StatusCode, string(b))
	}

	return nil
}

func (c *airtableClientImpl) listRecords(ctx context.Context, table string, query url.Values) (*airtableList, error) {
	reqURL := c.tableURL(table)
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("airtable error %d: %s", resp.StatusCode, string(b))
	}

	var list airtableList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode airtable response: %w", err)
	}

	return &list, nil
}

// CreateOrder writes one order row. The style column is literally named
// "Sex" in the store's schema; the mapping here is the only place that
// naming leaks into the codebase.
func (c *airtableClientImpl) CreateOrder(ctx context.Context, order *model.Order) error {
	return c.createRecord(ctx, c.ordersTable, map[string]any{
		"Name":              order.Name,
		"Email":             order.Email,
		"Sex":               order.Style,
		"Size":              order.Size,
		"Stripe Payment ID": order.PaymentID,
		"Amount":            order.Amount,
		"Payment Status":    order.Status,
	})
}

func (c *airtableClientImpl) ListOrders(ctx context.Context) ([]*model.Order, error) {
	query := url.Values{}
	query.Set("sort[0][field]", "Order Date")
	query.Set("sort[0][direction]", "desc")

	list, err := c.listRecords(ctx, c.ordersTable, query)
	if err != nil {
		return nil, err
	}

	orders := make([]*model.Order, 0, len(list.Records))
	for _, rec := range list.Records {
		orders = append(orders, orderFromRecord(rec))
	}

	return orders, nil
}

func (c *airtableClientImpl) CountOrdersByPaymentID(ctx context.Context, paymentID string) (int, error) {
	query := url.Values{}
	query.Set("filterByFormula", fmt.Sprintf("{Stripe Payment ID} = %q", paymentID))
	query.Set("fields[]", "Stripe Payment ID")

	list, err := c.listRecords(ctx, c.ordersTable, query)
	if err != nil {
		return 0, err
	}

	return len(list.Records), nil
}

func (c *airtableClientImpl) CreateSubscriber(ctx context.Context, sub *model.Subscriber) error {
	return c.createRecord(ctx, c.subscribersTable, map[string]any{
		"Email":  sub.Email,
		"Source": sub.Source,
	})
}

func orderFromRecord(rec airtableRecord) *model.Order {
	order := &model.Order{
		ID:        rec.ID,
		Name:      stringField(rec.Fields, "Name"),
		Email:     stringField(rec.Fields, "Email"),
		Style:     stringField(rec.Fields, "Sex"),
		Size:      stringField(rec.Fields, "Size"),
		PaymentID: stringField(rec.Fields, "Stripe Payment ID"),
		Status:    model.StatusPending,
		Date:      rec.CreatedTime,
	}

	if status := stringField(rec.Fields, "Payment Status"); status != "" {
		order.Status = status
	}
	if date := stringField(rec.Fields, "Order Date"); date != "" {
		order.Date = date
	}
	if amount, ok := rec.Fields["Amount"].(float64); ok {
		order.Amount = amount
	}

	return order
}

func stringField(fields map[string]any, key string) string {
	value, _ := fields[key].(string)
	return value
}
