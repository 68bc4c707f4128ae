package sheet

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	domainerrors "tensio/contexts/vitals/ingestion-service/domain/errors"
	"tensio/contexts/vitals/ingestion-service/ports"
)

const (
	defaultAttempts = 4
	baseBackoff     = 500 * time.Millisecond
)

// Client fetches the measurement table from a cloud spreadsheet published
// as a CSV export URL. Rate-limit (429) and server-side (5xx) responses are
// retried with capped backoff; client errors fail immediately.
type Client struct {
	URL      string
	APIKey   string
	HTTP     *http.Client
	Attempts int
}

func (c Client) Name() string {
	return "sheet:" + c.URL
}

func (c Client) Read(ctx context.Context) (ports.RawTable, error) {
	client := c.HTTP
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	attempts := c.Attempts
	if attempts <= 0 {
		attempts = defaultAttempts
	}

	var lastStatus int
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			backoff := baseBackoff << (attempt - 1)
			select {
			case <-ctx.Done():
				return ports.RawTable{}, ctx.Err()
			case <-time.After(backoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
		if err != nil {
			return ports.RawTable{}, fmt.Errorf("%w: %v", domainerrors.ErrSourceUnavailable, err)
		}
		if c.APIKey != "" {
			req.Header.Set("X-Api-Key", c.APIKey)
		}

		resp, err := client.Do(req)
		if err != nil {
			lastStatus = 0
			continue
		}
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastStatus = resp.StatusCode
			resp.Body.Close()
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return ports.RawTable{}, fmt.Errorf("%w: sheet fetch returned %d",
				domainerrors.ErrSourceUnavailable, resp.StatusCode)
		}

		table, err := decodeCSV(resp)
		resp.Body.Close()
		if err != nil {
			return ports.RawTable{}, err
		}
		return table, nil
	}
	return ports.RawTable{}, fmt.Errorf("%w: sheet fetch gave up after %d attempts (last status %d)",
		domainerrors.ErrSourceUnavailable, attempts, lastStatus)
}

func decodeCSV(resp *http.Response) (ports.RawTable, error) {
	reader := csv.NewReader(resp.Body)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return ports.RawTable{}, fmt.Errorf("%w: decode sheet csv: %v", domainerrors.ErrInvalidSource, err)
	}
	if len(records) == 0 {
		return ports.RawTable{}, fmt.Errorf("%w: sheet is empty", domainerrors.ErrInvalidSource)
	}
	return ports.RawTable{Header: records[0], Rows: records[1:]}, nil
}
