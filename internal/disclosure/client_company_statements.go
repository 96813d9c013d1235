package disclosure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// ErrDataNotList reports that the envelope's data field decoded to something
// other than a list of record objects.
var ErrDataNotList = errors.New("expected data to be a list of records")

// Envelope is the top-level response shape of the disclosure server. Data is
// kept raw because the upstream has been observed to return non-list values
// there; Records decodes it on demand.
type Envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// Records decodes the data field as a list of yearly statement records.
// Numbers are preserved as json.Number so large balances survive untruncated.
func (e *Envelope) Records() ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(e.Data))
	dec.UseNumber()
	var records []map[string]any
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataNotList, err)
	}
	return records, nil
}

// CompanyStatements retrieves the yearly financial statement records for one
// ticker. It performs a single GET with no retries; every failure comes back
// as a *FetchError tagged with its category.
func (c *APIClient) CompanyStatements(ctx context.Context, ticker string) (*Envelope, error) {
	u := fmt.Sprintf("%s/server/company/%s", c.baseURL, url.PathEscape(ticker))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, &FetchError{Kind: KindUnknown, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header = c.header.Clone()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &FetchError{
			Kind:       KindHTTPStatus,
			StatusCode: res.StatusCode,
			Err:        fmt.Errorf("%s %s -> %s", http.MethodGet, u, res.Status),
		}
	}

	var envelope Envelope
	dec := json.NewDecoder(res.Body)
	dec.UseNumber()
	if err := dec.Decode(&envelope); err != nil {
		return nil, &FetchError{Kind: KindParse, Err: fmt.Errorf("decoding response: %w", err)}
	}

	if envelope.Status != "success" || emptyData(envelope.Data) {
		status := envelope.Status
		if status == "" {
			status = "Unknown error"
		}
		return nil, &FetchError{Kind: KindAPIStatus, Status: status}
	}
	return &envelope, nil
}

// emptyData treats an absent, null or empty-list data field as no data.
func emptyData(raw json.RawMessage) bool {
	s := string(bytes.TrimSpace(raw))
	return s == "" || s == "null" || s == "[]"
}
