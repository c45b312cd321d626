package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/damon-houk/nbp-pokeapi-console/internal/domain/entity"
	"github.com/shopspring/decimal"
)

const (
	// DefaultNBPBaseURL is the public NBP exchange rate API
	DefaultNBPBaseURL = "https://api.nbp.pl/api/exchangerates"

	// DateLayout is the date format used in NBP paths and payloads
	DateLayout = "2006-01-02"
)

// NBPClient talks to the National Bank of Poland exchange rate API
type NBPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewNBPClient creates a new NBP client. An empty baseURL selects the public
// API and a nil httpClient gets a client with a 10 second timeout.
func NewNBPClient(baseURL string, httpClient *http.Client) *NBPClient {
	return &NBPClient{
		baseURL:    trimBaseURL(baseURL, DefaultNBPBaseURL),
		httpClient: defaultHTTPClient(httpClient),
	}
}

// nbpRatesResponse represents /rates/{table}/{code}/... payloads
type nbpRatesResponse struct {
	Table    string `json:"table"`
	Currency string `json:"currency"`
	Code     string `json:"code"`
	Rates    []struct {
		No            string              `json:"no"`
		EffectiveDate string              `json:"effectiveDate"`
		Mid           decimal.NullDecimal `json:"mid"`
	} `json:"rates"`
}

// nbpTableResponse represents one element of the /tables/{table}/ array
type nbpTableResponse struct {
	Table         string `json:"table"`
	No            string `json:"no"`
	EffectiveDate string `json:"effectiveDate"`
	Rates         []struct {
		Currency string `json:"currency"`
		Code     string `json:"code"`
	} `json:"rates"`
}

// FetchLatestRate retrieves the most recent mid rate for a currency from one table
func (c *NBPClient) FetchLatestRate(ctx context.Context, table entity.Table, code entity.CurrencyCode) (*entity.ExchangeRatePoint, error) {
	reqURL := fmt.Sprintf("%s/rates/%s/%s/?format=json",
		c.baseURL,
		url.PathEscape(string(table)),
		url.PathEscape(code.String()))

	points, err := c.fetchRates(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, malformed("no rates returned for %s in table %s", code, table)
	}

	latest := points[len(points)-1]
	return &latest, nil
}

// FetchRatesForPeriod retrieves the mid rates published between start and end inclusive
func (c *NBPClient) FetchRatesForPeriod(ctx context.Context, table entity.Table, code entity.CurrencyCode, start, end time.Time) ([]entity.ExchangeRatePoint, error) {
	reqURL := fmt.Sprintf("%s/rates/%s/%s/%s/%s/?format=json",
		c.baseURL,
		url.PathEscape(string(table)),
		url.PathEscape(code.String()),
		start.Format(DateLayout),
		end.Format(DateLayout))

	return c.fetchRates(ctx, reqURL)
}

// FetchTableCodes retrieves the currency codes listed in the latest table
func (c *NBPClient) FetchTableCodes(ctx context.Context, table entity.Table) ([]entity.CurrencyCode, error) {
	reqURL := fmt.Sprintf("%s/tables/%s/?format=json", c.baseURL, url.PathEscape(string(table)))

	var tables []nbpTableResponse
	if err := getJSON(ctx, c.httpClient, reqURL, &tables); err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return nil, malformed("empty table listing for table %s", table)
	}
	if tables[0].Rates == nil {
		return nil, malformed("missing rates in table %s", table)
	}

	codes := make([]entity.CurrencyCode, 0, len(tables[0].Rates))
	for _, r := range tables[0].Rates {
		if r.Code == "" {
			return nil, malformed("missing currency code in table %s", table)
		}
		codes = append(codes, entity.NormalizeCurrencyCode(r.Code))
	}

	return codes, nil
}

func (c *NBPClient) fetchRates(ctx context.Context, reqURL string) ([]entity.ExchangeRatePoint, error) {
	var nbpResp nbpRatesResponse
	if err := getJSON(ctx, c.httpClient, reqURL, &nbpResp); err != nil {
		return nil, err
	}

	// A present but empty array is a valid answer; a missing one is not
	if nbpResp.Rates == nil {
		return nil, malformed("missing rates in response from %s", reqURL)
	}

	points := make([]entity.ExchangeRatePoint, 0, len(nbpResp.Rates))
	for _, r := range nbpResp.Rates {
		if !r.Mid.Valid {
			return nil, malformed("missing mid rate for %s", r.EffectiveDate)
		}

		date, err := time.Parse(DateLayout, r.EffectiveDate)
		if err != nil {
			return nil, malformed("failed to parse effective date '%s': %v", r.EffectiveDate, err)
		}

		points = append(points, entity.ExchangeRatePoint{
			Date: date,
			Mid:  r.Mid.Decimal,
		})
	}

	return points, nil
}
