// Package openfoodfacts looks up packaged foods in the Open Food Facts
// catalog.
package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/saadjs/fittrack-cli/internal/provider"
)

const (
	defaultBaseURL = "https://world.openfoodfacts.org"
	userAgent      = "fittrack-cli/1.0 (+https://github.com/saadjs/fittrack-cli)"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func (c *Client) LookupBarcode(ctx context.Context, barcode string) (provider.Product, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return provider.Product{}, fmt.Errorf("barcode is required")
	}
	var parsed offResponse
	if err := c.getJSON(ctx, "/api/v2/product/"+url.PathEscape(barcode)+".json", nil, &parsed); err != nil {
		return provider.Product{}, fmt.Errorf("lookup barcode %q: %w", barcode, err)
	}
	if parsed.Status != 1 || strings.TrimSpace(parsed.Product.ProductName) == "" {
		return provider.Product{}, fmt.Errorf("barcode %q: %w", barcode, provider.ErrNotFound)
	}
	p := parsed.Product.product()
	if p.Code == "" {
		p.Code = barcode
	}
	return p, nil
}

func (c *Client) SearchFoods(ctx context.Context, query string, limit int) ([]provider.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}
	if limit <= 0 {
		limit = 10
	}
	params := url.Values{}
	params.Set("search_terms", query)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("page_size", strconv.Itoa(limit))

	var parsed offSearchResponse
	if err := c.getJSON(ctx, "/cgi/search.pl", params, &parsed); err != nil {
		return nil, fmt.Errorf("search foods %q: %w", query, err)
	}
	out := make([]provider.Product, 0, len(parsed.Products))
	for _, p := range parsed.Products {
		if strings.TrimSpace(p.ProductName) == "" {
			continue
		}
		out = append(out, p.product())
		if len(out) == limit {
			break
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("query %q: %w", query, provider.ErrNotFound)
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, dst any) error {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	u := base + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create openfoodfacts request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute openfoodfacts request: %w", err)
	}
	defer resp.Body.Close()
	log.WithFields(log.Fields{"url": u, "status": resp.StatusCode, "took": time.Since(start)}).Debug("openfoodfacts request")

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read openfoodfacts response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return provider.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("openfoodfacts request failed with status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode openfoodfacts response: %w", err)
	}
	return nil
}

func nutrientValue(n map[string]any, base string) float64 {
	for _, key := range []string{base + "_serving", base + "_100g"} {
		if v, ok := parseFloatAny(n[key]); ok {
			return v
		}
	}
	return 0
}

func parseFloatAny(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

var mineralsAndVitamins = []string{
	"vitamin", "iron", "calcium", "potassium", "magnesium",
	"zinc", "phosphorus", "selenium", "copper", "sodium",
}

// parseMicronutrients keeps vitamins and minerals keyed by snake_case name.
// Serving values win over per-100g values.
func parseMicronutrients(n map[string]any) map[string]float64 {
	out := map[string]float64{}
	perServing := map[string]bool{}
	for key, raw := range n {
		lower := strings.ToLower(key)
		serving := strings.HasSuffix(lower, "_serving")
		if !serving && !strings.HasSuffix(lower, "_100g") {
			continue
		}
		base := strings.TrimSuffix(strings.TrimSuffix(lower, "_serving"), "_100g")
		if !containsAny(base, mineralsAndVitamins) {
			continue
		}
		value, ok := parseFloatAny(raw)
		if !ok {
			continue
		}
		name := strings.ReplaceAll(base, "-", "_")
		if perServing[name] && !serving {
			continue
		}
		out[name] = value
		perServing[name] = perServing[name] || serving
	}
	return out
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func parseServing(p offProduct) (float64, string) {
	if p.ServingQuantity > 0 {
		unit := strings.TrimSpace(p.ServingQuantityUnit)
		if unit == "" {
			unit = "g"
		}
		return p.ServingQuantity, unit
	}
	if parts := strings.Fields(p.ServingSize); len(parts) >= 2 {
		if val, err := strconv.ParseFloat(strings.ReplaceAll(parts[0], ",", ""), 64); err == nil && val > 0 {
			return val, parts[1]
		}
	}
	return 100, "g"
}

type offResponse struct {
	Status  int        `json:"status"`
	Product offProduct `json:"product"`
}

type offSearchResponse struct {
	Products []offProduct `json:"products"`
}

type offProduct struct {
	Code                string         `json:"code"`
	ProductName         string         `json:"product_name"`
	Brands              string         `json:"brands"`
	ServingSize         string         `json:"serving_size"`
	ServingQuantity     float64        `json:"serving_quantity"`
	ServingQuantityUnit string         `json:"serving_quantity_unit"`
	Nutriments          map[string]any `json:"nutriments"`
}

func (p offProduct) product() provider.Product {
	amount, unit := parseServing(p)
	return provider.Product{
		Code:           strings.TrimSpace(p.Code),
		Name:           strings.TrimSpace(p.ProductName),
		Brand:          strings.TrimSpace(p.Brands),
		ServingAmount:  amount,
		ServingUnit:    unit,
		Calories:       nutrientValue(p.Nutriments, "energy-kcal"),
		ProteinG:       nutrientValue(p.Nutriments, "proteins"),
		CarbsG:         nutrientValue(p.Nutriments, "carbohydrates"),
		FatG:           nutrientValue(p.Nutriments, "fat"),
		Micronutrients: parseMicronutrients(p.Nutriments),
	}
}
