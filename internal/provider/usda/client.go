// Package usda searches USDA FoodData Central. An API key from
// https://api.data.gov/signup/ is required.
package usda

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/saadjs/fittrack-cli/internal/provider"
)

const defaultBaseURL = "https://api.nal.usda.gov"

type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// LookupBarcode searches branded foods for barcode and prefers an exact
// GTIN/UPC match over the first hit.
func (c *Client) LookupBarcode(ctx context.Context, barcode string) (provider.Product, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return provider.Product{}, fmt.Errorf("barcode is required")
	}
	foods, err := c.search(ctx, barcode, 20, []string{"Branded"})
	if err != nil {
		return provider.Product{}, fmt.Errorf("lookup barcode %q: %w", barcode, err)
	}
	food, ok := selectBarcodeMatch(foods, barcode)
	if !ok {
		return provider.Product{}, fmt.Errorf("barcode %q: %w", barcode, provider.ErrNotFound)
	}
	p := food.product()
	p.Code = barcode
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
	foods, err := c.search(ctx, query, limit, nil)
	if err != nil {
		return nil, fmt.Errorf("search foods %q: %w", query, err)
	}
	out := make([]provider.Product, 0, len(foods))
	for _, f := range foods {
		if strings.TrimSpace(f.Description) == "" {
			continue
		}
		out = append(out, f.product())
		if len(out) == limit {
			break
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("query %q: %w", query, provider.ErrNotFound)
	}
	return out, nil
}

func (c *Client) search(ctx context.Context, query string, pageSize int, dataTypes []string) ([]usdaFood, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return nil, fmt.Errorf("missing USDA API key")
	}
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	reqBody := map[string]any{"query": query, "pageSize": pageSize}
	if len(dataTypes) > 0 {
		reqBody["dataType"] = dataTypes
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal USDA search payload: %w", err)
	}

	endpoint := base + "/fdc/v1/foods/search?api_key=" + url.QueryEscape(c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create USDA request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute USDA request: %w", err)
	}
	defer resp.Body.Close()
	log.WithFields(log.Fields{"query": query, "status": resp.StatusCode, "took": time.Since(start)}).Debug("usda request")

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read USDA response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("USDA request failed with status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode USDA response: %w", err)
	}
	return parsed.Foods, nil
}

func selectBarcodeMatch(foods []usdaFood, barcode string) (usdaFood, bool) {
	for _, f := range foods {
		if strings.TrimSpace(f.GTINUPC) == barcode {
			return f, true
		}
	}
	if len(foods) > 0 {
		return foods[0], true
	}
	return usdaFood{}, false
}

type searchResponse struct {
	Foods []usdaFood `json:"foods"`
}

type usdaFood struct {
	FDCID           int64          `json:"fdcId"`
	Description     string         `json:"description"`
	BrandOwner      string         `json:"brandOwner"`
	GTINUPC         string         `json:"gtinUpc"`
	ServingSize     float64        `json:"servingSize"`
	ServingSizeUnit string         `json:"servingSizeUnit"`
	FoodNutrients   []usdaNutrient `json:"foodNutrients"`
}

type usdaNutrient struct {
	NutrientName string  `json:"nutrientName"`
	UnitName     string  `json:"unitName"`
	Value        float64 `json:"value"`
}

// product maps search nutrients onto provider.Product. Search values are per
// 100 g, so foods without a serving size report a 100 g portion.
func (f usdaFood) product() provider.Product {
	out := provider.Product{
		Code:           strings.TrimSpace(f.GTINUPC),
		Name:           strings.TrimSpace(f.Description),
		Brand:          strings.TrimSpace(f.BrandOwner),
		ServingAmount:  f.ServingSize,
		ServingUnit:    strings.ToLower(strings.TrimSpace(f.ServingSizeUnit)),
		Micronutrients: map[string]float64{},
	}
	if out.ServingAmount <= 0 || out.ServingUnit == "" {
		out.ServingAmount, out.ServingUnit = 100, "g"
	}
	for _, n := range f.FoodNutrients {
		switch strings.ToLower(strings.TrimSpace(n.NutrientName)) {
		case "energy":
			if u := strings.ToLower(n.UnitName); u == "" || u == "kcal" {
				out.Calories = n.Value
			}
		case "protein":
			out.ProteinG = n.Value
		case "carbohydrate, by difference":
			out.CarbsG = n.Value
		case "total lipid (fat)":
			out.FatG = n.Value
		default:
			if key, ok := micronutrientKey(n.NutrientName, n.UnitName); ok {
				out.Micronutrients[key] = n.Value
			}
		}
	}
	return out
}

var minerals = []string{"iron", "calcium", "potassium", "zinc", "magnesium", "phosphorus", "selenium", "copper", "manganese", "sodium"}

// micronutrientKey turns "Vitamin C, total ascorbic acid" + "MG" into
// "vitamin_c_total_ascorbic_acid_mg". Non vitamins and minerals are skipped.
func micronutrientKey(name, unit string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	unit = strings.ToLower(strings.TrimSpace(unit))
	if lower == "" || unit == "" {
		return "", false
	}
	keep := strings.Contains(lower, "vitamin")
	for _, m := range minerals {
		keep = keep || strings.Contains(lower, m)
	}
	if !keep {
		return "", false
	}
	clean := strings.NewReplacer(",", "", "(", "", ")", "", "-", "_", " ", "_").Replace(lower)
	for strings.Contains(clean, "__") {
		clean = strings.ReplaceAll(clean, "__", "_")
	}
	clean = strings.Trim(clean, "_")
	if clean == "" {
		return "", false
	}
	return clean + "_" + unit, true
}
