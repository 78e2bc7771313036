package openfoodfacts

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saadjs/fittrack-cli/internal/provider"
)

func TestLookupBarcodeParsesOpenFoodFactsResponse(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/product/12345678.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("User-Agent") != userAgent {
			t.Errorf("unexpected user agent %q", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "status": 1,
  "product": {
    "product_name": "Yogurt Cup",
    "brands": "Brand Co",
    "serving_quantity": 170,
    "serving_quantity_unit": "g",
    "nutriments": {
      "energy-kcal_serving": 120,
      "proteins_serving": 10,
      "carbohydrates_serving": 15,
      "fat_serving": 2,
      "calcium_100g": 0.1,
      "calcium_serving": 0.17,
      "vitamin-d_100g": "0.002"
    }
  }
}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	item, err := c.LookupBarcode(context.Background(), "12345678")
	if err != nil {
		t.Fatalf("lookup barcode: %v", err)
	}
	if item.Name != "Yogurt Cup" || item.Calories != 120 || item.ProteinG != 10 || item.Code != "12345678" {
		t.Fatalf("unexpected parsed item: %+v", item)
	}
	if item.Micronutrients["calcium"] != 0.17 || item.Micronutrients["vitamin_d"] != 0.002 {
		t.Fatalf("unexpected micronutrients: %+v", item.Micronutrients)
	}

	food := item.Food("f1")
	if food.ID != "f1" || food.Name != "Yogurt Cup (Brand Co)" || food.Portion != "170 g" {
		t.Fatalf("unexpected food: %+v", food)
	}
	if food.Macros.CarbsG != 15 || food.Macros.FatsG != 2 {
		t.Fatalf("unexpected food macros: %+v", food.Macros)
	}
}

func TestLookupBarcodeNotFound(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": 0}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	_, err := c.LookupBarcode(context.Background(), "000")
	if !errors.Is(err, provider.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearchFoodsSkipsUnnamedAndDefaultsServing(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search_terms"); got != "oat milk" {
			t.Errorf("unexpected search terms %q", got)
		}
		if got := r.URL.Query().Get("page_size"); got != "5" {
			t.Errorf("unexpected page size %q", got)
		}
		_, _ = w.Write([]byte(`{"products": [
  {"product_name": ""},
  {"code": "111", "product_name": "Oat Drink", "nutriments": {"energy-kcal_100g": 46}},
  {"code": "222", "product_name": "Barista Oat", "serving_size": "250 ml", "nutriments": {"energy-kcal_serving": 150}}
]}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	items, err := c.SearchFoods(context.Background(), " oat milk ", 5)
	if err != nil {
		t.Fatalf("search foods: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ServingAmount != 100 || items[0].ServingUnit != "g" || items[0].Calories != 46 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].ServingAmount != 250 || items[1].ServingUnit != "ml" {
		t.Fatalf("unexpected second item serving: %+v", items[1])
	}
}

func TestSearchFoodsServerError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	if _, err := c.SearchFoods(context.Background(), "bread", 0); err == nil {
		t.Fatalf("expected error for 502 response")
	}
}
