// Package provider holds the catalog-neutral product shape shared by the
// food lookup clients.
package provider

import (
	"errors"
	"fmt"
	"maps"
	"strconv"

	"github.com/saadjs/fittrack-cli/internal/model"
)

var ErrNotFound = errors.New("no matching food found")

// Product is the nutrition of one catalog item. Nutrient values are per
// serving when the catalog provides them, per 100 g otherwise.
type Product struct {
	Code           string
	Name           string
	Brand          string
	ServingAmount  float64
	ServingUnit    string
	Calories       float64
	ProteinG       float64
	CarbsG         float64
	FatG           float64
	Micronutrients map[string]float64
}

// Food converts p into a model.Food with the given id.
func (p Product) Food(id string) model.Food {
	name := p.Name
	if p.Brand != "" {
		name = fmt.Sprintf("%s (%s)", p.Name, p.Brand)
	}
	var micros map[string]float64
	if len(p.Micronutrients) > 0 {
		micros = maps.Clone(p.Micronutrients)
	}
	return model.Food{
		ID:       id,
		Name:     name,
		Portion:  strconv.FormatFloat(p.ServingAmount, 'f', -1, 64) + " " + p.ServingUnit,
		Calories: p.Calories,
		Macros: model.Macros{
			ProteinG: p.ProteinG,
			CarbsG:   p.CarbsG,
			FatsG:    p.FatG,
		},
		Micronutrients: micros,
	}
}
