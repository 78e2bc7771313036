package fittrack

import (
	"context"
	"fmt"
	"io"
	"maps"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack-cli/internal/app"
	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/provider/openfoodfacts"
	"github.com/saadjs/fittrack-cli/internal/provider/usda"
	"github.com/saadjs/fittrack-cli/internal/service"
)

const (
	lookupTimeout = 15 * time.Second
	usdaAPIKeyEnv = "FITTRACK_USDA_API_KEY"
)

var (
	foodProvider  string
	foodAddToMeal string
	foodLimit     int
	foodFormat    string
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Look up foods in Open Food Facts or USDA FoodData Central",
}

var foodBarcodeCmd = &cobra.Command{
	Use:   "barcode <code>",
	Short: "Look up a packaged food by barcode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), lookupTimeout)
			defer cancel()

			catalog, err := foodCatalog(s)
			if err != nil {
				return err
			}
			food, err := service.LookupFood(ctx, catalog, args[0])
			if err != nil {
				return err
			}
			if err := render(cmd.OutOrStdout(), foodFormat, food, func(w io.Writer) { printFood(w, food) }); err != nil {
				return err
			}
			if strings.TrimSpace(foodAddToMeal) == "" {
				return nil
			}
			plan, err := service.AddFoodToMeal(s.stores, foodAddToMeal, food)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added to meal %s; plan total %d kcal\n", foodAddToMeal, plan.TotalCalories)
			return nil
		})
	},
}

var foodSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search foods by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), lookupTimeout)
			defer cancel()

			catalog, err := foodCatalog(s)
			if err != nil {
				return err
			}
			foods, err := service.SearchFood(ctx, catalog, strings.Join(args, " "), foodLimit)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), foodFormat, foods, func(w io.Writer) {
				fmt.Fprintln(w, "NAME\tPORTION\tKCAL\tPROTEIN\tCARBS\tFATS")
				for _, f := range foods {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", f.Name, f.Portion, formatFloat(f.Calories),
						formatFloat(f.Macros.ProteinG), formatFloat(f.Macros.CarbsG), formatFloat(f.Macros.FatsG))
				}
			})
		})
	},
}

// foodCatalog picks the lookup backend from --provider, then config.
func foodCatalog(s *session) (service.FoodCatalog, error) {
	httpClient := &http.Client{Timeout: lookupTimeout}
	switch strings.ToLower(firstNonEmpty(foodProvider, s.cfg.FoodProvider, app.FoodProviderOpenFoodFacts)) {
	case app.FoodProviderOpenFoodFacts, "off":
		return &openfoodfacts.Client{BaseURL: s.cfg.FoodLookupURL, HTTPClient: httpClient}, nil
	case app.FoodProviderUSDA:
		key := firstNonEmpty(s.cfg.USDAAPIKey, os.Getenv(usdaAPIKeyEnv))
		if strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("missing USDA API key; run `fittrack config set usda_api_key <key>` or set %s", usdaAPIKeyEnv)
		}
		return &usda.Client{APIKey: strings.TrimSpace(key), HTTPClient: httpClient}, nil
	default:
		return nil, fmt.Errorf("unsupported food provider %q (use %s or %s)", firstNonEmpty(foodProvider, s.cfg.FoodProvider), app.FoodProviderOpenFoodFacts, app.FoodProviderUSDA)
	}
}

func printFood(w io.Writer, f model.Food) {
	fmt.Fprintf(w, "Food: %s\n", f.Name)
	fmt.Fprintf(w, "Portion: %s\n", f.Portion)
	fmt.Fprintf(w, "Calories: %s\n", formatFloat(f.Calories))
	fmt.Fprintf(w, "Protein: %sg\nCarbs: %sg\nFats: %sg\n",
		formatFloat(f.Macros.ProteinG), formatFloat(f.Macros.CarbsG), formatFloat(f.Macros.FatsG))
	for _, k := range slices.Sorted(maps.Keys(f.Micronutrients)) {
		fmt.Fprintf(w, "%s: %s\n", k, formatFloat(f.Micronutrients[k]))
	}
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodBarcodeCmd, foodSearchCmd)
	foodCmd.PersistentFlags().StringVar(&foodProvider, "provider", "", "Lookup provider (openfoodfacts|usda; default from config)")
	foodCmd.PersistentFlags().StringVar(&foodFormat, "format", "text", "Output format (text|json|yaml)")
	foodBarcodeCmd.Flags().StringVar(&foodAddToMeal, "add-to-meal", "", "Append the food to this meal of the current meal plan")
	foodSearchCmd.Flags().IntVar(&foodLimit, "limit", 10, "Maximum results")
}
