package fittrack

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/service"
	"github.com/saadjs/fittrack-cli/internal/store"
)

var (
	profileName         string
	profileAge          int
	profileGender       string
	profileHeight       float64
	profileWeight       float64
	profileBodyType     string
	profileGoal         string
	profileFitness      string
	profileCalories     int
	profileAllergies    []string
	profileHealthIssues []string
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Create your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			p, err := service.Onboard(s.stores, service.OnboardInput{
				Name:                 profileName,
				Age:                  profileAge,
				Gender:               profileGender,
				HeightCm:             profileHeight,
				WeightKg:             profileWeight,
				BodyType:             profileBodyType,
				GoalPhysique:         profileGoal,
				FitnessLevel:         profileFitness,
				CurrentCaloriesCount: profileCalories,
				Allergies:            profileAllergies,
				HealthIssues:         profileHealthIssues,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! Profile %s created\n", p.Name, p.ID)
			return nil
		})
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show and edit your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			p, err := service.Profile(s.stores)
			if err != nil {
				return err
			}
			printProfile(cmd.OutOrStdout(), p)
			return nil
		})
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.ProfileUpdateInput{
			Name:                 stringFlag(cmd, "name", profileName),
			Age:                  intFlag(cmd, "age", profileAge),
			Gender:               stringFlag(cmd, "gender", profileGender),
			HeightCm:             floatFlag(cmd, "height", profileHeight),
			WeightKg:             floatFlag(cmd, "weight", profileWeight),
			BodyType:             stringFlag(cmd, "body-type", profileBodyType),
			GoalPhysique:         stringFlag(cmd, "goal", profileGoal),
			FitnessLevel:         stringFlag(cmd, "fitness-level", profileFitness),
			CurrentCaloriesCount: intFlag(cmd, "calories", profileCalories),
		}
		if in == (service.ProfileUpdateInput{}) {
			return fmt.Errorf("set at least one flag")
		}
		return withState(cmd, func(s *session) error {
			p, err := service.UpdateProfile(s.stores, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated profile %s\n", p.ID)
			return nil
		})
	},
}

func profileListCmd(use, label string, add, remove func(*store.Stores, string) error) *cobra.Command {
	parent := &cobra.Command{Use: use, Short: "Manage " + label + " entries"}
	parent.AddCommand(
		&cobra.Command{
			Use:   "add <value>",
			Short: "Add to " + label + " list",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withState(cmd, func(s *session) error {
					if err := add(s.stores, args[0]); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q\n", label, strings.TrimSpace(args[0]))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "remove <value>",
			Short: "Remove from " + label + " list",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withState(cmd, func(s *session) error {
					if err := remove(s.stores, args[0]); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Removed %s %q\n", label, strings.TrimSpace(args[0]))
					return nil
				})
			},
		},
	)
	return parent
}

func printProfile(w io.Writer, p model.UserProfile) {
	fmt.Fprintf(w, "ID: %s\n", p.ID)
	fmt.Fprintf(w, "Name: %s\n", p.Name)
	fmt.Fprintf(w, "Age: %d\n", p.Age)
	fmt.Fprintf(w, "Gender: %s\n", p.Gender)
	fmt.Fprintf(w, "Height: %s cm\n", formatFloat(p.HeightCm))
	fmt.Fprintf(w, "Weight: %s kg\n", formatFloat(p.WeightKg))
	fmt.Fprintf(w, "Body type: %s\n", p.BodyType)
	fmt.Fprintf(w, "Goal physique: %s\n", p.GoalPhysique)
	fmt.Fprintf(w, "Fitness level: %s\n", p.FitnessLevel)
	fmt.Fprintf(w, "Current calories: %d\n", p.CurrentCaloriesCount)
	fmt.Fprintf(w, "Allergies: %s\n", joinOrNone(p.Allergies))
	fmt.Fprintf(w, "Health issues: %s\n", joinOrNone(p.HealthIssues))
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}

func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&profileName, "name", "", "Display name")
	cmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	cmd.Flags().StringVar(&profileGender, "gender", "", "Gender (male|female|other)")
	cmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	cmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	cmd.Flags().StringVar(&profileBodyType, "body-type", "", "Body type (ectomorph|mesomorph|endomorph)")
	cmd.Flags().StringVar(&profileGoal, "goal", "", "Goal physique (classic_physique|mens_physique|womens_physique|powerlifter|bodybuilder|general_fitness|hybrid_training|crossfit)")
	cmd.Flags().StringVar(&profileFitness, "fitness-level", "", "Fitness level (beginner|intermediate|advanced)")
	cmd.Flags().IntVar(&profileCalories, "calories", 0, "Current daily calorie intake")
}

func init() {
	rootCmd.AddCommand(onboardCmd, profileCmd)
	profileCmd.AddCommand(
		profileShowCmd,
		profileUpdateCmd,
		profileListCmd("allergy", "allergy", service.AddAllergy, service.RemoveAllergy),
		profileListCmd("health-issue", "health issue", service.AddHealthIssue, service.RemoveHealthIssue),
	)

	addProfileFlags(onboardCmd)
	onboardCmd.Flags().StringSliceVar(&profileAllergies, "allergy", nil, "Allergy (repeatable)")
	onboardCmd.Flags().StringSliceVar(&profileHealthIssues, "health-issue", nil, "Health issue (repeatable)")
	_ = onboardCmd.MarkFlagRequired("name")

	addProfileFlags(profileUpdateCmd)
}
