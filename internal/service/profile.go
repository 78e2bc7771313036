package service

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/saadjs/fittrack-cli/internal/formula"
	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/store"
)

type OnboardInput struct {
	Name                 string   `validate:"required"`
	Age                  int      `validate:"gte=1,lte=120"`
	Gender               string   `validate:"oneof=male female other"`
	HeightCm             float64  `validate:"gt=0"`
	WeightKg             float64  `validate:"gt=0"`
	BodyType             string   `validate:"oneof=ectomorph mesomorph endomorph"`
	GoalPhysique         string   `validate:"oneof=classic_physique mens_physique womens_physique powerlifter bodybuilder general_fitness hybrid_training crossfit"`
	FitnessLevel         string   `validate:"oneof=beginner intermediate advanced"`
	CurrentCaloriesCount int      `validate:"gte=0"`
	Allergies            []string `validate:"dive,required"`
	HealthIssues         []string `validate:"dive,required"`
}

// ProfileUpdateInput carries the fields to change; nil leaves a field as is.
type ProfileUpdateInput struct {
	Name                 *string
	Age                  *int     `validate:"omitempty,gte=1,lte=120"`
	Gender               *string  `validate:"omitempty,oneof=male female other"`
	HeightCm             *float64 `validate:"omitempty,gt=0"`
	WeightKg             *float64 `validate:"omitempty,gt=0"`
	BodyType             *string  `validate:"omitempty,oneof=ectomorph mesomorph endomorph"`
	GoalPhysique         *string  `validate:"omitempty,oneof=classic_physique mens_physique womens_physique powerlifter bodybuilder general_fitness hybrid_training crossfit"`
	FitnessLevel         *string  `validate:"omitempty,oneof=beginner intermediate advanced"`
	CurrentCaloriesCount *int     `validate:"omitempty,gte=0"`
}

// Onboard creates the profile and completes onboarding. Running it again
// replaces the profile but keeps its id.
func Onboard(st *store.Stores, in OnboardInput) (model.UserProfile, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Allergies = trimAll(in.Allergies)
	in.HealthIssues = trimAll(in.HealthIssues)
	if err := validateInput(in); err != nil {
		return model.UserProfile{}, err
	}

	id := formula.NewID()
	if existing, ok := st.User.Profile(); ok {
		id = existing.ID
	}
	p := model.UserProfile{
		ID:                   id,
		Name:                 in.Name,
		Age:                  in.Age,
		Gender:               model.Gender(in.Gender),
		HeightCm:             in.HeightCm,
		WeightKg:             in.WeightKg,
		BodyType:             model.BodyType(in.BodyType),
		GoalPhysique:         model.GoalPhysique(in.GoalPhysique),
		CurrentCaloriesCount: in.CurrentCaloriesCount,
		Allergies:            in.Allergies,
		HealthIssues:         in.HealthIssues,
		FitnessLevel:         model.FitnessLevel(in.FitnessLevel),
	}
	st.User.SetProfile(p)
	st.User.CompleteOnboarding()
	log.WithField("profile_id", id).Debug("onboarding complete")

	p, _ = st.User.Profile()
	return p, nil
}

func Profile(st *store.Stores) (model.UserProfile, error) {
	p, ok := st.User.Profile()
	if !ok || !st.User.IsOnboarded() {
		return model.UserProfile{}, ErrNotOnboarded
	}
	return p, nil
}

func UpdateProfile(st *store.Stores, in ProfileUpdateInput) (model.UserProfile, error) {
	if _, err := Profile(st); err != nil {
		return model.UserProfile{}, err
	}
	if in.Name != nil {
		in.Name = ptr(strings.TrimSpace(*in.Name))
		if *in.Name == "" {
			return model.UserProfile{}, fmt.Errorf("name cannot be empty")
		}
	}
	if err := validateInput(in); err != nil {
		return model.UserProfile{}, err
	}
	patch := model.UserProfilePatch{
		Name:                 in.Name,
		Age:                  in.Age,
		HeightCm:             in.HeightCm,
		WeightKg:             in.WeightKg,
		CurrentCaloriesCount: in.CurrentCaloriesCount,
	}
	if in.Gender != nil {
		patch.Gender = ptr(model.Gender(*in.Gender))
	}
	if in.BodyType != nil {
		patch.BodyType = ptr(model.BodyType(*in.BodyType))
	}
	if in.GoalPhysique != nil {
		patch.GoalPhysique = ptr(model.GoalPhysique(*in.GoalPhysique))
	}
	if in.FitnessLevel != nil {
		patch.FitnessLevel = ptr(model.FitnessLevel(*in.FitnessLevel))
	}
	st.User.UpdateProfile(patch)
	p, _ := st.User.Profile()
	return p, nil
}

func AddAllergy(st *store.Stores, allergy string) error {
	return editProfileList(st, "allergy", allergy, st.User.AddAllergy, true)
}

func RemoveAllergy(st *store.Stores, allergy string) error {
	return editProfileList(st, "allergy", allergy, st.User.RemoveAllergy, false)
}

func AddHealthIssue(st *store.Stores, issue string) error {
	return editProfileList(st, "health issue", issue, st.User.AddHealthIssue, true)
}

func RemoveHealthIssue(st *store.Stores, issue string) error {
	return editProfileList(st, "health issue", issue, st.User.RemoveHealthIssue, false)
}

func editProfileList(st *store.Stores, kind, value string, apply func(string) bool, add bool) error {
	if _, err := Profile(st); err != nil {
		return err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%s is required", kind)
	}
	if apply(value) {
		return nil
	}
	if add {
		return fmt.Errorf("%s %q is already listed", kind, value)
	}
	return fmt.Errorf("%s %q: %w", kind, value, ErrNotFound)
}

func trimAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}
