package store

import (
	"slices"

	"github.com/saadjs/fittrack-cli/internal/model"
)

type userState struct {
	profile   *model.UserProfile
	onboarded bool
}

// UserStore holds the single profile of the session and the onboarding
// latch. Allergy and health-issue lists are kept free of duplicates on
// every write path.
type UserStore struct {
	c cell[userState]
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

func (s *UserStore) Profile() (model.UserProfile, bool) {
	st := s.c.load()
	if st.profile == nil {
		return model.UserProfile{}, false
	}
	return *st.profile, true
}

func (s *UserStore) SetProfile(p model.UserProfile) {
	p = normalizeProfile(p)
	s.c.update(func(st userState) (userState, bool) {
		st.profile = &p
		return st, true
	})
}

// UpdateProfile merges patch into the current profile. It does nothing when
// no profile has been set.
func (s *UserStore) UpdateProfile(patch model.UserProfilePatch) {
	s.c.update(func(st userState) (userState, bool) {
		if st.profile == nil {
			return st, false
		}
		next := normalizeProfile(patch.Apply(*st.profile))
		st.profile = &next
		return st, true
	})
}

func (s *UserStore) IsOnboarded() bool {
	return s.c.load().onboarded
}

// CompleteOnboarding flips the onboarding latch. The latch never resets.
func (s *UserStore) CompleteOnboarding() {
	s.c.update(func(st userState) (userState, bool) {
		if st.onboarded {
			return st, false
		}
		st.onboarded = true
		return st, true
	})
}

// AddAllergy reports whether the allergy was added; duplicates and calls
// without a profile are rejected.
func (s *UserStore) AddAllergy(allergy string) bool {
	return s.editList(func(p *model.UserProfile) *[]string { return &p.Allergies }, allergy, true)
}

func (s *UserStore) RemoveAllergy(allergy string) bool {
	return s.editList(func(p *model.UserProfile) *[]string { return &p.Allergies }, allergy, false)
}

func (s *UserStore) AddHealthIssue(issue string) bool {
	return s.editList(func(p *model.UserProfile) *[]string { return &p.HealthIssues }, issue, true)
}

func (s *UserStore) RemoveHealthIssue(issue string) bool {
	return s.editList(func(p *model.UserProfile) *[]string { return &p.HealthIssues }, issue, false)
}

// Subscribe registers fn to run after every committed change.
func (s *UserStore) Subscribe(fn func()) (unsubscribe func()) {
	return s.c.subscribe(func(userState) { fn() })
}

func (s *UserStore) snapshot(snap *model.Snapshot) {
	st := s.c.load()
	if st.profile != nil {
		p := *st.profile
		snap.Profile = &p
	}
	snap.IsOnboarded = st.onboarded
}

func (s *UserStore) restore(snap model.Snapshot) {
	var profile *model.UserProfile
	if snap.Profile != nil {
		p := normalizeProfile(*snap.Profile)
		profile = &p
	}
	// Onboarding is a one-way latch; a restored snapshot cannot clear it.
	s.c.update(func(cur userState) (userState, bool) {
		return userState{profile: profile, onboarded: cur.onboarded || snap.IsOnboarded}, true
	})
}

func (s *UserStore) editList(field func(*model.UserProfile) *[]string, value string, add bool) bool {
	return s.c.update(func(st userState) (userState, bool) {
		if st.profile == nil {
			return st, false
		}
		next := *st.profile
		list := field(&next)
		has := slices.Contains(*list, value)
		switch {
		case add && !has:
			*list = appended(*list, value)
		case !add && has:
			*list = slices.DeleteFunc(slices.Clone(*list), func(v string) bool { return v == value })
		default:
			return st, false
		}
		st.profile = &next
		return st, true
	})
}

func normalizeProfile(p model.UserProfile) model.UserProfile {
	p.Allergies = uniqueStrings(p.Allergies)
	p.HealthIssues = uniqueStrings(p.HealthIssues)
	return p
}

// uniqueStrings keeps the first occurrence of each value, case-sensitively.
func uniqueStrings(in []string) []string {
	if in == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
