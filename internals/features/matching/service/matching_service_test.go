package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorku_backend/internals/constants"
	tutorModel "tutorku_backend/internals/features/tutors/applications/model"
)

func approvedTutor(name string, subjects []string, mode string, rate float64, rating float64, reviews int) tutorModel.TutorApplicationModel {
	return tutorModel.TutorApplicationModel{
		TutorApplicationID:            uuid.New(),
		TutorApplicationName:          name,
		TutorApplicationSubjects:      pq.StringArray(subjects),
		TutorApplicationPreferredMode: mode,
		TutorApplicationHourlyRate:    rate,
		TutorApplicationStatus:        constants.ApplicationStatusApproved,
		TutorApplicationAverageRating: rating,
		TutorApplicationTotalReviews:  reviews,
	}
}

func names(tutors []tutorModel.TutorApplicationModel) []string {
	out := make([]string, 0, len(tutors))
	for _, t := range tutors {
		out = append(out, t.TutorApplicationName)
	}
	return out
}

func TestMatch_SubjectIntersection(t *testing.T) {
	pool := []tutorModel.TutorApplicationModel{
		approvedTutor("math-only", []string{"math"}, "both", 30, 4, 10),
		approvedTutor("physics-only", []string{"physics"}, "both", 30, 4, 10),
		approvedTutor("multi", []string{"math", "chemistry"}, "both", 30, 4, 10),
	}

	got := Match(Criteria{Subjects: []string{"math"}, PreferredMode: "both"}, pool, BrowseLimit)
	assert.ElementsMatch(t, []string{"math-only", "multi"}, names(got))

	// satu subject yang overlap sudah cukup
	got = Match(Criteria{Subjects: []string{"chemistry", "biology"}, PreferredMode: "both"}, pool, BrowseLimit)
	assert.Equal(t, []string{"multi"}, names(got))

	// tanpa subject = tanpa filter
	got = Match(Criteria{PreferredMode: "both"}, pool, BrowseLimit)
	assert.Len(t, got, 3)
}

func TestMatch_ModeCompatibility(t *testing.T) {
	pool := []tutorModel.TutorApplicationModel{
		approvedTutor("online", []string{"math"}, constants.ModeOnline, 30, 4, 10),
		approvedTutor("in-person", []string{"math"}, constants.ModeInPerson, 30, 4, 10),
		approvedTutor("both", []string{"math"}, constants.ModeBoth, 30, 4, 10),
	}

	// request "both" = wildcard
	got := Match(Criteria{Subjects: []string{"math"}, PreferredMode: constants.ModeBoth}, pool, BrowseLimit)
	assert.Len(t, got, 3)

	// request online: tutor online + tutor both
	got = Match(Criteria{Subjects: []string{"math"}, PreferredMode: constants.ModeOnline}, pool, BrowseLimit)
	assert.ElementsMatch(t, []string{"online", "both"}, names(got))

	got = Match(Criteria{Subjects: []string{"math"}, PreferredMode: constants.ModeInPerson}, pool, BrowseLimit)
	assert.ElementsMatch(t, []string{"in-person", "both"}, names(got))
}

func TestMatch_BudgetBuckets(t *testing.T) {
	pool := []tutorModel.TutorApplicationModel{
		approvedTutor("cheap", []string{"math"}, "both", 18, 4, 10),
		approvedTutor("mid", []string{"math"}, "both", 38, 4, 10),
		approvedTutor("premium", []string{"math"}, "both", 90, 4, 10),
	}

	got := Match(Criteria{Subjects: []string{"math"}, PreferredMode: "both", Budget: "15-25"}, pool, BrowseLimit)
	assert.Equal(t, []string{"cheap"}, names(got))

	// bucket 25-40 mulai dari 20: overlap dengan bucket bawahnya disengaja
	got = Match(Criteria{Subjects: []string{"math"}, PreferredMode: "both", Budget: "25-40"}, pool, BrowseLimit)
	assert.Equal(t, []string{"mid"}, names(got))

	got = Match(Criteria{Subjects: []string{"math"}, PreferredMode: "both", Budget: "60+"}, pool, BrowseLimit)
	assert.Equal(t, []string{"premium"}, names(got))

	// discuss & kosong = tanpa filter budget
	for _, budget := range []string{"", constants.BudgetDiscuss} {
		got = Match(Criteria{Subjects: []string{"math"}, PreferredMode: "both", Budget: budget}, pool, BrowseLimit)
		assert.Len(t, got, 3, "budget %q", budget)
	}

	// bucket tak dikenal tidak memfilter apa-apa
	got = Match(Criteria{Subjects: []string{"math"}, PreferredMode: "both", Budget: "1-2"}, pool, BrowseLimit)
	assert.Len(t, got, 3)
}

func TestMatch_BudgetBoundariesInclusive(t *testing.T) {
	pool := []tutorModel.TutorApplicationModel{
		approvedTutor("at-min", []string{"math"}, "both", 20, 4, 10),
		approvedTutor("at-max", []string{"math"}, "both", 40, 4, 10),
		approvedTutor("above", []string{"math"}, "both", 40.5, 4, 10),
	}
	got := Match(Criteria{Subjects: []string{"math"}, PreferredMode: "both", Budget: "25-40"}, pool, BrowseLimit)
	assert.ElementsMatch(t, []string{"at-min", "at-max"}, names(got))
}

func TestMatch_RankingAndStability(t *testing.T) {
	pool := []tutorModel.TutorApplicationModel{
		approvedTutor("old-low", []string{"math"}, "both", 30, 3.5, 5),
		approvedTutor("tie-first", []string{"math"}, "both", 30, 4.8, 12),
		approvedTutor("tie-second", []string{"math"}, "both", 30, 4.8, 12),
		approvedTutor("more-reviews", []string{"math"}, "both", 30, 4.8, 40),
		approvedTutor("top", []string{"math"}, "both", 30, 5, 2),
	}

	got := Match(Criteria{Subjects: []string{"math"}, PreferredMode: "both"}, pool, BrowseLimit)
	require.Len(t, got, 5)
	// rating dulu, lalu total review, lalu urutan pool (stabil)
	assert.Equal(t, []string{"top", "more-reviews", "tie-first", "tie-second", "old-low"}, names(got))
}

func TestMatch_Deterministic(t *testing.T) {
	pool := []tutorModel.TutorApplicationModel{
		approvedTutor("a", []string{"math"}, "both", 30, 4.8, 12),
		approvedTutor("b", []string{"math"}, "both", 30, 4.8, 12),
		approvedTutor("c", []string{"math"}, "both", 30, 4.2, 50),
	}
	criteria := Criteria{Subjects: []string{"math"}, PreferredMode: "both"}

	first := names(Match(criteria, pool, BrowseLimit))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, names(Match(criteria, pool, BrowseLimit)))
	}
}

func TestMatch_LimitCaps(t *testing.T) {
	pool := make([]tutorModel.TutorApplicationModel, 0, 30)
	for i := 0; i < 30; i++ {
		pool = append(pool, approvedTutor("t", []string{"math"}, "both", 30, 4, i))
	}

	assert.Len(t, Match(Criteria{Subjects: []string{"math"}, PreferredMode: "both"}, pool, SnapshotLimit), 5)
	assert.Len(t, Match(Criteria{Subjects: []string{"math"}, PreferredMode: "both"}, pool, BrowseLimit), 20)
	assert.Len(t, Match(Criteria{Subjects: []string{"math"}, PreferredMode: "both"}, pool, 0), 30)
}

func TestMatch_SkipsNonApproved(t *testing.T) {
	pending := approvedTutor("pending", []string{"math"}, "both", 30, 4, 10)
	pending.TutorApplicationStatus = constants.ApplicationStatusPending
	suspended := approvedTutor("suspended", []string{"math"}, "both", 30, 4, 10)
	suspended.TutorApplicationStatus = constants.ApplicationStatusSuspended

	pool := []tutorModel.TutorApplicationModel{
		pending,
		suspended,
		approvedTutor("ok", []string{"math"}, "both", 30, 4, 10),
	}

	got := Match(Criteria{Subjects: []string{"math"}, PreferredMode: "both"}, pool, BrowseLimit)
	assert.Equal(t, []string{"ok"}, names(got))
}

// Tiga kombinasi kriteria lengkap, bukan filter per-dimensi
func TestMatch_FullCriteriaScenarios(t *testing.T) {
	tutor := approvedTutor("math-online", []string{"Mathematics"}, constants.ModeOnline, 30, 4.5, 8)
	pool := []tutorModel.TutorApplicationModel{tutor}

	// subject overlap + wildcard mode di request + 30 di [20,40] → masuk
	got := Match(Criteria{
		Subjects:      []string{"Mathematics", "Physics"},
		PreferredMode: constants.ModeBoth,
		Budget:        "25-40",
	}, pool, BrowseLimit)
	assert.Equal(t, []string{"math-online"}, names(got))

	// tutor sama, budget 60+ ([55,1000]) → rate 30 keluar
	got = Match(Criteria{
		Subjects:      []string{"Mathematics", "Physics"},
		PreferredMode: constants.ModeBoth,
		Budget:        "60+",
	}, pool, BrowseLimit)
	assert.Empty(t, got)

	// tutor in-person vs request online → keluar walau subject & budget cocok
	inPerson := approvedTutor("math-offline", []string{"Mathematics"}, constants.ModeInPerson, 30, 4.5, 8)
	got = Match(Criteria{
		Subjects:      []string{"Mathematics"},
		PreferredMode: constants.ModeOnline,
		Budget:        "25-40",
	}, []tutorModel.TutorApplicationModel{inPerson}, BrowseLimit)
	assert.Empty(t, got)
}

func TestMatch_EmptyPool(t *testing.T) {
	got := Match(Criteria{Subjects: []string{"math"}, PreferredMode: "both"}, nil, SnapshotLimit)
	assert.Empty(t, got)
}
