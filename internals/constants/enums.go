// file: internals/constants/enums.go
//
// Semua enum domain + tabel budget bucket sebagai data immutable.
// Validasi DTO dan matching engine sama-sama baca dari sini supaya
// tidak ada dua sumber kebenaran.
package constants

// ===================== Tutor application =====================

const (
	ApplicationStatusPending   = "pending"
	ApplicationStatusApproved  = "approved"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusSuspended = "suspended"
)

var ApplicationStatuses = []string{
	ApplicationStatusPending,
	ApplicationStatusApproved,
	ApplicationStatusRejected,
	ApplicationStatusSuspended,
}

var Qualifications = []string{"high-school", "bachelor", "master", "phd", "other"}

// Bucket ordinal, bukan angka
var ExperienceLevels = []string{"0-1", "1-3", "3-5", "5-10", "10+"}

const (
	HourlyRateMin = 10
	HourlyRateMax = 200
)

// ===================== Mode mengajar/belajar =====================

const (
	ModeOnline   = "online"
	ModeInPerson = "in-person"
	ModeBoth     = "both"
)

var TeachingModes = []string{ModeOnline, ModeInPerson, ModeBoth}

// ===================== Student request =====================

const (
	RequestStatusPending    = "pending"
	RequestStatusMatched    = "matched"
	RequestStatusInProgress = "in-progress"
	RequestStatusCompleted  = "completed"
	RequestStatusCancelled  = "cancelled"
)

var RequestStatuses = []string{
	RequestStatusPending,
	RequestStatusMatched,
	RequestStatusInProgress,
	RequestStatusCompleted,
	RequestStatusCancelled,
}

var Grades = []string{"elementary", "middle", "high", "college", "adult"}

var UrgencyLevels = []string{"asap", "soon", "flexible", "planning"}

// ===================== Match record =====================

const (
	MatchStatusSuggested = "suggested"
	MatchStatusContacted = "contacted"
	MatchStatusAccepted  = "accepted"
	MatchStatusRejected  = "rejected"
)

var MatchStatuses = []string{
	MatchStatusSuggested,
	MatchStatusContacted,
	MatchStatusAccepted,
	MatchStatusRejected,
}

// ===================== Budget bucket =====================

const BudgetDiscuss = "discuss"

// BudgetRange rentang tarif inklusif untuk satu bucket.
type BudgetRange struct {
	Min float64
	Max float64
}

// BudgetRanges: bucket sengaja overlap (fuzzy band, bukan partisi).
var BudgetRanges = map[string]BudgetRange{
	"15-25": {Min: 0, Max: 25},
	"25-40": {Min: 20, Max: 40},
	"40-60": {Min: 35, Max: 60},
	"60+":   {Min: 55, Max: 1000},
}

var BudgetBuckets = []string{"15-25", "25-40", "40-60", "60+", BudgetDiscuss}

// ===================== Helpers =====================

func InList(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
