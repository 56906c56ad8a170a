// file: internals/features/matching/service/matching_service.go
//
// MatchingEngine: murni dan deterministik. Diberi snapshot pool tutor
// approved + kriteria request, hasilnya daftar kandidat ter-ranking.
// Engine tidak pernah error keluar — pool gagal dibaca = daftar kosong.
package service

import (
	"log"
	"sort"

	"gorm.io/gorm"

	"tutorku_backend/internals/constants"
	tutorModel "tutorku_backend/internals/features/tutors/applications/model"
)

const (
	// Snapshot saran saat submit request
	SnapshotLimit = 5
	// Lookup on-demand / browsing
	BrowseLimit = 20
)

// Criteria: bagian dari StudentRequest yang dipakai engine
type Criteria struct {
	Subjects      []string
	PreferredMode string
	Budget        string // kosong atau "discuss" = tanpa filter budget
}

// Match: filter pool lalu ranking. Urutan pool masuk = urutan pembuatan,
// jadi tie yang tersisa setelah rating & total review tetap stabil.
func Match(criteria Criteria, pool []tutorModel.TutorApplicationModel, limit int) []tutorModel.TutorApplicationModel {
	eligible := make([]tutorModel.TutorApplicationModel, 0, len(pool))
	for _, tutor := range pool {
		if !tutor.IsApproved() {
			continue
		}
		if !subjectsOverlap(criteria.Subjects, tutor.TutorApplicationSubjects) {
			continue
		}
		if !modeCompatible(criteria.PreferredMode, tutor.TutorApplicationPreferredMode) {
			continue
		}
		if !budgetCompatible(criteria.Budget, tutor.TutorApplicationHourlyRate) {
			continue
		}
		eligible = append(eligible, tutor)
	}

	// Rating turun, lalu total review turun; sisanya stabil
	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].TutorApplicationAverageRating != eligible[j].TutorApplicationAverageRating {
			return eligible[i].TutorApplicationAverageRating > eligible[j].TutorApplicationAverageRating
		}
		return eligible[i].TutorApplicationTotalReviews > eligible[j].TutorApplicationTotalReviews
	})

	if limit > 0 && len(eligible) > limit {
		eligible = eligible[:limit]
	}
	return eligible
}

// BuildApprovedPool: snapshot pool tutor approved, urut pembuatan.
// Fail-open: error baca store di-log dan jadi pool kosong — operasi
// pembungkusnya tidak ikut gagal gara-gara matching.
func BuildApprovedPool(db *gorm.DB) []tutorModel.TutorApplicationModel {
	var pool []tutorModel.TutorApplicationModel
	if err := db.
		Where("tutor_application_status = ?", constants.ApplicationStatusApproved).
		Order("tutor_application_created_at ASC").
		Find(&pool).Error; err != nil {
		log.Printf("[WARNING] matching: gagal baca pool tutor: %v", err)
		return nil
	}
	return pool
}

/* =======================================================
   Filters
   ======================================================= */

// Request tanpa subject = tanpa filter subject
func subjectsOverlap(requested []string, offered []string) bool {
	if len(requested) == 0 {
		return true
	}
	offer := make(map[string]struct{}, len(offered))
	for _, s := range offered {
		offer[s] = struct{}{}
	}
	for _, s := range requested {
		if _, ok := offer[s]; ok {
			return true
		}
	}
	return false
}

// Request mode "both" = tanpa filter; tutor "both" cocok dengan semua
func modeCompatible(requestMode, tutorMode string) bool {
	if requestMode == "" || requestMode == constants.ModeBoth {
		return true
	}
	return tutorMode == requestMode || tutorMode == constants.ModeBoth
}

// Budget hanya difilter kalau diisi dan bukan "discuss".
// Rentang bucket inklusif dan sengaja overlap (lihat constants.BudgetRanges).
func budgetCompatible(budget string, hourlyRate float64) bool {
	if budget == "" || budget == constants.BudgetDiscuss {
		return true
	}
	r, ok := constants.BudgetRanges[budget]
	if !ok {
		return true
	}
	return hourlyRate >= r.Min && hourlyRate <= r.Max
}
