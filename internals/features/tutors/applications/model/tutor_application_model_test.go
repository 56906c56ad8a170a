package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorku_backend/internals/constants"
)

func TestApplyReview_Approve(t *testing.T) {
	app := TutorApplicationModel{TutorApplicationStatus: constants.ApplicationStatusPending}
	reviewer := uuid.New()
	now := time.Now().UTC()

	require.NoError(t, app.ApplyReview(constants.ApplicationStatusApproved, reviewer, now))

	assert.Equal(t, constants.ApplicationStatusApproved, app.TutorApplicationStatus)
	require.NotNil(t, app.TutorApplicationApprovedAt)
	assert.Equal(t, now, *app.TutorApplicationApprovedAt)
	require.NotNil(t, app.TutorApplicationReviewedBy)
	assert.Equal(t, reviewer, *app.TutorApplicationReviewedBy)
}

func TestApplyReview_Reject(t *testing.T) {
	app := TutorApplicationModel{TutorApplicationStatus: constants.ApplicationStatusPending}

	require.NoError(t, app.ApplyReview(constants.ApplicationStatusRejected, uuid.New(), time.Now()))

	assert.Equal(t, constants.ApplicationStatusRejected, app.TutorApplicationStatus)
	assert.Nil(t, app.TutorApplicationApprovedAt)
	assert.NotNil(t, app.TutorApplicationReviewedBy)
}

func TestApplyReview_InvalidDecision(t *testing.T) {
	app := TutorApplicationModel{TutorApplicationStatus: constants.ApplicationStatusPending}

	for _, decision := range []string{"", "pending", "suspended", "APPROVED"} {
		err := app.ApplyReview(decision, uuid.New(), time.Now())
		assert.ErrorIs(t, err, ErrInvalidDecision, "decision %q", decision)
		assert.Equal(t, constants.ApplicationStatusPending, app.TutorApplicationStatus)
	}
}

// Admin boleh mengoreksi keputusan: approved → rejected membersihkan approved_at
func TestApplyReview_ReReview(t *testing.T) {
	app := TutorApplicationModel{TutorApplicationStatus: constants.ApplicationStatusPending}
	require.NoError(t, app.ApplyReview(constants.ApplicationStatusApproved, uuid.New(), time.Now()))

	secondReviewer := uuid.New()
	require.NoError(t, app.ApplyReview(constants.ApplicationStatusRejected, secondReviewer, time.Now()))

	assert.Equal(t, constants.ApplicationStatusRejected, app.TutorApplicationStatus)
	assert.Nil(t, app.TutorApplicationApprovedAt)
	assert.Equal(t, secondReviewer, *app.TutorApplicationReviewedBy)
}

func TestSuspendLifecycle(t *testing.T) {
	app := TutorApplicationModel{TutorApplicationStatus: constants.ApplicationStatusApproved}

	require.NoError(t, app.Suspend())
	assert.Equal(t, constants.ApplicationStatusSuspended, app.TutorApplicationStatus)

	// suspend dua kali tidak boleh
	assert.ErrorIs(t, app.Suspend(), ErrNotApproved)

	require.NoError(t, app.Unsuspend())
	assert.Equal(t, constants.ApplicationStatusApproved, app.TutorApplicationStatus)

	// unsuspend saat sudah approved juga tidak boleh
	assert.ErrorIs(t, app.Unsuspend(), ErrNotSuspended)
}

func TestSuspend_OnlyFromApproved(t *testing.T) {
	for _, status := range []string{constants.ApplicationStatusPending, constants.ApplicationStatusRejected} {
		app := TutorApplicationModel{TutorApplicationStatus: status}
		assert.ErrorIs(t, app.Suspend(), ErrNotApproved, "status %q", status)
	}
}

func TestStatusPredicates(t *testing.T) {
	app := TutorApplicationModel{TutorApplicationStatus: constants.ApplicationStatusPending}
	assert.True(t, app.IsPending())
	assert.False(t, app.IsApproved())

	app.TutorApplicationStatus = constants.ApplicationStatusApproved
	assert.False(t, app.IsPending())
	assert.True(t, app.IsApproved())
}
