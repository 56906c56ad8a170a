package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"tutorku_backend/internals/constants"
)

func someRecords(n int) []MatchRecord {
	now := time.Now().UTC().Truncate(time.Second)
	out := make([]MatchRecord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, MatchRecord{
			TutorID:   uuid.New(),
			MatchedAt: now,
			Status:    constants.MatchStatusSuggested,
		})
	}
	return out
}

func TestMatchRecords_RoundTrip(t *testing.T) {
	var m StudentRequestModel
	records := someRecords(3)

	require.NoError(t, m.SetMatchRecords(records, 5))

	got := m.MatchRecords()
	require.Len(t, got, 3)
	// urutan snapshot = urutan ranking, harus bertahan lewat jsonb
	for i := range records {
		assert.Equal(t, records[i].TutorID, got[i].TutorID)
		assert.Equal(t, constants.MatchStatusSuggested, got[i].Status)
		assert.True(t, records[i].MatchedAt.Equal(got[i].MatchedAt))
	}
}

func TestSetMatchRecords_Caps(t *testing.T) {
	var m StudentRequestModel
	records := someRecords(9)

	require.NoError(t, m.SetMatchRecords(records, 5))

	got := m.MatchRecords()
	require.Len(t, got, 5)
	// yang lolos adalah 5 teratas, bukan sembarang 5
	for i := 0; i < 5; i++ {
		assert.Equal(t, records[i].TutorID, got[i].TutorID)
	}
}

func TestSetMatchRecords_EmptyIsValid(t *testing.T) {
	var m StudentRequestModel
	require.NoError(t, m.SetMatchRecords(nil, 5))
	assert.Empty(t, m.MatchRecords())
}

func TestMatchRecords_UnsetColumn(t *testing.T) {
	var m StudentRequestModel
	assert.Nil(t, m.MatchRecords())
}

// Snapshot korup tidak boleh bikin request-nya ikut tidak terbaca
func TestMatchRecords_CorruptJSON(t *testing.T) {
	m := StudentRequestModel{StudentRequestMatchedTutors: datatypes.JSON(`{"oops`)}
	assert.Nil(t, m.MatchRecords())
}

func TestIsPending(t *testing.T) {
	m := StudentRequestModel{StudentRequestStatus: constants.RequestStatusPending}
	assert.True(t, m.IsPending())

	for _, status := range []string{
		constants.RequestStatusMatched,
		constants.RequestStatusInProgress,
		constants.RequestStatusCompleted,
		constants.RequestStatusCancelled,
	} {
		m.StudentRequestStatus = status
		assert.False(t, m.IsPending(), "status %q", status)
	}
}
