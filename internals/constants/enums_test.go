package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetRanges(t *testing.T) {
	// Tabel bucket dipakai matching engine — nilainya kontrak, bukan detail
	assert.Equal(t, BudgetRange{Min: 0, Max: 25}, BudgetRanges["15-25"])
	assert.Equal(t, BudgetRange{Min: 20, Max: 40}, BudgetRanges["25-40"])
	assert.Equal(t, BudgetRange{Min: 35, Max: 60}, BudgetRanges["40-60"])
	assert.Equal(t, BudgetRange{Min: 55, Max: 1000}, BudgetRanges["60+"])

	// "discuss" bucket pilihan user, tapi bukan rentang
	_, ok := BudgetRanges[BudgetDiscuss]
	assert.False(t, ok)
}

func TestBudgetBucketsCoverRanges(t *testing.T) {
	require.Len(t, BudgetBuckets, len(BudgetRanges)+1)
	for key := range BudgetRanges {
		assert.True(t, InList(BudgetBuckets, key), "bucket %q", key)
	}
	assert.True(t, InList(BudgetBuckets, BudgetDiscuss))
}

func TestInList(t *testing.T) {
	assert.True(t, InList(ApplicationStatuses, "pending"))
	assert.False(t, InList(ApplicationStatuses, "Pending"))
	assert.False(t, InList(nil, "pending"))
}

func TestRoleSlices(t *testing.T) {
	// admin tidak boleh bisa dipilih saat register sendiri
	assert.False(t, InList(SelfRegisterRoles, RoleAdmin))
	assert.True(t, InList(SelfRegisterRoles, RoleStudent))
	assert.True(t, InList(SelfRegisterRoles, RoleTutor))
	assert.Equal(t, []string{RoleAdmin}, AdminOnly)
}
