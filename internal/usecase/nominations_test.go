package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animehub-backend/internal/domain/users"
	"animehub-backend/internal/repo"
	"animehub-backend/internal/store"
)

var judge = users.User{ID: "j1", Name: "審査員", Role: users.RoleJudge}

func newNominationFixture() (*NominateWork, *WithdrawNomination, *repo.NominationRepository) {
	nominations := repo.NewNominationRepository(store.NewMemoryStore())
	return &NominateWork{Nominations: nominations}, &WithdrawNomination{Nominations: nominations}, nominations
}

func TestNominateRequiresJudgeRole(t *testing.T) {
	nominate, _, nominations := newNominationFixture()

	res, err := nominate.Execute("contest-2025-autumn", "w1", "イラスト", users.User{ID: "u1", Role: users.RoleUser})
	require.NoError(t, err)
	assert.False(t, res.Success)

	list, err := nominations.ListByContest("contest-2025-autumn")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNominateValidatesContestAndCategory(t *testing.T) {
	nominate, _, _ := newNominationFixture()

	res, err := nominate.Execute("no-such-contest", "w1", "イラスト", judge)
	require.NoError(t, err)
	assert.False(t, res.Success)

	res, err = nominate.Execute("contest-2025-autumn", "w1", "彫刻", judge)
	require.NoError(t, err)
	assert.False(t, res.Success)
}

func TestNominateIsIdempotent(t *testing.T) {
	nominate, _, nominations := newNominationFixture()

	for i := 0; i < 2; i++ {
		res, err := nominate.Execute("contest-2025-autumn", "w1", "イラスト", judge)
		require.NoError(t, err)
		require.True(t, res.Success, res.Error)
	}

	list, err := nominations.ListByContest("contest-2025-autumn")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestWithdrawRemovesJudgesNominations(t *testing.T) {
	nominate, withdraw, nominations := newNominationFixture()

	_, err := nominate.Execute("contest-2025-autumn", "w1", "イラスト", judge)
	require.NoError(t, err)
	_, err = nominate.Execute("contest-2025-autumn", "w1", "動画", judge)
	require.NoError(t, err)
	other := users.User{ID: "j2", Name: "別の審査員", Role: users.RoleJudge}
	_, err = nominate.Execute("contest-2025-autumn", "w1", "イラスト", other)
	require.NoError(t, err)

	res, err := withdraw.Execute("contest-2025-autumn", "w1", judge)
	require.NoError(t, err)
	require.True(t, res.Success)

	list, err := nominations.ListByContest("contest-2025-autumn")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "j2", list[0].JudgeID)
}
