package usecase

import (
	"animehub-backend/internal/domain/contests"
	"animehub-backend/internal/domain/users"
	"animehub-backend/internal/repo"
)

// NominateWork records a judge's nomination of a work for a contest
// category. Nominating the same work for the same category again is a no-op,
// so the HTTP toggle in the judging screen can fire freely.
type NominateWork struct {
	Nominations *repo.NominationRepository
}

func (uc *NominateWork) Execute(contestID, workID, category string, judge users.User) (Result, error) {
	if judge.Role != users.RoleJudge {
		return fail("only judges can nominate"), nil
	}
	contest, found := contests.Find(contestID)
	if !found {
		return fail("contest not found"), nil
	}
	validCategory := false
	for _, c := range contest.Categories {
		if c == category {
			validCategory = true
			break
		}
	}
	if !validCategory {
		return fail("unknown contest category"), nil
	}
	err := uc.Nominations.Add(contestID, contests.Nomination{
		WorkID:   workID,
		Category: category,
		JudgeID:  judge.ID,
	})
	if err != nil {
		return Result{}, err
	}
	return ok, nil
}

// WithdrawNomination removes the judge's nominations of a work.
type WithdrawNomination struct {
	Nominations *repo.NominationRepository
}

func (uc *WithdrawNomination) Execute(contestID, workID string, judge users.User) (Result, error) {
	if judge.Role != users.RoleJudge {
		return fail("only judges can nominate"), nil
	}
	if err := uc.Nominations.Remove(contestID, workID, judge.ID); err != nil {
		return Result{}, err
	}
	return ok, nil
}
