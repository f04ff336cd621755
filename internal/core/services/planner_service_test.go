package services_test

import (
	"context"
	"testing"

	"github.com/Kuldeep2822k/meal_planner_app/internal/apperrors"
	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
	"github.com/Kuldeep2822k/meal_planner_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PlannerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSnapshotRepository
	ledger   *services.LedgerService
	service  *services.PlannerService
}

func (suite *PlannerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSnapshotRepository)
	suite.mockRepo.On("LoadSnapshot", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveSnapshot", mock.Anything, mock.Anything).Return(nil).Maybe()
	suite.ledger = services.NewLedgerService(context.Background(), suite.mockRepo, nil)
	suite.service = services.NewPlannerService(suite.ledger)
}

func (suite *PlannerServiceTestSuite) TestListPlans_CatalogIsWellFormed() {
	plans := suite.service.ListPlans()

	suite.Require().Len(plans, 5)
	seen := map[string]bool{}
	for _, plan := range plans {
		suite.NotEmpty(plan.ID)
		suite.NotEmpty(plan.Name)
		suite.False(seen[plan.ID], "duplicate plan id %s", plan.ID)
		seen[plan.ID] = true
		suite.NotEmpty(plan.Meals)
		for slot, items := range plan.Meals {
			suite.True(slot.IsValid(), "plan %s uses unknown slot %s", plan.ID, slot)
			suite.NotEmpty(items)
			for _, item := range items {
				suite.NotEmpty(item.Label)
				suite.Greater(item.Calories, 0.0)
			}
		}
	}
}

func (suite *PlannerServiceTestSuite) TestGetPlan() {
	plan, err := suite.service.GetPlan("low-carb-keto")

	suite.Require().NoError(err)
	suite.Equal("low-carb-keto", plan.ID)
}

func (suite *PlannerServiceTestSuite) TestGetPlan_UnknownID() {
	_, err := suite.service.GetPlan("seafood-special")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PlannerServiceTestSuite) TestApplyPlan_LoadsIntoLedger() {
	ctx := context.Background()

	err := suite.service.ApplyPlan(ctx, "vegetarian-balanced")

	suite.Require().NoError(err)
	plan, err := suite.service.GetPlan("vegetarian-balanced")
	suite.Require().NoError(err)
	for slot, items := range plan.Meals {
		suite.Len(suite.ledger.Entries(slot), len(items))
	}
	suite.Greater(suite.ledger.TotalNutrition().Calories, 0.0)
}

func (suite *PlannerServiceTestSuite) TestApplyPlan_UnknownIDLeavesLedgerAlone() {
	ctx := context.Background()
	_, err := suite.ledger.AddEntry(ctx, flatCandidate("Rice"), domain.Lunch)
	suite.Require().NoError(err)

	err = suite.service.ApplyPlan(ctx, "seafood-special")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Len(suite.ledger.Entries(domain.Lunch), 1)
}

func TestPlannerService(t *testing.T) {
	suite.Run(t, new(PlannerServiceTestSuite))
}
