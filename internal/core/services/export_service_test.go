package services_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Kuldeep2822k/meal_planner_app/internal/apperrors"
	"github.com/Kuldeep2822k/meal_planner_app/internal/core/domain"
	"github.com/Kuldeep2822k/meal_planner_app/internal/core/services"
	"github.com/Kuldeep2822k/meal_planner_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExportServiceTestSuite struct {
	suite.Suite
	ledger  *services.LedgerService
	service *services.ExportService
}

func (suite *ExportServiceTestSuite) SetupTest() {
	mockRepo := new(MockSnapshotRepository)
	mockRepo.On("LoadSnapshot", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
	mockRepo.On("SaveSnapshot", mock.Anything, mock.Anything).Return(nil).Maybe()
	suite.ledger = services.NewLedgerService(context.Background(), mockRepo, nil)
	suite.service = services.NewExportService(suite.ledger)
}

func (suite *ExportServiceTestSuite) TestBuildExport() {
	ctx := context.Background()
	_, err := suite.ledger.AddEntry(ctx, flatCandidate("Basmati Rice"), domain.Lunch)
	suite.Require().NoError(err)
	at := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

	export := suite.service.BuildExport(at)

	suite.Equal("2025-03-14", export.Date)
	suite.Len(export.Meals[domain.Lunch], 1)
	suite.Equal(domain.Nutrition{Calories: 130, Protein: 2.7, Carbs: 28, Fats: 0.3}, export.Totals)
	suite.Equal(domain.DefaultGoals(), export.Goals)
}

func (suite *ExportServiceTestSuite) TestWriteJSON_RoundTrips() {
	ctx := context.Background()
	_, err := suite.ledger.AddEntry(ctx, flatCandidate("Basmati Rice"), domain.Lunch)
	suite.Require().NoError(err)
	at := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	suite.Require().NoError(suite.service.WriteJSON(&buf, at))

	var decoded dto.ExportData
	suite.Require().NoError(json.Unmarshal(buf.Bytes(), &decoded))
	suite.Equal("2025-03-14", decoded.Date)
	suite.Require().Len(decoded.Meals[domain.Lunch], 1)
	suite.Equal("Basmati Rice", decoded.Meals[domain.Lunch][0].Name)
}

func (suite *ExportServiceTestSuite) TestFilename() {
	at := time.Date(2025, time.December, 3, 18, 0, 0, 0, time.UTC)

	suite.Equal("meal-plan-2025-12-03.json", suite.service.Filename(at))
}

func TestExportService(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}
