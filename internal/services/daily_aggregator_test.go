package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"transaction-explorer/internal/models"
	"transaction-explorer/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type DailyAggregatorSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	repo       *repository_mocks.MockTransactionRepositoryInterface
	aggregator DailyAggregatorInterface
	ctx        context.Context
}

func (s *DailyAggregatorSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	metrics, logger := testObservers()
	s.aggregator = NewDailyAggregator(s.repo, metrics, logger)
	s.ctx = context.Background()
}

func (s *DailyAggregatorSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDailyAggregatorSuite(t *testing.T) {
	suite.Run(t, new(DailyAggregatorSuite))
}

func (s *DailyAggregatorSuite) TestGetDailyTotals_ReturnsStoreAggregates() {
	march := models.CalendarMonth{Year: 2024, Month: 3}
	totals := models.DailyTotals{
		"2024-03-01": {Day: "2024-03-01", TotalAmountCents: 500, TransactionCount: 1},
		"2024-03-15": {Day: "2024-03-15", TotalAmountCents: 12_345, TransactionCount: 4},
	}

	s.repo.EXPECT().DailyTotals(gomock.Any(), march, models.FilterCriteria{}).Return(totals, nil)

	result, err := s.aggregator.GetDailyTotals(s.ctx, 3, 2024, models.FilterCriteria{})

	s.Require().NoError(err)
	s.Equal(totals, result)
	cents, count := result.Sum()
	s.Equal(int64(12_845), cents)
	s.Equal(int64(5), count)
}

func (s *DailyAggregatorSuite) TestGetDailyTotals_RejectsInvalidMonthWithoutQuerying() {
	tests := []struct {
		name    string
		month   int
		year    int
		wantErr error
	}{
		{name: "month 13", month: 13, year: 2024, wantErr: models.ErrInvalidMonth},
		{name: "month 0", month: 0, year: 2024, wantErr: models.ErrInvalidMonth},
		{name: "year 0", month: 5, year: 0, wantErr: models.ErrInvalidYear},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			result, err := s.aggregator.GetDailyTotals(s.ctx, tt.month, tt.year, models.FilterCriteria{})
			s.Nil(result)
			s.ErrorIs(err, tt.wantErr)
		})
	}
}

func (s *DailyAggregatorSuite) TestGetDailyTotals_PassesOnlyDateScope() {
	from := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	scope := models.FilterCriteria{
		DateFrom:       &from,
		Merchant:       "Amazon",
		MaxAmountCents: int64Ptr(999),
	}

	s.repo.EXPECT().
		DailyTotals(gomock.Any(), models.CalendarMonth{Year: 2024, Month: 3}, models.FilterCriteria{DateFrom: &from}).
		Return(models.DailyTotals{}, nil)

	result, err := s.aggregator.GetDailyTotals(s.ctx, 3, 2024, scope)
	s.Require().NoError(err)
	s.Empty(result)
}

func (s *DailyAggregatorSuite) TestGetDailyTotals_NilStoreResultBecomesEmptyMap() {
	s.repo.EXPECT().DailyTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	result, err := s.aggregator.GetDailyTotals(s.ctx, 2, 2023, models.FilterCriteria{})
	s.Require().NoError(err)
	s.NotNil(result)
	s.Empty(result)
}

func (s *DailyAggregatorSuite) TestGetDailyTotals_StoreFailure() {
	storeErr := errors.New("timeout")
	s.repo.EXPECT().DailyTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storeErr)

	result, err := s.aggregator.GetDailyTotals(s.ctx, 2, 2023, models.FilterCriteria{})

	s.Nil(result)
	s.ErrorIs(err, storeErr)
	s.Contains(err.Error(), "2023-02")
}

func (s *DailyAggregatorSuite) TestGetDailyTotalsForMonths_PreservesOrder() {
	months := []models.CalendarMonth{
		{Year: 2023, Month: 12},
		{Year: 2024, Month: 1},
		{Year: 2024, Month: 2},
	}

	s.repo.EXPECT().
		DailyTotals(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, month models.CalendarMonth, _ models.FilterCriteria) (models.DailyTotals, error) {
			day := month.Start().Format(models.DayKeyLayout)
			return models.DailyTotals{day: {Day: day, TotalAmountCents: int64(month.Month), TransactionCount: 1}}, nil
		}).
		Times(len(months))

	results, err := s.aggregator.GetDailyTotalsForMonths(s.ctx, months, models.FilterCriteria{})

	s.Require().NoError(err)
	s.Require().Len(results, 3)
	s.Contains(results[0], "2023-12-01")
	s.Contains(results[1], "2024-01-01")
	s.Contains(results[2], "2024-02-01")
}

func (s *DailyAggregatorSuite) TestGetDailyTotalsForMonths_ValidatesEveryMonthFirst() {
	months := []models.CalendarMonth{
		{Year: 2024, Month: 1},
		{Year: 2024, Month: 14},
	}

	results, err := s.aggregator.GetDailyTotalsForMonths(s.ctx, months, models.FilterCriteria{})

	s.Nil(results)
	s.ErrorIs(err, models.ErrInvalidMonth)
}

func (s *DailyAggregatorSuite) TestGetDailyTotalsForMonths_OneFailureFailsAll() {
	storeErr := errors.New("connection refused")
	months := []models.CalendarMonth{{Year: 2024, Month: 1}, {Year: 2024, Month: 2}}

	s.repo.EXPECT().
		DailyTotals(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, month models.CalendarMonth, _ models.FilterCriteria) (models.DailyTotals, error) {
			if month.Month == 2 {
				return nil, storeErr
			}
			return models.DailyTotals{}, nil
		}).
		AnyTimes()

	results, err := s.aggregator.GetDailyTotalsForMonths(s.ctx, months, models.FilterCriteria{})

	s.Nil(results)
	s.ErrorIs(err, storeErr)
}
