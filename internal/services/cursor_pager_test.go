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

type CursorPagerSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	repo *repository_mocks.MockTransactionRepositoryInterface
	ctx  context.Context
	now  time.Time
}

func (s *CursorPagerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
}

func (s *CursorPagerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCursorPagerSuite(t *testing.T) {
	suite.Run(t, new(CursorPagerSuite))
}

func (s *CursorPagerSuite) newPager(pageSize int, compound bool) CursorPagerInterface {
	metrics, logger := testObservers()
	return NewCursorPager(s.repo, pageSize, NewCursorCodec(compound), metrics, logger)
}

func (s *CursorPagerSuite) TestGetPage_FullPageReturnsNextCursor() {
	pager := s.newPager(3, false)
	items := fakeTransactions(3, s.now)

	s.repo.EXPECT().
		ListAfterCursor(gomock.Any(), models.FilterCriteria{}, (*models.CursorPosition)(nil), 3).
		Return(items, nil)

	result, err := pager.GetPage(s.ctx, models.FilterCriteria{}, "")

	s.Require().NoError(err)
	s.Len(result.Items, 3)
	s.Require().NotNil(result.NextCursor)
	s.Equal(items[2].Date.Format(time.RFC3339Nano), *result.NextCursor)
}

func (s *CursorPagerSuite) TestGetPage_PartialPageEndsTheSequence() {
	pager := s.newPager(3, false)

	s.repo.EXPECT().
		ListAfterCursor(gomock.Any(), gomock.Any(), gomock.Any(), 3).
		Return(fakeTransactions(2, s.now), nil)

	result, err := pager.GetPage(s.ctx, models.FilterCriteria{}, "")

	s.Require().NoError(err)
	s.Len(result.Items, 2)
	s.Nil(result.NextCursor)
}

func (s *CursorPagerSuite) TestGetPage_EmptyStoreReturnsEmptyItems() {
	pager := s.newPager(3, false)

	s.repo.EXPECT().ListAfterCursor(gomock.Any(), gomock.Any(), gomock.Any(), 3).Return(nil, nil)

	result, err := pager.GetPage(s.ctx, models.FilterCriteria{}, "")

	s.Require().NoError(err)
	s.NotNil(result.Items)
	s.Empty(result.Items)
	s.Nil(result.NextCursor)
}

func (s *CursorPagerSuite) TestGetPage_AppliesOnlyDateBounds() {
	pager := s.newPager(3, false)
	from := s.now.AddDate(0, -1, 0)
	to := s.now
	criteria := models.FilterCriteria{
		DateFrom:       &from,
		DateTo:         &to,
		Merchant:       "Starbucks",
		MinAmountCents: int64Ptr(100),
		MaxAmountCents: int64Ptr(5000),
	}

	s.repo.EXPECT().
		ListAfterCursor(gomock.Any(), models.FilterCriteria{DateFrom: &from, DateTo: &to}, gomock.Any(), 3).
		Return(fakeTransactions(1, s.now), nil)

	_, err := pager.GetPage(s.ctx, criteria, "")
	s.Require().NoError(err)
}

func (s *CursorPagerSuite) TestGetPage_DecodesTimestampCursor() {
	pager := s.newPager(3, false)
	cursor := "2024-03-10T09:30:00Z"

	s.repo.EXPECT().
		ListAfterCursor(gomock.Any(), gomock.Any(), gomock.Any(), 3).
		DoAndReturn(func(_ context.Context, _ models.FilterCriteria, position *models.CursorPosition, _ int) ([]models.Transaction, error) {
			s.Require().NotNil(position)
			s.True(position.Date.Equal(s.now))
			s.Nil(position.ID)
			return []models.Transaction{}, nil
		})

	result, err := pager.GetPage(s.ctx, models.FilterCriteria{}, cursor)
	s.Require().NoError(err)
	s.Nil(result.NextCursor)
}

func (s *CursorPagerSuite) TestGetPage_CompoundCursorCarriesLastID() {
	pager := s.newPager(2, true)
	items := fakeTransactions(2, s.now)

	s.repo.EXPECT().ListAfterCursor(gomock.Any(), gomock.Any(), gomock.Any(), 2).Return(items, nil)

	result, err := pager.GetPage(s.ctx, models.FilterCriteria{}, "")
	s.Require().NoError(err)
	s.Require().NotNil(result.NextCursor)

	position, err := NewCursorCodec(true).Decode(*result.NextCursor)
	s.Require().NoError(err)
	s.Require().NotNil(position.ID)
	s.Equal(items[1].ID, *position.ID)
	s.True(position.Date.Equal(items[1].Date))
}

func (s *CursorPagerSuite) TestGetPage_InvalidCursorSkipsStore() {
	pager := s.newPager(3, false)

	result, err := pager.GetPage(s.ctx, models.FilterCriteria{}, "not-a-cursor")

	s.Nil(result)
	s.ErrorIs(err, ErrInvalidCursor)
}

func (s *CursorPagerSuite) TestGetPage_StoreFailure() {
	pager := s.newPager(3, false)
	storeErr := errors.New("database is locked")

	s.repo.EXPECT().ListAfterCursor(gomock.Any(), gomock.Any(), gomock.Any(), 3).Return(nil, storeErr)

	result, err := pager.GetPage(s.ctx, models.FilterCriteria{}, "")

	s.Nil(result)
	s.ErrorIs(err, storeErr)
	s.NotErrorIs(err, ErrInvalidCursor)
}
