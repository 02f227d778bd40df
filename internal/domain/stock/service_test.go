package stock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/nhoxwy/pos-availability/internal/controller/apperror"
)

func stockService(t *testing.T) (*StockService, *MockStockRepo) {
	t.Helper()

	mockRepo := NewMockStockRepo(gomock.NewController(t))
	service := NewStockService(mockRepo)

	return service, mockRepo
}

func internalLocation(id int64) Location {
	return Location{
		ID:         id,
		Name:       "Stock",
		ParentPath: "1/",
		Usage:      UsageInternal,
		CompanyID:  1,
		Active:     true,
	}
}

func customerLocation(id int64) Location {
	return Location{
		ID:         id,
		Name:       "Customers",
		ParentPath: "2/",
		Usage:      UsageCustomer,
		CompanyID:  1,
		Active:     true,
	}
}

func TestStockService_ApplyMove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Now()

	saleMove := MoveEvent{
		EventID:        "MOVE-1",
		ProductID:      101,
		SrcLocationID:  12,
		DestLocationID: 50,
		CompanyID:      1,
		Quantity:       2,
		OccurredAt:     now,
	}
	receiptMove := MoveEvent{
		EventID:        "MOVE-2",
		ProductID:      101,
		DestLocationID: 12,
		CompanyID:      1,
		Quantity:       5,
		OccurredAt:     now,
	}

	testCases := []struct {
		name          string
		event         MoveEvent
		mock          func(*MockTxStockRepo)
		expectedError error
	}{
		{
			name:  "should decrement internal src and skip customer dest",
			event: saleMove,
			mock: func(tx *MockTxStockRepo) {
				tx.EXPECT().CreateMoveEvent(ctx, saleMove).Return(nil)
				tx.EXPECT().GetLocation(ctx, int64(12)).Return(internalLocation(12), nil)
				tx.EXPECT().AddQuantity(ctx, int64(101), int64(12), int64(1), -2.0).Return(nil)
				tx.EXPECT().GetLocation(ctx, int64(50)).Return(customerLocation(50), nil)
			},
			expectedError: nil,
		},
		{
			name:  "should increment internal dest on receipt without src",
			event: receiptMove,
			mock: func(tx *MockTxStockRepo) {
				tx.EXPECT().CreateMoveEvent(ctx, receiptMove).Return(nil)
				tx.EXPECT().GetLocation(ctx, int64(12)).Return(internalLocation(12), nil)
				tx.EXPECT().AddQuantity(ctx, int64(101), int64(12), int64(1), 5.0).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "should abort before quant change on duplicate event",
			event: saleMove,
			mock: func(tx *MockTxStockRepo) {
				tx.EXPECT().CreateMoveEvent(ctx, saleMove).Return(apperror.ErrMoveAlreadyStored)
			},
			expectedError: apperror.ErrMoveAlreadyStored,
		},
		{
			name:  "should return error when src location lookup fails",
			event: saleMove,
			mock: func(tx *MockTxStockRepo) {
				tx.EXPECT().CreateMoveEvent(ctx, saleMove).Return(nil)
				tx.EXPECT().GetLocation(ctx, int64(12)).Return(Location{}, errors.New("database error"))
			},
			expectedError: errors.New("load src location: database error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service, mockRepo := stockService(t)
			mockTxRepo := NewMockTxStockRepo(gomock.NewController(t))
			mockRepo.EXPECT().InTransaction(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(repo TxStockRepo) error) error {
				return fn(mockTxRepo)
			})
			tc.mock(mockTxRepo)

			// when
			err := service.ApplyMove(ctx, tc.event)

			// then
			if tc.expectedError == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.expectedError.Error())
			}
		})
	}

	t.Run("should reject invalid moves without opening a transaction", func(t *testing.T) {
		// given
		service, _ := stockService(t)
		invalid := MoveEvent{EventID: "MOVE-3", ProductID: 101, CompanyID: 1, Quantity: 2}

		// when
		err := service.ApplyMove(ctx, invalid)

		// then
		assert.ErrorIs(t, err, apperror.ErrInvalidMove)
	})
}

func TestMoveEvent_Validate(t *testing.T) {
	t.Parallel()

	valid := MoveEvent{
		EventID:       "MOVE-1",
		ProductID:     101,
		SrcLocationID: 12,
		CompanyID:     1,
		Quantity:      1,
	}

	testCases := []struct {
		name    string
		mutate  func(*MoveEvent)
		wantErr bool
	}{
		{name: "valid move", mutate: func(m *MoveEvent) {}, wantErr: false},
		{name: "missing event id", mutate: func(m *MoveEvent) { m.EventID = "" }, wantErr: true},
		{name: "missing product", mutate: func(m *MoveEvent) { m.ProductID = 0 }, wantErr: true},
		{name: "missing company", mutate: func(m *MoveEvent) { m.CompanyID = 0 }, wantErr: true},
		{name: "zero quantity", mutate: func(m *MoveEvent) { m.Quantity = 0 }, wantErr: true},
		{name: "negative quantity", mutate: func(m *MoveEvent) { m.Quantity = -3 }, wantErr: true},
		{name: "no locations", mutate: func(m *MoveEvent) { m.SrcLocationID = 0 }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event := valid
			tc.mutate(&event)

			err := event.Validate()

			if tc.wantErr {
				assert.ErrorIs(t, err, apperror.ErrInvalidMove)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
