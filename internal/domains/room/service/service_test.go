package service_test

import (
	"context"
	"errors"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	roomMocks "frontdesk/internal/domains/room/mocks"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	"frontdesk/shared/cache"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Room, *roomMocks.MockRoom, *roomMocks.MockRoomType, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockTypeRepo := roomMocks.NewMockRoomType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, mockTypeRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockTypeRepo, mockCache
}

func TestRoomService_CreateType(t *testing.T) {
	svc, _, mockTypeRepo, _ := newService(t)

	tests := []struct {
		name      string
		req       dto.CreateRoomTypeRequest
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  dto.CreateRoomTypeRequest{Name: " Deluxe ", BaseRate: decimal.RequireFromString("50.005")},
			setupMock: func() {
				mockTypeRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockTypeRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "duplicate name",
			req:  dto.CreateRoomTypeRequest{Name: "Deluxe", BaseRate: decimal.NewFromInt(50)},
			setupMock: func() {
				mockTypeRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "repository error",
			req:  dto.CreateRoomTypeRequest{Name: "Suite", BaseRate: decimal.NewFromInt(90)},
			setupMock: func() {
				mockTypeRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockTypeRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("snapshot error"))
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.CreateType(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Deluxe", res.Name)
			assert.Equal(t, "50.01", res.BaseRate.StringFixed(2))
			assert.Equal(t, 1, res.Capacity)
			assert.Equal(t, "test-user-id", res.CreatedBy)
		})
	}
}

func TestRoomService_Create(t *testing.T) {
	svc, mockRepo, mockTypeRepo, _ := newService(t)

	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  dto.CreateRoomRequest{Number: "101", RoomTypeID: "type-1", Floor: 1},
			setupMock: func() {
				mockTypeRepo.EXPECT().GetByID(gomock.Any(), "type-1").Return(model.RoomType{ID: "type-1"}, true)
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "unknown room type",
			req:  dto.CreateRoomRequest{Number: "101", RoomTypeID: "ghost"},
			setupMock: func() {
				mockTypeRepo.EXPECT().GetByID(gomock.Any(), "ghost").Return(model.RoomType{}, false)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "duplicate number",
			req:  dto.CreateRoomRequest{Number: "101", RoomTypeID: "type-1"},
			setupMock: func() {
				mockTypeRepo.EXPECT().GetByID(gomock.Any(), "type-1").Return(model.RoomType{ID: "type-1"}, true)
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "101", res.Number)
			assert.True(t, res.Active)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	svc, mockRepo, _, mockCache := newService(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Room{
		{ID: "r1", Number: "101"},
		{ID: "r2", Number: "102"},
	}, nil)

	res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	assert.Len(t, res.Rooms, 2)
}

func TestRoomService_Get(t *testing.T) {
	svc, mockRepo, _, mockCache := newService(t)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "found",
			id:   "r1",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "room:get:r1", gomock.Any()).Return(cache.Nil)
				mockRepo.EXPECT().GetByID(gomock.Any(), "r1").Return(model.Room{ID: "r1", Number: "101"}, true)
			},
		},
		{
			name: "not found",
			id:   "ghost",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "room:get:ghost", gomock.Any()).Return(cache.Nil)
				mockRepo.EXPECT().GetByID(gomock.Any(), "ghost").Return(model.Room{}, false)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.True(t, failure.IsNotFound(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "101", res.Number)
		})
	}
}
