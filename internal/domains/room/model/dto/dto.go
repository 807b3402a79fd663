package dto

import (
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRoomTypeRequest struct {
	Name     string          `json:"name"      validate:"required,max=100"`
	BaseRate decimal.Decimal `json:"base_rate" validate:"gt=0"              swaggertype:"string"`
	Capacity int             `json:"capacity"  validate:"omitempty,min=1"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	capacity := c.Capacity
	if capacity == 0 {
		capacity = 1
	}

	return model.RoomType{
		ID:       uuid.NewString(),
		Name:     c.Name,
		BaseRate: c.BaseRate.Round(2),
		Capacity: capacity,
		Metadata: gModel.NewMetadata(user, timezone.Now()),
	}
}

type RoomTypeResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	BaseRate decimal.Decimal `json:"base_rate" swaggertype:"string"`
	Capacity int             `json:"capacity"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Name = model.Name
	r.BaseRate = model.BaseRate
	r.Capacity = model.Capacity
	r.Metadata.FromModel(model.Metadata)
}

type CreateRoomRequest struct {
	Number     string `json:"number"       validate:"required,max=20"`
	RoomTypeID string `json:"room_type_id" validate:"required"`
	Floor      int    `json:"floor"        validate:"omitempty,min=0"`
	Active     *bool  `json:"active"       validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:         uuid.NewString(),
		Number:     c.Number,
		RoomTypeID: c.RoomTypeID,
		Floor:      c.Floor,
		Active:     active,
		Metadata:   gModel.NewMetadata(user, timezone.Now()),
	}
}

type RoomResponse struct {
	ID         string `json:"id"`
	Number     string `json:"number"`
	RoomTypeID string `json:"room_type_id"`
	Floor      int    `json:"floor"`
	Active     bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.RoomTypeID = model.RoomTypeID
	r.Floor = model.Floor
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
