package model

import (
	"frontdesk/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldNumber     = "number"
	FieldRoomTypeID = "room_type_id"
	FieldFloor      = "floor"
	FieldActive     = "active"
)

const (
	TypeTableName  = "room_types"
	TypeEntityName = "room_type"

	FieldName     = "name"
	FieldBaseRate = "base_rate"
	FieldCapacity = "capacity"
)

// RoomType carries the nightly base rate every room of the type is billed at.
type RoomType struct {
	ID       string          `db:"id"        json:"id"`
	Name     string          `db:"name"      json:"name"`
	BaseRate decimal.Decimal `db:"base_rate" json:"base_rate"`
	Capacity int             `db:"capacity"  json:"capacity"`
	model.Metadata
}

type Room struct {
	ID         string `db:"id"           json:"id"`
	Number     string `db:"number"       json:"number"`
	RoomTypeID string `db:"room_type_id" json:"room_type_id"`
	Floor      int    `db:"floor"        json:"floor"`
	Active     bool   `db:"active"       json:"active"`
	model.Metadata
}
