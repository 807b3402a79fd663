package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID                 = "id"
	FieldEmail              = "email"
	FieldPassword           = "password"
	FieldRole               = "role"
	FieldFullName           = "full_name"
	FieldMustChangePassword = "must_change_password"
	FieldLastLogin          = "last_login"
	FieldActive             = "active"
)

// Cache key prefixes shared with services that create or change users.
const (
	CacheKeyGet    = "user:get"
	CacheKeyGetAll = "user:gets"
	CacheKeyCount  = "user:count"
)

// User is an account allowed to sign in. Password holds the bcrypt hash.
type User struct {
	ID                 string     `db:"id"                   json:"id"`
	Email              string     `db:"email"                json:"email"`
	Password           string     `db:"password"             json:"password"`
	Role               string     `db:"role"                 json:"role"`
	FullName           string     `db:"full_name"            json:"full_name"`
	MustChangePassword bool       `db:"must_change_password" json:"must_change_password"`
	LastLogin          *time.Time `db:"last_login"           json:"last_login"`
	Active             bool       `db:"active"               json:"active"`
	model.Metadata
}
