package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Role string

const (
	RoleUser   Role = "User"
	RoleSeller Role = "Seller"
	RoleAdmin  Role = "Admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// User is keyed by email. Profile fields sent by the sign-in client are kept
// as-is in Profile and flattened into the stored document.
type User struct {
	ID      primitive.ObjectID     `json:"_id" bson:"_id,omitempty"`
	Email   string                 `json:"email" bson:"email"`
	Name    string                 `json:"name,omitempty" bson:"name,omitempty"`
	Photo   string                 `json:"photo,omitempty" bson:"photo,omitempty"`
	Role    Role                   `json:"role" bson:"role"`
	Profile map[string]interface{} `json:"-" bson:",inline"`
}
