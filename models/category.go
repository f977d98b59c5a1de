package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Category struct {
	ID    primitive.ObjectID     `json:"_id" bson:"_id,omitempty"`
	Name  string                 `json:"categoryName" bson:"categoryName"`
	Image string                 `json:"categoryImage,omitempty" bson:"categoryImage,omitempty"`
	Extra map[string]interface{} `json:"-" bson:",inline"`
}
