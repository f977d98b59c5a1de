package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Slider states for the homepage advertisement workflow.
const (
	SliderUnset     = ""
	SliderRequested = "requested"
	SliderAdd       = "add"
)

func ValidSliderStatus(s string) bool {
	return s == SliderUnset || s == SliderRequested || s == SliderAdd
}

type Medicine struct {
	ID           primitive.ObjectID     `json:"_id" bson:"_id,omitempty"`
	Name         string                 `json:"name" bson:"name"`
	GenericName  string                 `json:"genericName,omitempty" bson:"genericName,omitempty"`
	Category     string                 `json:"category,omitempty" bson:"category,omitempty"`
	Company      string                 `json:"company,omitempty" bson:"company,omitempty"`
	Image        string                 `json:"image,omitempty" bson:"image,omitempty"`
	Price        float64                `json:"price" bson:"price"`
	AddedBy      string                 `json:"addedBy" bson:"addedBy"`
	Discount     *float64               `json:"discount,omitempty" bson:"discount,omitempty"`
	SliderStatus string                 `json:"sliderStatus,omitempty" bson:"sliderStatus,omitempty"`
	Extra        map[string]interface{} `json:"-" bson:",inline"`
}
