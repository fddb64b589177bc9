package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image records an upload hosted externally; only the URL is kept here.
type Image struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id"`
	ImageURL string             `json:"imageUrl" bson:"imageUrl"`
}
