package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID        primitive.ObjectID  `json:"_id" bson:"_id"`
	Title     string              `json:"title" bson:"title" validate:"required"`
	Content   string              `json:"content" bson:"content"`
	Likes     int                 `json:"likes" bson:"likes"`
	Like      bool                `json:"like" bson:"like"`
	CreatedAt time.Time           `json:"createdAt" bson:"createdAt"`
	User      primitive.ObjectID  `json:"user" bson:"user"`
	Media     *primitive.ObjectID `json:"media" bson:"media"`
}
