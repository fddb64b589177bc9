package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID   `json:"_id" bson:"_id"`
	Name      string               `json:"name" bson:"name" validate:"required"`
	Picture   string               `json:"picture" bson:"picture"`
	Bio       string               `json:"bio" bson:"bio"`
	Following bool                 `json:"following" bson:"following"`
	Posts     []primitive.ObjectID `json:"post" bson:"post"`
	Email     string               `json:"email" bson:"email" validate:"required,email"`
	Password  string               `json:"password,omitempty" bson:"password" validate:"required"`
}
