package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bookmark marks a saved post. It carries no user reference, so at most one
// bookmark can exist per post across the whole store.
type Bookmark struct {
	ID   primitive.ObjectID `json:"_id" bson:"_id"`
	Post primitive.ObjectID `json:"post" bson:"post"`
}
