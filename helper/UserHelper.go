package helper

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anmol-virk/blitzgramm-backend/database"
	"github.com/anmol-virk/blitzgramm-backend/models"
)

func GetUserByEmail(email string) (models.User, error) {
	var user models.User

	filter := bson.M{"email": email}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	userCollection := database.OpenCollection(database.Client, "users")
	err := userCollection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func GetUserById(id primitive.ObjectID) (models.User, error) {
	var user models.User

	filter := bson.M{"_id": id}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	userCollection := database.OpenCollection(database.Client, "users")
	err := userCollection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}
