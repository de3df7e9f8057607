package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Address struct {
	Street     string `bson:"street" json:"street"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state" json:"state"`
	PostalCode string `bson:"postalCode" json:"postalCode"`
	Country    string `bson:"country" json:"country"`
}

type Property struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	SellerID          string             `bson:"sellerId" json:"sellerId"`
	Title             string             `bson:"title" json:"title"`
	Description       string             `bson:"description" json:"description"`
	Address           Address            `bson:"address" json:"address"`
	Price             float64            `bson:"price" json:"price"`
	NumberOfBedrooms  int                `bson:"numberOfBedrooms" json:"numberOfBedrooms"`
	NumberOfBathrooms int                `bson:"numberOfBathrooms" json:"numberOfBathrooms"`
	Area              float64            `bson:"area" json:"area"`
	Amenities         []string           `bson:"amenities" json:"amenities"`
	Images            []string           `bson:"images" json:"images"`
	Likes             []string           `bson:"likes" json:"likes"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}
