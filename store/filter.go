package store

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dwellio/property-marketplace/models"
)

// searchFilter translates the supplied criteria into a mongo filter.
// Location matches on address.state, bedrooms and bathrooms are exact,
// price is a ceiling, and every listed amenity must be present.
func searchFilter(criteria models.SearchCriteria) bson.M {
	query := bson.M{}
	if criteria.Location != "" {
		query["address.state"] = criteria.Location
	}
	if criteria.Bedrooms.Set {
		query["numberOfBedrooms"] = criteria.Bedrooms.Value
	}
	if criteria.Bathrooms.Set {
		query["numberOfBathrooms"] = criteria.Bathrooms.Value
	}
	if criteria.Price.Set {
		query["price"] = bson.M{"$lte": criteria.Price.Value}
	}
	if len(criteria.Amenities) > 0 {
		query["amenities"] = bson.M{"$all": criteria.Amenities}
	}
	return query
}
