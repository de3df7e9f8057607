package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dwellio/property-marketplace/cache"
	"github.com/dwellio/property-marketplace/models"
	"github.com/dwellio/property-marketplace/store"
)

const (
	propertyCachePrefix = "property"
	propertyCacheTTL    = 10 * time.Minute
)

func CreateProperty(properties store.PropertyStore, responseCache cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(r)
		if !ok {
			log.Println("User ID missing in context")
			RespondError(w, http.StatusUnauthorized, "User ID missing in context")
			return
		}

		var property models.Property
		if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
			log.Printf("Invalid request body: %v", err)
			RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		// The seller is always the authenticated caller, regardless of
		// what the body claims.
		property.SellerID = userID
		property.Likes = []string{}

		if err := properties.Insert(r.Context(), &property); err != nil {
			log.Printf("Insert failed: %v", err)
			RespondError(w, http.StatusInternalServerError, "Failed to create property")
			return
		}

		go responseCache.Invalidate(context.Background(), propertyCachePrefix)

		respondJSON(w, http.StatusOK, property)
	}
}

func GetProperty(properties store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		property, err := properties.FindByID(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			RespondError(w, http.StatusNotFound, "Property not found")
			return
		}
		if err != nil {
			log.Printf("Error fetching property %s: %v", id, err)
			RespondError(w, http.StatusInternalServerError, "Error fetching property")
			return
		}

		respondJSON(w, http.StatusOK, property)
	}
}

func GetAllProperties(properties store.PropertyStore, responseCache cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cacheKey := cache.Key(propertyCachePrefix, "all")

		if cached, ok := responseCache.Get(r.Context(), cacheKey); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}

		all, err := properties.FindAll(r.Context())
		if err != nil {
			log.Printf("Error fetching properties: %v", err)
			RespondError(w, http.StatusInternalServerError, "Error fetching properties")
			return
		}

		resultBytes, err := json.Marshal(all)
		if err != nil {
			log.Printf("Failed to serialize properties: %v", err)
			RespondError(w, http.StatusInternalServerError, "Failed to encode response")
			return
		}

		responseCache.Set(r.Context(), cacheKey, string(resultBytes), propertyCacheTTL)

		w.Header().Set("Content-Type", "application/json")
		w.Write(resultBytes)
	}
}

func SearchProperties(properties store.PropertyStore, responseCache cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var criteria models.SearchCriteria
		if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
			log.Printf("Invalid search criteria: %v", err)
			RespondError(w, http.StatusBadRequest, "Invalid search criteria")
			return
		}

		// Marshaling the parsed criteria normalizes the request, so
		// equivalent searches share one cache entry.
		normalized, err := json.Marshal(criteria)
		if err != nil {
			log.Printf("Failed to normalize search criteria: %v", err)
			RespondError(w, http.StatusInternalServerError, "Failed to process search")
			return
		}
		cacheKey := cache.Key(propertyCachePrefix, "search", string(normalized))

		if cached, ok := responseCache.Get(r.Context(), cacheKey); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}

		results, err := properties.Search(r.Context(), criteria)
		if err != nil {
			log.Printf("Error searching properties with criteria %s: %v", normalized, err)
			RespondError(w, http.StatusInternalServerError, "Error searching properties")
			return
		}

		resultBytes, err := json.Marshal(results)
		if err != nil {
			log.Printf("Failed to serialize search results: %v", err)
			RespondError(w, http.StatusInternalServerError, "Failed to encode response")
			return
		}

		responseCache.Set(r.Context(), cacheKey, string(resultBytes), propertyCacheTTL)

		w.Header().Set("Content-Type", "application/json")
		w.Write(resultBytes)
	}
}

func GetUserProperties(properties store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(r)
		if !ok {
			log.Println("User ID missing in context")
			RespondError(w, http.StatusUnauthorized, "User ID missing in context")
			return
		}

		listings, err := properties.FindBySeller(r.Context(), userID)
		if err != nil {
			log.Printf("Error fetching properties for seller %s: %v", userID, err)
			RespondError(w, http.StatusInternalServerError, "Error fetching properties")
			return
		}

		respondJSON(w, http.StatusOK, listings)
	}
}

func UpdateProperty(properties store.PropertyStore, responseCache cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(r)
		if !ok {
			log.Println("User ID missing in context")
			RespondError(w, http.StatusUnauthorized, "User ID missing in context")
			return
		}

		id := mux.Vars(r)["id"]

		var fields map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			log.Printf("Invalid update data: %v", err)
			RespondError(w, http.StatusBadRequest, "Invalid update data")
			return
		}

		property, err := properties.FindByID(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			RespondError(w, http.StatusNotFound, "Property not found")
			return
		}
		if err != nil {
			log.Printf("Error fetching property %s: %v", id, err)
			RespondError(w, http.StatusInternalServerError, "Error fetching property")
			return
		}

		if property.SellerID != userID {
			log.Printf("User %s attempted to update property %s owned by %s", userID, id, property.SellerID)
			RespondError(w, http.StatusForbidden, "Not authorized to modify this property")
			return
		}

		if err := properties.UpdateFields(r.Context(), id, fields); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				RespondError(w, http.StatusNotFound, "Property not found")
				return
			}
			log.Printf("Update failed for property %s: %v", id, err)
			RespondError(w, http.StatusInternalServerError, "Update failed")
			return
		}

		go responseCache.Invalidate(context.Background(), propertyCachePrefix)

		respondJSON(w, http.StatusOK, map[string]string{"message": "Updated successfully"})
	}
}

func DeleteProperty(properties store.PropertyStore, responseCache cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(r)
		if !ok {
			log.Println("User ID missing in context")
			RespondError(w, http.StatusUnauthorized, "User ID missing in context")
			return
		}

		id := mux.Vars(r)["id"]

		property, err := properties.FindByID(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			RespondError(w, http.StatusNotFound, "Property not found")
			return
		}
		if err != nil {
			log.Printf("Error fetching property %s: %v", id, err)
			RespondError(w, http.StatusInternalServerError, "Error fetching property")
			return
		}

		if property.SellerID != userID {
			log.Printf("User %s attempted to delete property %s owned by %s", userID, id, property.SellerID)
			RespondError(w, http.StatusForbidden, "Not authorized to modify this property")
			return
		}

		if err := properties.Delete(r.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				RespondError(w, http.StatusNotFound, "Property not found")
				return
			}
			log.Printf("Delete failed for property %s: %v", id, err)
			RespondError(w, http.StatusInternalServerError, "Delete failed")
			return
		}

		go responseCache.Invalidate(context.Background(), propertyCachePrefix)

		respondJSON(w, http.StatusOK, map[string]string{"message": "Deleted successfully"})
	}
}

func ToggleLike(properties store.PropertyStore, responseCache cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(r)
		if !ok {
			log.Println("User ID missing in context")
			RespondError(w, http.StatusUnauthorized, "User ID missing in context")
			return
		}

		id := mux.Vars(r)["id"]

		likes, liked, err := properties.ToggleLike(r.Context(), id, userID)
		if errors.Is(err, store.ErrNotFound) {
			RespondError(w, http.StatusNotFound, "Property not found")
			return
		}
		if err != nil {
			log.Printf("Toggle like failed for property %s: %v", id, err)
			RespondError(w, http.StatusInternalServerError, "Failed to update likes")
			return
		}

		go responseCache.Invalidate(context.Background(), propertyCachePrefix)

		message := "Successfully Unliked"
		if liked {
			message = "Successfully liked"
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"message": message,
			"likes":   likes,
		})
	}
}
