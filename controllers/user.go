package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dwellio/property-marketplace/models"
	"github.com/dwellio/property-marketplace/store"
)

// GetUser resolves a user record for the "contact seller" view. The seller
// reference on a property is never re-validated, so a dangling id is an
// expected 404 here, not a server error.
func GetUser(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		user, err := users.FindByID(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			RespondError(w, http.StatusNotFound, "User not found")
			return
		}
		if err != nil {
			log.Printf("Error fetching user %s: %v", id, err)
			RespondError(w, http.StatusInternalServerError, "Error fetching user")
			return
		}

		user.Password = ""
		respondJSON(w, http.StatusOK, user)
	}
}

func ToggleWishlist(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(r)
		if !ok {
			log.Println("User ID missing in context")
			RespondError(w, http.StatusUnauthorized, "User ID missing in context")
			return
		}

		var body struct {
			PropertyID string `json:"propertyId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			log.Printf("Invalid request body: %v", err)
			RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if body.PropertyID == "" {
			RespondError(w, http.StatusBadRequest, "propertyId is required")
			return
		}

		wishlist, added, err := users.ToggleWishlist(r.Context(), userID, body.PropertyID)
		if errors.Is(err, store.ErrNotFound) {
			RespondError(w, http.StatusNotFound, "User not found")
			return
		}
		if err != nil {
			log.Printf("Toggle wishlist failed for user %s: %v", userID, err)
			RespondError(w, http.StatusInternalServerError, "Failed to update wishlist")
			return
		}

		message := "Removed from wishlist"
		if added {
			message = "Added to wishlist"
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"message":  message,
			"wishlist": wishlist,
		})
	}
}

// GetWishlist resolves the caller's wishlist to property records. Entries
// whose property has since been deleted are dropped from the result.
func GetWishlist(users store.UserStore, properties store.PropertyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(r)
		if !ok {
			log.Println("User ID missing in context")
			RespondError(w, http.StatusUnauthorized, "User ID missing in context")
			return
		}

		user, err := users.FindByID(r.Context(), userID)
		if errors.Is(err, store.ErrNotFound) {
			RespondError(w, http.StatusNotFound, "User not found")
			return
		}
		if err != nil {
			log.Printf("Error fetching user %s: %v", userID, err)
			RespondError(w, http.StatusInternalServerError, "Error fetching user")
			return
		}

		listings := []models.Property{}
		for _, propertyID := range user.Wishlist {
			property, err := properties.FindByID(r.Context(), propertyID)
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			if err != nil {
				log.Printf("Error resolving wishlist entry %s: %v", propertyID, err)
				RespondError(w, http.StatusInternalServerError, "Error fetching wishlist")
				return
			}
			listings = append(listings, *property)
		}

		respondJSON(w, http.StatusOK, listings)
	}
}
