package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dwellio/property-marketplace/models"
	"github.com/dwellio/property-marketplace/store"
	"github.com/dwellio/property-marketplace/utils"
)

type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

func RegisterUser(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user models.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			log.Printf("Error decoding user data: %v", err)
			RespondError(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		if user.Email == "" || user.Password == "" {
			RespondError(w, http.StatusBadRequest, "Email and password are required")
			return
		}

		_, err := users.FindByEmail(r.Context(), user.Email)
		if err == nil {
			log.Printf("User email already exists: %s", user.Email)
			RespondError(w, http.StatusConflict, "Email already exists")
			return
		}
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("Error checking existing user: %v", err)
			RespondError(w, http.StatusInternalServerError, "Failed to create user")
			return
		}

		hashedPwd, err := utils.HashPassword(user.Password)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			RespondError(w, http.StatusInternalServerError, "Failed to create user")
			return
		}
		user.Password = hashedPwd

		if err := users.Insert(r.Context(), &user); err != nil {
			log.Printf("Error inserting user into the database: %v", err)
			RespondError(w, http.StatusInternalServerError, "Failed to create user")
			return
		}

		respondJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
	}
}

func LoginUser(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var credentials struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			log.Printf("Error decoding login credentials: %v", err)
			RespondError(w, http.StatusBadRequest, "Invalid payload")
			return
		}

		user, err := users.FindByEmail(r.Context(), credentials.Email)
		if errors.Is(err, store.ErrNotFound) {
			log.Printf("User not found: %s", credentials.Email)
			RespondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		if err != nil {
			log.Printf("Error fetching user by email: %v", err)
			RespondError(w, http.StatusInternalServerError, "Login failed")
			return
		}

		if !utils.CheckPasswordHash(credentials.Password, user.Password) {
			log.Printf("Invalid credentials for user: %s", credentials.Email)
			RespondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		token, err := utils.GenerateJWT(user.ID.Hex())
		if err != nil {
			log.Printf("Error generating JWT token: %v", err)
			RespondError(w, http.StatusInternalServerError, "Failed to generate token")
			return
		}

		user.Password = ""
		respondJSON(w, http.StatusOK, LoginResponse{
			Message: "Login successful",
			Token:   token,
			User:    user,
		})
	}
}
