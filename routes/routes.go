package routes

import (
	"github.com/gorilla/mux"

	"github.com/dwellio/property-marketplace/cache"
	"github.com/dwellio/property-marketplace/controllers"
	"github.com/dwellio/property-marketplace/middleware"
	"github.com/dwellio/property-marketplace/store"
)

func Routes(router *mux.Router, properties store.PropertyStore, users store.UserStore, responseCache cache.Cache) {
	// Auth routes
	router.HandleFunc("/user/register", controllers.RegisterUser(users)).Methods("POST")
	router.HandleFunc("/user/login", controllers.LoginUser(users)).Methods("POST")

	// Routes that require authentication
	authenticated := router.PathPrefix("/api").Subrouter()
	authenticated.Use(middleware.AuthMiddleware)

	// Property routes. Static paths are registered before the {id}
	// variants so mux never captures "user" or "search" as an id.
	authenticated.HandleFunc("/property", controllers.CreateProperty(properties, responseCache)).Methods("POST")
	authenticated.HandleFunc("/property", controllers.GetAllProperties(properties, responseCache)).Methods("GET")
	authenticated.HandleFunc("/property/search", controllers.SearchProperties(properties, responseCache)).Methods("POST")
	authenticated.HandleFunc("/property/user", controllers.GetUserProperties(properties)).Methods("GET")
	authenticated.HandleFunc("/property/like/{id}", controllers.ToggleLike(properties, responseCache)).Methods("GET", "POST")
	authenticated.HandleFunc("/property/{id}", controllers.GetProperty(properties)).Methods("GET")
	authenticated.HandleFunc("/property/{id}", controllers.UpdateProperty(properties, responseCache)).Methods("PUT", "PATCH")
	authenticated.HandleFunc("/property/{id}", controllers.DeleteProperty(properties, responseCache)).Methods("DELETE")

	// User routes
	authenticated.HandleFunc("/user/wishlist", controllers.ToggleWishlist(users)).Methods("POST")
	authenticated.HandleFunc("/user/wishlist", controllers.GetWishlist(users, properties)).Methods("GET")
	authenticated.HandleFunc("/user/{id}", controllers.GetUser(users)).Methods("GET")
}
