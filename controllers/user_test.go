package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dwellio/property-marketplace/models"
)

func seedUser(t *testing.T, users *memUserStore, u models.User) models.User {
	t.Helper()
	if err := users.Insert(context.Background(), &u); err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return u
}

func TestGetUserReturnsSellerContact(t *testing.T) {
	users := newMemUserStore()
	seller := seedUser(t, users, models.User{
		FirstName:   "Asha",
		LastName:    "Naik",
		Email:       "asha@example.com",
		PhoneNumber: "9876543210",
		Password:    "hash",
	})

	handler := GetUser(users)
	rec := httptest.NewRecorder()
	handler(rec, withID(authedRequest(http.MethodGet, "/api/user/"+seller.ID.Hex(), nil, "buyer1"), seller.ID.Hex()))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got models.User
	decodeJSON(t, rec, &got)
	if got.Email != "asha@example.com" || got.PhoneNumber != "9876543210" {
		t.Errorf("expected contact details, got %+v", got)
	}
	if got.Password != "" {
		t.Error("password hash must never be serialized")
	}
}

func TestGetUserDanglingReference(t *testing.T) {
	handler := GetUser(newMemUserStore())
	rec := httptest.NewRecorder()
	handler(rec, withID(authedRequest(http.MethodGet, "/api/user/deadbeefdeadbeefdeadbeef", nil, "buyer1"), "deadbeefdeadbeefdeadbeef"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for dangling seller reference, got %d", rec.Code)
	}
	assertErrorBody(t, rec, "User not found")
}

func TestToggleWishlistInvolution(t *testing.T) {
	users := newMemUserStore()
	u := seedUser(t, users, models.User{Email: "buyer@example.com"})
	handler := ToggleWishlist(users)

	type wishlistResponse struct {
		Message  string   `json:"message"`
		Wishlist []string `json:"wishlist"`
	}

	rec := httptest.NewRecorder()
	handler(rec, authedRequest(http.MethodPost, "/api/user/wishlist", strings.NewReader(`{"propertyId":"p1"}`), u.ID.Hex()))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var first wishlistResponse
	decodeJSON(t, rec, &first)
	if first.Message != "Added to wishlist" || len(first.Wishlist) != 1 || first.Wishlist[0] != "p1" {
		t.Errorf("unexpected first toggle result: %+v", first)
	}

	rec = httptest.NewRecorder()
	handler(rec, authedRequest(http.MethodPost, "/api/user/wishlist", strings.NewReader(`{"propertyId":"p1"}`), u.ID.Hex()))
	var second wishlistResponse
	decodeJSON(t, rec, &second)
	if second.Message != "Removed from wishlist" || len(second.Wishlist) != 0 {
		t.Errorf("unexpected second toggle result: %+v", second)
	}
}

func TestToggleWishlistRequiresPropertyID(t *testing.T) {
	users := newMemUserStore()
	u := seedUser(t, users, models.User{Email: "buyer@example.com"})
	handler := ToggleWishlist(users)

	rec := httptest.NewRecorder()
	handler(rec, authedRequest(http.MethodPost, "/api/user/wishlist", strings.NewReader(`{}`), u.ID.Hex()))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetWishlistDropsDanglingEntries(t *testing.T) {
	props := newMemPropertyStore()
	users := newMemUserStore()

	alive := seedProperty(t, props, models.Property{Title: "Still listed", SellerID: "seller1"})
	dead := seedProperty(t, props, models.Property{Title: "Gone soon", SellerID: "seller1"})

	u := seedUser(t, users, models.User{
		Email:    "buyer@example.com",
		Wishlist: []string{alive.ID.Hex(), dead.ID.Hex()},
	})

	if err := props.Delete(context.Background(), dead.ID.Hex()); err != nil {
		t.Fatalf("deleting property: %v", err)
	}

	handler := GetWishlist(users, props)
	rec := httptest.NewRecorder()
	handler(rec, authedRequest(http.MethodGet, "/api/user/wishlist", nil, u.ID.Hex()))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var listings []models.Property
	decodeJSON(t, rec, &listings)
	if len(listings) != 1 || listings[0].ID != alive.ID {
		t.Fatalf("expected only the surviving listing, got %+v", listings)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	users := newMemUserStore()
	register := RegisterUser(users)
	login := LoginUser(users)

	rec := httptest.NewRecorder()
	register(rec, httptest.NewRequest(http.MethodPost, "/user/register",
		strings.NewReader(`{"firstName":"Ravi","email":"ravi@example.com","password":"secret123"}`)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	register(rec, httptest.NewRequest(http.MethodPost, "/user/register",
		strings.NewReader(`{"email":"ravi@example.com","password":"other"}`)))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	login(rec, httptest.NewRequest(http.MethodPost, "/user/login",
		strings.NewReader(`{"email":"ravi@example.com","password":"secret123"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on login, got %d: %s", rec.Code, rec.Body.String())
	}
	var res LoginResponse
	decodeJSON(t, rec, &res)
	if res.Token == "" {
		t.Error("expected a token on successful login")
	}
	if res.User == nil || res.User.Password != "" {
		t.Error("expected user payload without password hash")
	}

	rec = httptest.NewRecorder()
	login(rec, httptest.NewRequest(http.MethodPost, "/user/login",
		strings.NewReader(`{"email":"ravi@example.com","password":"wrong"}`)))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", rec.Code)
	}
}
