package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/securecookie"
	"github.com/stylehub/fashion-store/app/helpers"
	"github.com/stylehub/fashion-store/app/middlewares"
	"github.com/stylehub/fashion-store/app/repositories"
	"github.com/stylehub/fashion-store/app/services"
	"github.com/unrolled/render"
)

const refreshCookieName = "refreshToken"

type AuthHandler struct {
	auth     *services.AuthService
	render   *render.Render
	validate *validator.Validate
	cookies  *securecookie.SecureCookie
	secure   bool
}

func NewAuthHandler(auth *services.AuthService, r *render.Render, v *validator.Validate, cookies *securecookie.SecureCookie, secureCookies bool) *AuthHandler {
	return &AuthHandler{auth: auth, render: r, validate: v, cookies: cookies, secure: secureCookies}
}

type RegisterPayload struct {
	FirstName string `json:"firstName" validate:"required,min=2"`
	LastName  string `json:"lastName" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshPayload struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if errs := h.decodeAndValidate(r, &payload); errs != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	result, err := h.auth.Register(r.Context(), services.RegisterInput{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Password:  payload.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			_ = h.render.JSON(w, http.StatusConflict, map[string]string{"message": "User already exists"})
			return
		}
		log.Printf("auth: register: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Registration failed"})
		return
	}

	h.setRefreshCookie(w, result.RefreshToken)
	_ = h.render.JSON(w, http.StatusCreated, authResponse(result))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if errs := h.decodeAndValidate(r, &payload); errs != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	result, err := h.auth.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
			return
		}
		log.Printf("auth: login: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Login failed"})
		return
	}

	h.setRefreshCookie(w, result.RefreshToken)
	_ = h.render.JSON(w, http.StatusOK, authResponse(result))
}

// RefreshToken accepts the refresh token from the request body or, failing
// that, from the httpOnly cookie set at login.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var payload RefreshPayload
	_ = json.NewDecoder(r.Body).Decode(&payload)

	token := payload.RefreshToken
	if token == "" {
		token = h.refreshTokenFromCookie(r)
	}
	if token == "" {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"message": "No refresh token provided"})
		return
	}

	result, err := h.auth.Refresh(r.Context(), token)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid or expired refresh token"})
			return
		}
		log.Printf("auth: refresh: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Token refresh failed"})
		return
	}

	h.setRefreshCookie(w, result.RefreshToken)
	_ = h.render.JSON(w, http.StatusOK, authResponse(result))
}

func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewares.UserID(r)
	if !ok {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"message": "No token provided"})
		return
	}

	user, err := h.auth.CurrentUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
			return
		}
		log.Printf("auth: current user: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to fetch user"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]any{"user": user})
}

func (h *AuthHandler) decodeAndValidate(r *http.Request, payload any) map[string]string {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return map[string]string{"body": "invalid JSON body"}
	}
	if err := h.validate.Struct(payload); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return helpers.FormatValidationErrors(verrs)
		}
		return map[string]string{"body": "invalid request"}
	}
	return nil
}

func (h *AuthHandler) setRefreshCookie(w http.ResponseWriter, token string) {
	encoded, err := h.cookies.Encode(refreshCookieName, token)
	if err != nil {
		log.Printf("auth: encode refresh cookie: %v", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    encoded,
		Path:     "/api/auth",
		MaxAge:   services.RefreshCookieMaxAge(),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) refreshTokenFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil {
		return ""
	}
	var token string
	if err := h.cookies.Decode(refreshCookieName, cookie.Value, &token); err != nil {
		return ""
	}
	return token
}

func authResponse(result *services.AuthResult) map[string]any {
	return map[string]any{
		"user":         result.User,
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
	}
}
