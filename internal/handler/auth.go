package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/xautrade/meeting-server-go/internal/httputil"
	"github.com/xautrade/meeting-server-go/internal/service"
	"github.com/xautrade/meeting-server-go/internal/util"
)

type AuthHandler struct {
	accounts *service.AccountService
	geo      *service.GeoService
}

func NewAuthHandler(accounts *service.AccountService, geo *service.GeoService) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		geo:      geo,
	}
}

func (h *AuthHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Get("/countries-with-states", h.CountriesWithStates)

	return r
}

// registerRequest doubles as the login shape; login reads only the email
// and password fields and ignores the rest.
type registerRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	MobileNumber string `json:"mobile_number"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	CountryID    int64  `json:"country_id"`
	StateID      int64  `json:"state_id"`
}

// POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, httputil.Fail(http.StatusBadRequest, "Invalid request body"))
		return
	}

	if !util.IsValidEmail(req.Email) {
		writeEnvelope(w, httputil.Fail(http.StatusBadRequest, "Invalid email address"))
		return
	}
	if req.Password == "" {
		writeEnvelope(w, httputil.Fail(http.StatusBadRequest, "password is required"))
		return
	}
	if req.MobileNumber == "" {
		writeEnvelope(w, httputil.Fail(http.StatusBadRequest, "mobile_number is required"))
		return
	}

	userID, err := h.accounts.Register(r.Context(), service.RegisterParams{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
		Password:     req.Password,
		CountryID:    req.CountryID,
		StateID:      req.StateID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeEnvelope(w, httputil.OK("User registered successfully", map[string]any{
		"user_id": userID,
	}))
}

// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, httputil.Fail(http.StatusBadRequest, "Invalid request body"))
		return
	}

	result, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeEnvelope(w, httputil.OK("Login successful", map[string]any{
		"access_token": result.AccessToken,
		"token_type":   result.TokenType,
		"user":         result.User,
	}))
}

// GET /countries-with-states
func (h *AuthHandler) CountriesWithStates(w http.ResponseWriter, r *http.Request) {
	countries, err := h.geo.CountriesWithStates(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to load reference data")
		writeError(w, err)
		return
	}

	writeEnvelope(w, httputil.OK("Countries with states retrieved successfully", map[string]any{
		"countries": countries,
	}))
}
