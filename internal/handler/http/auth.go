package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/medlink-app/medlink-api/internal/logger"
	"github.com/medlink-app/medlink-api/internal/service"
	"github.com/medlink-app/medlink-api/internal/store"
	"github.com/medlink-app/medlink-api/internal/utils"
	"github.com/medlink-app/medlink-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, token, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already registered")
			http.Error(w, "email already registered", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.AuthResponse{Token: token.String(), User: registeredUser}, http.StatusCreated)
}

func (h *Handler) registerDoctor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredDoctor, err := h.services.AuthService.RegisterDoctor(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already registered")
			http.Error(w, "email already registered", http.StatusConflict)
			return
		case errors.Is(err, store.ErrLicenseAlreadyExists):
			log.Err(err).Msg("license number already registered")
			http.Error(w, "license number already registered", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during doctor registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	response := models.DoctorRegistrationResponse{
		Message:  "doctor registration submitted, awaiting admin approval",
		DoctorID: registeredDoctor.UserID,
	}
	utils.WriteJSON(w, response, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid credentials")
			http.Error(w, "invalid email or password", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrAccountDeactivated):
			log.Err(err).Msg("account deactivated")
			http.Error(w, "account is deactivated", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrDoctorNotApproved):
			log.Err(err).Msg("doctor not approved")
			http.Error(w, "doctor account is not approved yet", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{Token: token.String(), User: foundUser}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Int64("id", userID).Msg("token subject no longer exists")
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", userID).Msg("current user lookup failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) pendingDoctors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	doctors, err := h.services.AuthService.ListPendingDoctors(ctx)
	if err != nil {
		log.Err(err).Msg("listing pending doctors failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	views := make([]models.PendingDoctor, 0, len(doctors))
	for _, doctor := range doctors {
		views = append(views, models.PendingDoctorView(doctor))
	}

	utils.WriteJSON(w, views, http.StatusOK)
}

func (h *Handler) approveDoctor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	adminID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.DoctorApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	doctor, err := h.services.AuthService.UpdateDoctorStatus(ctx, adminID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDoctorStatus):
			log.Err(err).Msg("invalid doctor status")
			http.Error(w, "invalid doctor status", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrDoctorNotFound):
			log.Err(err).Int64("doctorId", req.DoctorID).Msg("doctor not found")
			http.Error(w, "doctor not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("doctorId", req.DoctorID).Msg("doctor status update failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	response := models.DoctorApprovalResponse{
		Message: "doctor status updated to " + string(doctor.DoctorStatus),
		Doctor:  doctor,
	}
	utils.WriteJSON(w, response, http.StatusOK)
}
