package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"tipton-reservations/internal/apperr"
	"tipton-reservations/internal/auth"
	"tipton-reservations/internal/booking"
	"tipton-reservations/internal/logger"
	"tipton-reservations/internal/models"
	"tipton-reservations/internal/utils"
)

type Handler struct {
	Bookings *booking.Service
	Logger   *logger.Logger
}

func NewHandler(bookings *booking.Service, log *logger.Logger) *Handler {
	return &Handler{Bookings: bookings, Logger: log}
}

// Routes mounts the booking endpoints onto the router. The caller is
// expected to have the auth middleware applied already.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/availability", h.FindAvailability)

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", h.CreateBooking)
		r.Get("/", h.ListAllBookings)
		r.Get("/confirmation/{confirmationNumber}", h.GetBookingByConfirmationNumber)

		r.Route("/{bookingId}", func(r chi.Router) {
			r.Get("/", h.GetBooking)
			r.Put("/", h.ModifyBooking)
			r.Get("/qr", h.ConfirmationQR)
			r.Post("/payment-intent", h.CreatePaymentIntent)
			r.Post("/modify-payment-intent", h.CreateModifyPaymentIntent)
			r.Post("/confirm", h.ConfirmBooking)
			r.Post("/cancel", h.CancelBooking)
			r.Post("/void", h.VoidBooking)
		})
	})

	r.Get("/users/{userId}/bookings", h.ListUserBookings)
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	var req models.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	checkIn, checkOut, err := parseDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		h.writeError(w, err)
		return
	}

	created, err := h.Bookings.CreateBooking(r.Context(), caller, booking.CreateBookingParams{
		RoomTypeID:     req.RoomTypeID,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfGuests: req.NumberOfGuests,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	found, err := h.Bookings.GetBooking(r.Context(), caller, chi.URLParam(r, "bookingId"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, found)
}

func (h *Handler) GetBookingByConfirmationNumber(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	found, err := h.Bookings.GetBookingByConfirmationNumber(r.Context(), caller, chi.URLParam(r, "confirmationNumber"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, found)
}

func (h *Handler) ListUserBookings(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	bookings, err := h.Bookings.ListUserBookings(r.Context(), caller, chi.URLParam(r, "userId"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, bookings)
}

func (h *Handler) ListAllBookings(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	bookings, err := h.Bookings.ListAllBookings(r.Context(), caller)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, bookings)
}

func (h *Handler) FindAvailability(w http.ResponseWriter, r *http.Request) {
	checkIn, checkOut, err := parseDates(r.URL.Query().Get("check_in"), r.URL.Query().Get("check_out"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	guests := 1
	if raw := r.URL.Query().Get("guests"); raw != "" {
		parsed, err := parsePositiveInt(raw)
		if err != nil {
			h.writeError(w, err)
			return
		}
		guests = parsed
	}

	listing, err := h.Bookings.FindAvailableRoomTypes(r.Context(), checkIn, checkOut, guests)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, listing)
}

func (h *Handler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	intent, err := h.Bookings.CreatePaymentIntent(r.Context(), caller, chi.URLParam(r, "bookingId"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, models.PaymentIntentResponse{ClientSecret: intent.ClientSecret})
}

func (h *Handler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	var req models.ConfirmBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.PaymentIntentID == "" {
		h.writeError(w, apperr.Validation("payment_intent_id is required"))
		return
	}

	confirmed, err := h.Bookings.ConfirmBooking(r.Context(), caller, chi.URLParam(r, "bookingId"), req.PaymentIntentID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, confirmed)
}

func (h *Handler) ModifyBooking(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	var req models.ModifyBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	checkIn, checkOut, err := parseDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		h.writeError(w, err)
		return
	}

	modified, err := h.Bookings.ModifyBooking(r.Context(), caller, chi.URLParam(r, "bookingId"), booking.ModifyBookingParams{
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  req.NumberOfGuests,
		PaymentIntentID: req.PaymentIntentID,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, modified)
}

func (h *Handler) CreateModifyPaymentIntent(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	var req models.ModifyBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	checkIn, checkOut, err := parseDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		h.writeError(w, err)
		return
	}

	intent, err := h.Bookings.CreateModifyPaymentIntent(r.Context(), caller, chi.URLParam(r, "bookingId"), booking.ModifyBookingParams{
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfGuests: req.NumberOfGuests,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, models.PaymentIntentResponse{ClientSecret: intent.ClientSecret})
}

func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	cancelled, err := h.Bookings.CancelBooking(r.Context(), caller, chi.URLParam(r, "bookingId"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, cancelled)
}

func (h *Handler) VoidBooking(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	voided, err := h.Bookings.VoidBooking(r.Context(), caller, chi.URLParam(r, "bookingId"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, voided)
}

func (h *Handler) ConfirmationQR(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	png, err := h.Bookings.ConfirmationQR(r.Context(), caller, chi.URLParam(r, "bookingId"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

type errorBody struct {
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		h.Logger.Error("API", err.Error())
	}
	h.writeJSON(w, status, errorBody{Error: err.Error(), Timestamp: time.Now()})
}

func parseDates(checkInRaw, checkOutRaw string) (time.Time, time.Time, error) {
	checkIn, err := utils.ParseDate(checkInRaw)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("%s", err.Error())
	}
	checkOut, err := utils.ParseDate(checkOutRaw)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("%s", err.Error())
	}
	return checkIn, checkOut, nil
}

func parsePositiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, apperr.Validation("guests must be a positive integer")
	}
	return n, nil
}
