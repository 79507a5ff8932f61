package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"roomstay/internal/app"
	"roomstay/internal/domain"
)

type Handlers struct{ Svc *app.BookingService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/bookings", h.createBooking)
	s.mux.Get("/v1/bookings", h.listBookings)
	s.mux.Get("/v1/bookings/{id}", h.getBooking)
	s.mux.Put("/v1/bookings/{id}", h.updateBooking)
	s.mux.Delete("/v1/bookings/{id}", h.cancelBooking)
	s.mux.Get("/v1/rooms", h.listRooms)
}

// ---- wire types ----

type bookingPayload struct {
	RoomType     string `json:"roomType"`
	GuestCount   int    `json:"guestCount"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

func (p bookingPayload) input() domain.BookingInput {
	return domain.BookingInput{
		RoomType:     p.RoomType,
		GuestCount:   p.GuestCount,
		CheckInDate:  p.CheckInDate,
		CheckOutDate: p.CheckOutDate,
	}
}

// mutation response: confirmation message plus the booked stay
type bookingResponse struct {
	Message      string `json:"message"`
	BookingID    string `json:"bookingId"`
	RoomType     string `json:"roomType"`
	GuestCount   int    `json:"guestCount"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	TotalPrice   int    `json:"totalPrice"`
}

// full persisted record, as returned by get/list
type bookingRecord struct {
	BookingID    string `json:"bookingId"`
	RoomType     string `json:"roomType"`
	GuestCount   int    `json:"guestCount"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	CreatedAt    string `json:"createdAt"`
	TotalPrice   int    `json:"totalPrice"`
}

type roomRecord struct {
	RoomType    string `json:"roomType"`
	Capacity    int    `json:"capacity"`
	NightlyRate int    `json:"nightlyRate"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toResponse(msg string, b domain.Booking) bookingResponse {
	return bookingResponse{
		Message:      msg,
		BookingID:    b.BookingID,
		RoomType:     b.RoomType,
		GuestCount:   b.GuestCount,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		TotalPrice:   b.TotalPrice,
	}
}

func toRecord(b domain.Booking) bookingRecord {
	return bookingRecord{
		BookingID:    b.BookingID,
		RoomType:     b.RoomType,
		GuestCount:   b.GuestCount,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		CreatedAt:    b.CreatedAt,
		TotalPrice:   b.TotalPrice,
	}
}

// ---- writers ----

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeError maps the domain error taxonomy onto status codes. Store and
// unexpected errors are logged here and answered with a generic 500 that
// leaks no internal detail.
func writeError(w http.ResponseWriter, op string, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeProblem(w, http.StatusBadRequest, "Invalid Booking", ve.Error())
	case errors.Is(err, domain.ErrCancellationWindow):
		writeProblem(w, http.StatusBadRequest, "Cancellation Not Allowed",
			"bookings cannot be cancelled within 2 days of check-in")
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "booking not found")
	default:
		log.Error().Err(err).Str("op", op).Msg("operation failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// ---- handlers ----

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var p bookingPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	b, err := h.Svc.CreateBooking(r.Context(), p.input())
	if err != nil {
		writeError(w, "createBooking", err)
		return
	}
	writeJSON(w, http.StatusCreated, toResponse("Booking created successfully", b))
}

func (h *Handlers) getBooking(w http.ResponseWriter, r *http.Request) {
	b, err := h.Svc.GetBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "getBooking", err)
		return
	}
	writeJSON(w, http.StatusOK, toRecord(b))
}

func (h *Handlers) updateBooking(w http.ResponseWriter, r *http.Request) {
	var p bookingPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	b, err := h.Svc.UpdateBooking(r.Context(), chi.URLParam(r, "id"), p.input())
	if err != nil {
		writeError(w, "updateBooking", err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse("Booking updated successfully", b))
}

func (h *Handlers) cancelBooking(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.CancelBooking(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, "cancelBooking", err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Booking cancelled successfully"})
}

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	bs, err := h.Svc.ListBookings(r.Context())
	if err != nil {
		writeError(w, "listBookings", err)
		return
	}
	out := make([]bookingRecord, 0, len(bs))
	for _, b := range bs {
		out = append(out, toRecord(b))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms := h.Svc.ListRooms()
	out := make([]roomRecord, 0, len(rooms))
	for _, rm := range rooms {
		out = append(out, roomRecord{RoomType: rm.RoomType, Capacity: rm.Capacity, NightlyRate: rm.NightlyRate})
	}
	writeJSON(w, http.StatusOK, out)
}
