// internal/adapters/http_server/handlers.go
package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"cafe_directory/internal/app"
	"cafe_directory/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	C *app.CommandService
}

// cafeJSON is the wire shape shared by /all and /search: native field names.
type cafeJSON struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	MapURL       string  `json:"map_url"`
	ImgURL       string  `json:"img_url"`
	Location     string  `json:"location"`
	Seats        string  `json:"seats"`
	HasToilet    bool    `json:"has_toilet"`
	HasWifi      bool    `json:"has_wifi"`
	HasSockets   bool    `json:"has_sockets"`
	CanTakeCalls bool    `json:"can_take_calls"`
	CoffeePrice  *string `json:"coffee_price"`
}

// randomCafeJSON is /random's shape: has_sockets and seats are renamed.
type randomCafeJSON struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	MapURL       string  `json:"map_url"`
	ImgURL       string  `json:"img_url"`
	Location     string  `json:"location"`
	HasSocket    bool    `json:"has_socket"`
	HasToilet    bool    `json:"has_toilet"`
	HasWifi      bool    `json:"has_wifi"`
	CanTakeCalls bool    `json:"can_take_calls"`
	Seat         string  `json:"seat"`
	CoffeePrice  *string `json:"coffee_price"`
}

func toCafeJSON(c domain.Cafe) cafeJSON {
	return cafeJSON{
		ID:           c.ID,
		Name:         c.Name,
		MapURL:       c.MapURL,
		ImgURL:       c.ImgURL,
		Location:     c.Location,
		Seats:        c.Seats,
		HasToilet:    c.HasToilet,
		HasWifi:      c.HasWifi,
		HasSockets:   c.HasSockets,
		CanTakeCalls: c.CanTakeCalls,
		CoffeePrice:  c.CoffeePrice,
	}
}

func toCafeList(cafes []domain.Cafe) []cafeJSON {
	out := make([]cafeJSON, 0, len(cafes))
	for _, c := range cafes {
		out = append(out, toCafeJSON(c))
	}
	return out
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/random", h.randomCafe)
	s.mux.Get("/all", h.allCafes)
	s.mux.Get("/search", h.searchByLocation)
	s.mux.Post("/add", h.addCafe)
	s.mux.Patch("/update_price/{cafe_id}", h.updatePrice)
	s.mux.Delete("/report_closed/{cafe_id}", h.deleteCafe)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeResponse emits the {"response": {<key>: <msg>}} envelope used by the
// mutating endpoints; the key varies per outcome (Success, Not found, ...).
func writeResponse(w http.ResponseWriter, status int, key, msg string) {
	writeJSON(w, status, map[string]map[string]string{"response": {key: msg}})
}

func (h *Handlers) randomCafe(w http.ResponseWriter, r *http.Request) {
	c, err := h.Q.RandomCafe(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrEmptyStore) {
			writeError(w, http.StatusNotFound, "No cafes available")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]randomCafeJSON{"cafe": {
		ID:           c.ID,
		Name:         c.Name,
		MapURL:       c.MapURL,
		ImgURL:       c.ImgURL,
		Location:     c.Location,
		HasSocket:    c.HasSockets,
		HasToilet:    c.HasToilet,
		HasWifi:      c.HasWifi,
		CanTakeCalls: c.CanTakeCalls,
		Seat:         c.Seats,
		CoffeePrice:  c.CoffeePrice,
	}})
}

func (h *Handlers) allCafes(w http.ResponseWriter, r *http.Request) {
	cafes, err := h.Q.AllCafes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	// an empty store is a valid, non-error result here
	writeJSON(w, http.StatusOK, map[string][]cafeJSON{"cafes": toCafeList(cafes)})
}

func (h *Handlers) searchByLocation(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	cafes, err := h.Q.SearchByLocation(r.Context(), location)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("No cafe found for location '%s'", location))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]cafeJSON{"cafes": toCafeList(cafes)})
}

// formBool: permissive truthiness on purpose — any non-empty value counts as
// true, absent/empty as false. So has_wifi=false is true; callers send the
// field only when the amenity exists.
func formBool(r *http.Request, key string) bool {
	return r.PostFormValue(key) != ""
}

func (h *Handlers) addCafe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "malformed form body")
		return
	}
	c := domain.Cafe{
		Name:         r.PostFormValue("name"),
		MapURL:       r.PostFormValue("map_url"),
		ImgURL:       r.PostFormValue("img_url"),
		Location:     r.PostFormValue("location"),
		Seats:        r.PostFormValue("seats"),
		HasToilet:    formBool(r, "has_toilet"),
		HasWifi:      formBool(r, "has_wifi"),
		HasSockets:   formBool(r, "has_sockets"),
		CanTakeCalls: formBool(r, "can_take_calls"),
	}
	if p := r.PostFormValue("coffee_price"); p != "" {
		c.CoffeePrice = &p
	}
	if _, err := h.C.AddCafe(r.Context(), c); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			writeResponse(w, http.StatusConflict, "Conflict",
				fmt.Sprintf("A cafe with the name '%s' already exists.", c.Name))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeResponse(w, http.StatusOK, "Success", "Successfully added new cafe.")
}

func (h *Handlers) updatePrice(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "cafe_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeResponse(w, http.StatusNotFound, "Not found",
			fmt.Sprintf("No cafe with the id %s found", idStr))
		return
	}

	var price *string
	if p := r.URL.Query().Get("new_price"); p != "" {
		price = &p
	}

	if err := h.C.UpdatePrice(r.Context(), id, price); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeResponse(w, http.StatusNotFound, "Not found",
				fmt.Sprintf("No cafe with the id %d found", id))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeResponse(w, http.StatusOK, "Success", "Coffee price has been successfully updated")
}

func (h *Handlers) deleteCafe(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "cafe_id"), 10, 64)
	if err != nil {
		writeResponse(w, http.StatusNotFound, "Not found", "No cafe with the id is found.")
		return
	}

	name, err := h.C.DeleteCafe(r.Context(), id, r.URL.Query().Get("api_key"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeResponse(w, http.StatusNotFound, "Not found", "No cafe with the id is found.")
		case errors.Is(err, domain.ErrInvalidKey):
			writeResponse(w, http.StatusForbidden, "Access Denied",
				"Invalid API Key. You have no authorization to delete cafe data.")
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	writeResponse(w, http.StatusOK, "Success",
		fmt.Sprintf("Cafe data with name %s successfully deleted.", name))
}
