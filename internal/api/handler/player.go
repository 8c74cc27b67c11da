package handler

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"github.com/mcoot/playerroster/internal/api/request"
	"github.com/mcoot/playerroster/internal/api/response"
	"github.com/mcoot/playerroster/internal/model"
	"github.com/mcoot/playerroster/internal/services/players"
	"github.com/mcoot/playerroster/internal/services/query"
)

// PlayerHandler handles the /rest/players endpoints
type PlayerHandler struct {
	players *players.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(players *players.Service) *PlayerHandler {
	return &PlayerHandler{
		players: players,
	}
}

// List handles GET /rest/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	criteria, err := parseCriteria(params)
	if err != nil {
		WriteError(w, err)
		return
	}

	order := model.OrderID
	if v := params.Get("order"); v != "" {
		if order, err = model.ParseOrder(v); err != nil {
			WriteError(w, NewInvalidRequestError(err.Error()))
			return
		}
	}

	q := players.ListQuery{Criteria: criteria, Order: &order}
	if q.PageNumber, err = intParam(params, "pageNumber"); err != nil {
		WriteError(w, err)
		return
	}
	if q.PageSize, err = intParam(params, "pageSize"); err != nil {
		WriteError(w, err)
		return
	}

	page, err := h.players.List(r.Context(), q)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(page))
}

// Count handles GET /rest/players/count
func (h *PlayerHandler) Count(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r.URL.Query())
	if err != nil {
		WriteError(w, err)
		return
	}

	count, err := h.players.Count(r.Context(), criteria)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, count)
}

// Get handles GET /rest/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.players.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Create handles POST /rest/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.PlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.players.Create(r.Context(), req.ToInput())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Update handles POST /rest/players/{id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	// An empty body is an empty patch
	var req request.PlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.players.Update(r.Context(), id, req.ToInput())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Delete handles DELETE /rest/players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.players.Delete(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// playerID reads the {id} path variable; only positive integers are valid
func playerID(r *http.Request) (model.PlayerID, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, NewInvalidRequestError("id must be a positive integer")
	}
	return model.PlayerID(id), nil
}

func parseCriteria(params url.Values) (query.Criteria, error) {
	var (
		c   query.Criteria
		err error
	)

	if v, ok := stringParam(params, "name"); ok {
		c.Name = &v
	}
	if v, ok := stringParam(params, "title"); ok {
		c.Title = &v
	}
	if v, ok := stringParam(params, "race"); ok {
		race, err := model.ParseRace(v)
		if err != nil {
			return c, NewInvalidRequestError(err.Error())
		}
		c.Race = &race
	}
	if v, ok := stringParam(params, "profession"); ok {
		profession, err := model.ParseProfession(v)
		if err != nil {
			return c, NewInvalidRequestError(err.Error())
		}
		c.Profession = &profession
	}
	if c.After, err = millisParam(params, "after"); err != nil {
		return c, err
	}
	if c.Before, err = millisParam(params, "before"); err != nil {
		return c, err
	}
	if v, ok := stringParam(params, "banned"); ok {
		banned, err := strconv.ParseBool(v)
		if err != nil {
			return c, NewInvalidRequestError("banned must be true or false")
		}
		c.Banned = &banned
	}
	if c.MinExperience, err = intParam(params, "minExperience"); err != nil {
		return c, err
	}
	if c.MaxExperience, err = intParam(params, "maxExperience"); err != nil {
		return c, err
	}
	if c.MinLevel, err = intParam(params, "minLevel"); err != nil {
		return c, err
	}
	if c.MaxLevel, err = intParam(params, "maxLevel"); err != nil {
		return c, err
	}

	return c, nil
}

// stringParam treats an empty value as absent
func stringParam(params url.Values, name string) (string, bool) {
	v := params.Get(name)
	return v, v != ""
}

func intParam(params url.Values, name string) (*int, error) {
	v, ok := stringParam(params, name)
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, NewInvalidRequestError(name + " must be an integer")
	}
	return &n, nil
}

func millisParam(params url.Values, name string) (*time.Time, error) {
	v, ok := stringParam(params, name)
	if !ok {
		return nil, nil
	}
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, NewInvalidRequestError(name + " must be epoch milliseconds")
	}
	t := time.UnixMilli(ms).UTC()
	return &t, nil
}
