// Package http provides http transport for the board
package http

import (
	stdhttp "net/http"

	"jbatoolkit/internal/modkit/httpkit"
	pnet "jbatoolkit/internal/platform/net"
	"jbatoolkit/internal/services/api/board/domain"
	svc "jbatoolkit/internal/services/api/board/service"
)

// Register mounts board endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	r.Use(pinAt)

	httpkit.Get(r, "/", h.board)
	httpkit.Get(r, "/clock", h.clock)
	httpkit.Get(r, "/night", h.night)
	httpkit.Get(r, "/workweek", h.workWeek)
	httpkit.Get(r, "/zones", h.zones)
}

type handlers struct{ svc svc.Service }

// pinAt moves a valid ?at= onto the request context and rejects a malformed one
func pinAt(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		at, ok, err := httpkit.QueryTime(r, "at")
		if err != nil {
			httpkit.Handle(func(*stdhttp.Request) httpkit.Response { return httpkit.Error(err) })(w, r)
			return
		}
		if ok {
			r = r.WithContext(pnet.WithAt(r.Context(), at))
		}
		next.ServeHTTP(w, r)
	})
}

// swagger:route GET /board Board boardAll
// @Summary Clock, night set and work week in one response
// @Tags Board
// @Produce json
// @Param at query string false "RFC3339 instant to evaluate at instead of the live board"
// @Success 200 {object} domain.BoardView "ok"
// @Router /board [get]
func (h *handlers) board(r *stdhttp.Request) (any, error) {
	return h.svc.Board(r.Context())
}

// swagger:route GET /board/clock Board boardClock
// @Summary Current 24h time and long date in the process zone
// @Tags Board
// @Produce json
// @Param at query string false "RFC3339 instant"
// @Success 200 {object} domain.ClockView "ok"
// @Router /board/clock [get]
func (h *handlers) clock(r *stdhttp.Request) (any, error) {
	return h.svc.Clock(r.Context())
}

// swagger:route GET /board/night Board boardNight
// @Summary Locations whose local hour is inside the night window
// @Tags Board
// @Produce json
// @Param at query string false "RFC3339 instant"
// @Success 200 {object} domain.NightView "ok"
// @Router /board/night [get]
func (h *handlers) night(r *stdhttp.Request) (any, error) {
	return h.svc.Night(r.Context())
}

// swagger:route GET /board/workweek Board boardWorkWeek
// @Summary Work week progress
// @Tags Board
// @Produce json
// @Param at query string false "RFC3339 instant"
// @Success 200 {object} domain.WorkWeekView "ok"
// @Router /board/workweek [get]
func (h *handlers) workWeek(r *stdhttp.Request) (any, error) {
	return h.svc.WorkWeek(r.Context())
}

// swagger:route GET /board/zones Board boardZones
// @Summary Every configured location with local clock and UTC offset
// @Tags Board
// @Produce json
// @Param at query string false "RFC3339 instant"
// @Param sort query string false "table or offset"
// @Success 200 {object} domain.ZonesView "ok"
// @Router /board/zones [get]
func (h *handlers) zones(r *stdhttp.Request) (any, error) {
	return h.svc.Zones(r.Context(), domain.ZonesQuery{Sort: r.URL.Query().Get("sort")})
}
