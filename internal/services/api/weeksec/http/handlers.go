// Package http provides http transport for the week seconds encoder
package http

import (
	stdhttp "net/http"
	"strconv"

	"jbatoolkit/internal/core/weeksec"
	"jbatoolkit/internal/modkit/httpkit"
	perr "jbatoolkit/internal/platform/errors"
	"jbatoolkit/internal/platform/logger"
	"jbatoolkit/internal/platform/net/http/bind"
	"jbatoolkit/internal/services/api/weeksec/domain"
	svc "jbatoolkit/internal/services/api/weeksec/service"
)

// Register mounts week seconds endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	if err := bind.RegisterTag("weekday", validWeekday, "{0} must be a day name or 0-6 with Sunday as 0"); err != nil {
		logger.Named("weeksec").Error().Err(err).Msg("weekday validator not registered")
	}

	h := &handlers{svc: s}

	httpkit.PostJSON(r, "/encode", h.encode)
	httpkit.Get(r, "/decode/{seconds}", h.decode)
	httpkit.Get(r, "/days", h.days)
}

func validWeekday(fl bind.FieldLevel) bool {
	_, err := weeksec.ParseDay(fl.Field().String())
	return err == nil
}

type handlers struct{ svc svc.Service }

// swagger:route POST /weeksec/encode WeekSeconds weeksecEncode
// @Summary Seconds since Sunday 00:00:00 for a day and HH:MM:SS time
// @Tags WeekSeconds
// @Accept json
// @Produce json
// @Param payload body domain.EncodeInput true "Day and time"
// @Success 200 {object} domain.EncodeOutput "ok"
// @Failure 422 {object} httpkit.Envelope "invalid time format or values"
// @Router /weeksec/encode [post]
func (h *handlers) encode(r *stdhttp.Request, in domain.EncodeInput) (any, error) {
	return h.svc.Encode(r.Context(), in)
}

// swagger:route GET /weeksec/decode/{seconds} WeekSeconds weeksecDecode
// @Summary Day and time for a total from 0 to 604799
// @Tags WeekSeconds
// @Produce json
// @Param seconds path int true "Seconds since Sunday 00:00:00"
// @Success 200 {object} domain.DecodeOutput "ok"
// @Router /weeksec/decode/{seconds} [get]
func (h *handlers) decode(r *stdhttp.Request) (any, error) {
	raw := httpkit.URLParam(r, "seconds")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, perr.WithField(perr.InvalidArgf("seconds must be an integer, got %q", raw), "seconds")
	}
	return h.svc.Decode(r.Context(), domain.DecodeInput{Seconds: n})
}

// swagger:route GET /weeksec/days WeekSeconds weeksecDays
// @Summary Day names in Sunday-first order
// @Tags WeekSeconds
// @Produce json
// @Success 200 {object} domain.DaysOutput "ok"
// @Router /weeksec/days [get]
func (h *handlers) days(r *stdhttp.Request) (any, error) {
	return h.svc.Days(r.Context())
}
