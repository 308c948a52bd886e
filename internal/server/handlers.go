package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"trychooser/internal/chooser"
	"trychooser/internal/definition"
	"trychooser/internal/domain"
)

// DefinitionResponse is the body of GET /definition.
type DefinitionResponse struct {
	Fingerprint domain.Fingerprint   `json:"fingerprint"`
	Definition  *domain.Definition   `json:"definition"`
	Controls    []domain.ControlInfo `json:"controls"`
}

// EventsRequest is the body of POST /sessions/:id/events.
type EventsRequest struct {
	Events []domain.Event `json:"events"`
}

type handlers struct {
	def      *domain.Definition
	fp       domain.Fingerprint
	controls []domain.ControlInfo
	registry *Registry
}

func (h *handlers) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) definition(c echo.Context) error {
	return c.JSON(http.StatusOK, DefinitionResponse{
		Fingerprint: h.fp,
		Definition:  h.def,
		Controls:    h.controls,
	})
}

func (h *handlers) createSession(c echo.Context) error {
	_, snap, err := h.registry.Create()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, snap)
}

func (h *handlers) getSession(c echo.Context) error {
	snap, err := h.registry.Do(sessionID(c), func(s *chooser.Session) (domain.Snapshot, error) {
		return s.Snapshot(), nil
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *handlers) applyEvents(c echo.Context) error {
	var req EventsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid events body")
	}
	snap, err := h.registry.Do(sessionID(c), func(s *chooser.Session) (domain.Snapshot, error) {
		return s.Apply(req.Events...)
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *handlers) resetSession(c echo.Context) error {
	snap, err := h.registry.Do(sessionID(c), func(s *chooser.Session) (domain.Snapshot, error) {
		return s.Reset(), nil
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *handlers) deleteSession(c echo.Context) error {
	if err := h.registry.Delete(sessionID(c)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func sessionID(c echo.Context) domain.SessionID {
	return domain.SessionID(c.Param("id"))
}

func httpError(err error) error {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrSessionLimit):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, domain.ErrUnknownControl),
		errors.Is(err, domain.ErrUnknownRadio),
		errors.Is(err, domain.ErrUnknownChoice):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}

func newHandlers(def *domain.Definition, registry *Registry) *handlers {
	return &handlers{
		def:      def,
		fp:       definition.Fingerprint(def),
		controls: definition.Controls(def),
		registry: registry,
	}
}
