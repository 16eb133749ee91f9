// Package server is the local HTTP surface for the calculator UI. It only
// marshals core types in and out of the session; it never does arithmetic.
package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/config"
	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/fleet"
	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/session"
	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/validation"
)

// Server wires one session and its debounce coordinator to HTTP handlers.
type Server struct {
	cfg   *config.Config
	sess  *session.Session
	coord *session.Coordinator
	port  int
}

// New creates a server with a fresh session seeded from cfg.
func New(cfg *config.Config, port int) *Server {
	sess := session.New(cfg)
	return &Server{
		cfg:   cfg,
		sess:  sess,
		coord: session.NewCoordinator(sess, session.DefaultDebounceWindow),
		port:  port,
	}
}

// Start launches the HTTP server and blocks.
func (s *Server) Start() error {
	e := echo.New()
	e.HideBanner = true

	e.GET("/api/config", s.handleConfig)
	e.GET("/api/estimate", s.handleEstimate)
	e.GET("/api/fleet", s.handleFleet)
	e.PUT("/api/inputs/:field", s.handleInput)

	e.POST("/api/fleet/excavators", s.handleAddExcavator)
	e.POST("/api/fleet/trucks", s.handleAddTruck)
	e.DELETE("/api/fleet/:id", s.handleRemove)
	e.PATCH("/api/fleet/:id", s.handleUpdate)
	e.POST("/api/fleet/:id/toggle", s.handleToggle)

	return e.Start(fmt.Sprintf(":%d", s.port))
}

func (s *Server) handleConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, s.cfg)
}

func (s *Server) handleEstimate(c echo.Context) error {
	// Settle any in-flight edits so the response reflects the latest values.
	s.coord.Flush()
	return c.JSON(http.StatusOK, s.sess.Snapshot())
}

func (s *Server) handleFleet(c echo.Context) error {
	return c.JSON(http.StatusOK, s.sess.Snapshot().Fleet)
}

func (s *Server) handleInput(c echo.Context) error {
	var body struct {
		Value string `json:"value"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	s.coord.Touch(validation.Field(c.Param("field")), body.Value)
	return c.JSON(http.StatusAccepted, map[string]string{"status": "pending"})
}

func (s *Server) handleAddExcavator(c echo.Context) error {
	var body struct {
		Name           string `json:"name"`
		BucketCapacity string `json:"bucket_capacity"`
		CycleTime      string `json:"cycle_time"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := s.sess.AddExcavator(body.Name, body.BucketCapacity, body.CycleTime); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, validation.Describe(err))
	}
	return c.JSON(http.StatusOK, s.sess.Snapshot().Fleet)
}

func (s *Server) handleAddTruck(c echo.Context) error {
	var body struct {
		Name          string `json:"name"`
		Capacity      string `json:"capacity"`
		RoundTripTime string `json:"round_trip_time"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := s.sess.AddTruck(body.Name, body.Capacity, body.RoundTripTime); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, validation.Describe(err))
	}
	return c.JSON(http.StatusOK, s.sess.Snapshot().Fleet)
}

func (s *Server) handleRemove(c echo.Context) error {
	id := fleet.EquipmentID(c.Param("id"))
	if err := s.sess.RemoveEquipment(id); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, validation.Describe(err))
	}
	return c.JSON(http.StatusOK, s.sess.Snapshot().Fleet)
}

func (s *Server) handleUpdate(c echo.Context) error {
	var body struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	id := fleet.EquipmentID(c.Param("id"))
	if err := s.sess.UpdateEquipment(id, validation.Field(body.Field), body.Value); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, validation.Describe(err))
	}
	return c.JSON(http.StatusOK, s.sess.Snapshot().Fleet)
}

func (s *Server) handleToggle(c echo.Context) error {
	id := fleet.EquipmentID(c.Param("id"))
	if err := s.sess.ToggleEquipment(id); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, validation.Describe(err))
	}
	return c.JSON(http.StatusOK, s.sess.Snapshot().Fleet)
}
