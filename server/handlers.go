package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"reldb/executor"
	"reldb/parser"
	"reldb/replication"
)

type executeRequest struct {
	SQL string `json:"sql"`
}

type executeResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Result  *executor.Result `json:"result,omitempty"`
}

func (s *Server) handleExecute(c echo.Context) error {
	var req executeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, executeResponse{Success: false, Message: "invalid request body"})
	}

	stmt, err := parser.Parse(req.SQL)
	if err != nil {
		return c.JSON(http.StatusOK, executeResponse{Success: false, Message: err.Error()})
	}

	mutation := executor.IsMutation(stmt.Kind)
	if mutation && !s.repl.IsPrimary() {
		return c.JSON(http.StatusOK, executeResponse{
			Success: false,
			Message: "this is a replica node; write statements are only allowed on the primary",
		})
	}

	result, err := executor.ExecuteStatement(s.db, stmt)
	// Record a mutation whenever it reached the engine and changed state;
	// a partially applied UPDATE still replays deterministically.
	if mutation && (err == nil || (result != nil && result.Count > 0)) {
		s.repl.Record(req.SQL)
	}
	if err != nil {
		return c.JSON(http.StatusOK, executeResponse{Success: false, Message: err.Error(), Result: result})
	}
	return c.JSON(http.StatusOK, executeResponse{Success: true, Result: result})
}

func (s *Server) handlePing(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTables(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"tables": s.db.TableNames()})
}

func (s *Server) handleEvents(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]replication.Event{"events": s.repl.Events()})
}

func (s *Server) handleChecksum(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"checksum": s.repl.Checksum()})
}

type applyRequest struct {
	Events []replication.Event `json:"events"`
}

func (s *Server) handleApply(c echo.Context) error {
	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	applied, err := s.repl.Apply(req.Events)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"applied": applied, "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]int{"applied": applied})
}

type registerRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleRegister(c echo.Context) error {
	if !s.repl.IsPrimary() {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "only a primary accepts replica registrations"})
	}
	var req registerRequest
	if err := c.Bind(&req); err != nil || req.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	s.repl.AddReplica(req.URL)
	return c.JSON(http.StatusOK, map[string]string{"status": "registered"})
}
