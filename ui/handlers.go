package ui

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"baselinedash/app"
	"baselinedash/domain/baseline"
	"baselinedash/internal/errors"

	"github.com/gin-gonic/gin"
)

// handleUpload accepts the two workbook files and builds the unified
// table. Field names identify which academic year each file covers.
func (s *Server) handleUpload(c *gin.Context) {
	sourceA, err := s.readUpload(c, "source_2425")
	if err != nil {
		s.log.Warn("upload rejected: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sourceB, err := s.readUpload(c, "source_2526")
	if err != nil {
		s.log.Warn("upload rejected: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := s.service.LoadSources(c.Request.Context(), sourceA, sourceB)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// readUpload pulls one workbook out of the multipart form, enforcing
// the size limit and the .xlsx extension before reading it into memory.
func (s *Server) readUpload(c *gin.Context, field string) (app.SourceFile, error) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		return app.SourceFile{}, fmt.Errorf("missing workbook %q", field)
	}
	defer file.Close()

	maxBytes := s.cfg.Data.MaxUploadMB * 1024 * 1024
	if header.Size > maxBytes {
		return app.SourceFile{}, fmt.Errorf("file %q exceeds the %dMB limit", header.Filename, s.cfg.Data.MaxUploadMB)
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
		return app.SourceFile{}, fmt.Errorf("file %q is not an .xlsx workbook", header.Filename)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return app.SourceFile{}, fmt.Errorf("failed to read file %q: %v", header.Filename, err)
	}
	return app.SourceFile{Name: header.Filename, Data: data}, nil
}

// handleOptions returns the candidate values for each filter dropdown,
// with the wildcard entry prepended as the first/default option.
func (s *Server) handleOptions(c *gin.Context) {
	options, err := s.service.Options()
	if err != nil {
		s.renderError(c, err)
		return
	}

	withAll := make(map[string][]string, len(options))
	for column, values := range options {
		withAll[column] = append([]string{AllOption}, values...)
	}
	c.JSON(http.StatusOK, gin.H{"options": withAll, "columns": baseline.FilterColumns()})
}

// dashboardRequest carries the selected values per filterable column.
// A missing column, an empty list, or a list containing the wildcard
// all mean "no restriction".
type dashboardRequest struct {
	Filters map[string][]string `json:"filters"`
}

func (s *Server) handleDashboard(c *gin.Context) {
	var req dashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "code": errors.CodeInvalidInput})
		return
	}

	result, err := s.service.Query(toCriteria(req.Filters))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// toCriteria translates the wire selections into domain criteria,
// collapsing the wildcard convention at the boundary.
func toCriteria(filters map[string][]string) baseline.Criteria {
	criteria := make(baseline.Criteria, len(baseline.FilterColumns()))
	for _, column := range baseline.FilterColumns() {
		selected := filters[column]
		if len(selected) == 0 || contains(selected, AllOption) {
			criteria[column] = baseline.AllValues()
			continue
		}
		criteria[column] = baseline.SpecificValues(selected...)
	}
	return criteria
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

// renderError is the single top-level error surface: it classifies the
// failure by code and emits one human-readable message.
func (s *Server) renderError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.CodeSourceRead, errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case errors.CodeSchema:
		status = http.StatusUnprocessableEntity
	case errors.CodeNoTable:
		status = http.StatusServiceUnavailable
	}

	s.log.Error("request failed (%s): %v", code, err)
	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}
