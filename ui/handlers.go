package ui

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/domain/core"
	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/domain/distribution"
	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/internal/docs"
	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/internal/export"
)

// computeRequest is the body of a compute call: named parameter values
// plus an optional point count (0 selects the catalog default).
type computeRequest struct {
	Params    map[string]float64 `json:"params"`
	NumPoints int                `json:"num_points"`
}

// catalogEntry is the browse-view summary of one distribution.
type catalogEntry struct {
	Kind     distribution.Kind     `json:"type"`
	Name     string                `json:"name"`
	Category distribution.Category `json:"category"`
	Tags     []string              `json:"tags"`
}

func (s *Server) handleListDistributions(c *gin.Context) {
	entries := make([]catalogEntry, 0, len(distribution.Kinds()))
	for _, kind := range distribution.Kinds() {
		meta, err := distribution.Describe(kind)
		if err != nil {
			s.respondError(c, err)
			return
		}
		entries = append(entries, catalogEntry{
			Kind:     meta.Kind,
			Name:     meta.Name,
			Category: meta.Category,
			Tags:     meta.Tags,
		})
	}
	c.JSON(http.StatusOK, gin.H{"distributions": entries})
}

func (s *Server) handleDescribeDistribution(c *gin.Context) {
	meta, err := distribution.Describe(distribution.Kind(c.Param("kind")))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meta)
}

func (s *Server) handleComputeDistribution(c *gin.Context) {
	var req computeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(c, fmt.Sprintf("invalid request body: %v", err), "BAD_REQUEST"))
		return
	}
	result, err := distribution.Compute(distribution.Kind(c.Param("kind")), req.Params, req.NumPoints)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleExportDistribution computes a curve (query params override the
// declared defaults) and streams it as an xlsx workbook.
func (s *Server) handleExportDistribution(c *gin.Context) {
	kind := distribution.Kind(c.Param("kind"))
	meta, err := distribution.Describe(kind)
	if err != nil {
		s.respondError(c, err)
		return
	}

	params, err := distribution.DefaultParams(kind)
	if err != nil {
		s.respondError(c, err)
		return
	}
	for _, p := range meta.Parameters {
		raw := c.Query(p.Name)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorBody(c, fmt.Sprintf("parameter %q is not a number: %q", p.Name, raw), "BAD_REQUEST"))
			return
		}
		params[p.Name] = value
	}
	numPoints := 0
	if raw := c.Query("num_points"); raw != "" {
		numPoints, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorBody(c, fmt.Sprintf("num_points is not an integer: %q", raw), "BAD_REQUEST"))
			return
		}
	}

	result, err := distribution.Compute(kind, params, numPoints)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", kind))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := export.WriteWorkbook(c.Writer, meta, result); err != nil {
		s.log.Error("workbook export failed: %v", err)
	}
}

func (s *Server) handleDistributionDoc(c *gin.Context) {
	meta, err := distribution.Describe(distribution.Kind(c.Param("kind")))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", docs.HTML(meta))
}

// respondError maps the core error taxonomy onto HTTP statuses: unknown
// kind is 404, caller-correctable domain errors are 400, schema errors
// (implementation defects) are 500.
func (s *Server) respondError(c *gin.Context, err error) {
	switch {
	case core.IsUnknownKindError(err):
		c.JSON(http.StatusNotFound, errorBody(c, err.Error(), "UNKNOWN_KIND"))
	case core.IsDomainError(err):
		c.JSON(http.StatusBadRequest, errorBody(c, err.Error(), "INVALID_PARAMETERS"))
	default:
		s.log.Error("request %s failed: %v", c.GetString(requestIDKey), err)
		c.JSON(http.StatusInternalServerError, errorBody(c, "internal error", "INTERNAL"))
	}
}
