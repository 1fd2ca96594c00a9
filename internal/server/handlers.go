package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/ternary/alphabet"
	"github.com/katalvlaran/ternary/necklace"
	"github.com/katalvlaran/ternary/profile"
	"github.com/katalvlaran/ternary/words"
)

const defaultNecklaceLimit = 1000

var errBadContent = errors.New("server: content must be comma-separated non-negative counts")

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: s.version})
}

// handleWord handles GET /v1/word/:word.
func (s *Server) handleWord(c *gin.Context) {
	start := time.Now()
	ctx, cancel := s.analysisContext(c.Request.Context())
	defer cancel()
	p, err := profile.AnalyzeWordContext(ctx, c.Param("word"))
	if err != nil {
		s.metrics.observe("word", "error", start)
		s.fail(c, err)
		return
	}
	s.metrics.observe("word", "ok", start)
	c.JSON(http.StatusOK, p)
}

// handleSignature handles POST /v1/signature.
func (s *Server) handleSignature(c *gin.Context) {
	start := time.Now()
	var req SignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.metrics.observe("signature", "bad_request", start)
		s.reject(c, err)
		return
	}
	mode, filters, limit := s.cfg.Analysis.Mode, s.cfg.Analysis.Filters, s.cfg.Analysis.Limit
	if req.Mode != nil {
		mode = *req.Mode
	}
	if req.Filters != nil {
		filters = *req.Filters
	}
	if req.Limit > 0 {
		limit = req.Limit
	}
	if err := filters.Validate(); err != nil {
		s.metrics.observe("signature", "bad_request", start)
		s.reject(c, err)
		return
	}

	ctx, cancel := s.analysisContext(c.Request.Context())
	defer cancel()
	profiles, err := profile.AnalyzeSignature(ctx, req.Signature,
		profile.WithMode(mode),
		profile.WithFilters(filters),
		profile.WithLimit(limit),
		profile.WithOnScale(s.metrics.onScale),
	)
	if err != nil {
		s.metrics.observe("signature", "error", start)
		s.fail(c, err)
		return
	}
	s.metrics.observe("signature", "ok", start)
	if profiles == nil {
		profiles = []profile.ScaleProfile{}
	}
	c.JSON(http.StatusOK, SignatureResponse{
		Signature: req.Signature,
		Mode:      mode,
		Count:     len(profiles),
		Profiles:  profiles,
	})
}

// handleQP handles GET /v1/qp/:word.
func (s *Server) handleQP(c *gin.Context) {
	start := time.Now()
	word := c.Param("word")
	ctx, cancel := s.analysisContext(c.Request.Context())
	defer cancel()
	d, ok, err := profile.QuasiParallelogramContext(ctx, word)
	if err != nil {
		s.metrics.observe("qp", "error", start)
		s.fail(c, err)
		return
	}
	s.metrics.observe("qp", "ok", start)
	resp := QPResponse{Word: word, Found: ok}
	if ok {
		resp.Descriptor = &d
	}
	c.JSON(http.StatusOK, resp)
}

// handleNecklaces handles GET /v1/necklaces.
func (s *Server) handleNecklaces(c *gin.Context) {
	start := time.Now()
	var q NecklacesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s.metrics.observe("necklaces", "bad_request", start)
		s.reject(c, err)
		return
	}
	content, err := parseContent(q.Content)
	if err != nil {
		s.metrics.observe("necklaces", "bad_request", start)
		s.reject(c, err)
		return
	}
	limit := q.Limit
	if limit == 0 {
		limit = defaultNecklaceLimit
	}

	ctx, cancel := s.analysisContext(c.Request.Context())
	defer cancel()
	resp := NecklacesResponse{
		Content:   content,
		Total:     necklace.Count(content).String(),
		Necklaces: []string{},
	}
	for w := range necklace.All(content) {
		if err := ctx.Err(); err != nil {
			s.metrics.observe("necklaces", "error", start)
			s.fail(c, err)
			return
		}
		if len(resp.Necklaces) == limit {
			resp.Truncated = true
			break
		}
		resp.Necklaces = append(resp.Necklaces, formatNecklace(w, len(content)))
	}
	s.metrics.observe("necklaces", "ok", start)
	c.JSON(http.StatusOK, resp)
}

// fail maps an analysis error to a status code.
func (s *Server) fail(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, CodeInternal
	switch {
	case errors.Is(err, profile.ErrInvalidInput):
		status, code = http.StatusBadRequest, CodeInvalidInput
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		status, code = http.StatusServiceUnavailable, CodeTimeout
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error(), Code: code, RequestID: c.GetString(keyRequestID)})
}

// reject answers a request that failed binding or validation.
func (s *Server) reject(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error:     err.Error(),
		Code:      CodeInvalidRequest,
		RequestID: c.GetString(keyRequestID),
	})
}

// parseContent reads "5,2,2" into counts.
func parseContent(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("content %q: %w", s, errBadContent)
		}
		total += n
		out = append(out, n)
	}
	if total > profile.MaxScaleLen {
		return nil, fmt.Errorf("content %q: %d letters exceed %d: %w", s, total, profile.MaxScaleLen, errBadContent)
	}

	return out, nil
}

func formatNecklace(w words.Word, arity int) string {
	s, err := alphabet.FormatWithArity(w, max(arity, 2))
	if err != nil {
		return w.String()
	}

	return s
}
