package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"doggyrank"
	"doggyrank/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// @Summary      List votes
// @Description  Filter the vote history by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD') and breed. A date-only 'to' is treated as end of day.
// @Tags         votes
// @Produce      json
// @Param        from   query   string  false  "Start of range"  example(2025-08-01)
// @Param        to     query   string  false  "End of range. Date-only treated as end of day."  example(2025-08-31)
// @Param        breed  query   string  false  "Breed, case-insensitive"  example(maltese)
// @Success      200    {object}  map[string]interface{}  "count, events"
// @Failure      400    {object}  doggyrank.ErrorResponse
// @Failure      401    {object}  doggyrank.ErrorResponse
// @Failure      500    {object}  doggyrank.ErrorResponse
// @Router       /api/v1/votes [get]
// @Security     BearerAuth
func (h *Handler) getVotes(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		from  time.Time
		to    time.Time
		breed = c.Query("breed")
		err   error
	)
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, doggyrank.ErrorResponse{Message: errFromInvalid})
			return
		}
	}
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, doggyrank.ErrorResponse{Message: errToInvalid})
			return
		}
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		c.JSON(http.StatusBadRequest, doggyrank.ErrorResponse{Message: "'from' must be <= 'to'"})
		return
	}

	events, err := h.services.VoteLog.List(ctx, service.LogFilter{
		From:  from,
		To:    to,
		Breed: breed,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, doggyrank.ErrorResponse{Message: msgInvalidRequest, Err: err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load votes", "votes_list_failed", err,
			"from", from, "to", to, "breed", breed)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(events),
		"events": events,
	})
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2025-08-27T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}
