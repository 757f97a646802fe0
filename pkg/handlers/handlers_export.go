package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnavshah/training-calendar-go/pkg/export"
	"github.com/arnavshah/training-calendar-go/pkg/store"
)

// rangeParams validates the start/end query pair shared by export and
// print. A blank range or an end before the start aborts the request.
func rangeParams(c *gin.Context) (string, string, bool) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end dates are required"})
		return "", "", false
	}
	if start > end {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start date cannot be after the end date"})
		return "", "", false
	}
	return start, end, true
}

// ExportCalendar downloads the date-range slice of the calendar as JSON
// or CSV
func (h *Handler) ExportCalendar(c *gin.Context) {
	start, end, ok := rangeParams(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be json or csv"})
		return
	}

	state, _ := h.snapshot()
	subset := store.FilterRange(state.Calendar, start, end)

	filename := export.Filename(start, end, format)
	c.Header("Content-Disposition", `attachment; filename=`+filename)

	if format == "json" {
		data, err := export.JSON(subset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not serialize calendar"})
			return
		}
		c.Data(http.StatusOK, "application/json", data)
		return
	}

	csvData, err := export.CSV(subset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not serialize calendar"})
		return
	}
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvData))
}

// PrintCalendar returns the read-only print projection for a date range,
// grouped by date then squad
func (h *Handler) PrintCalendar(c *gin.Context) {
	start, end, ok := rangeParams(c)
	if !ok {
		return
	}

	state, _ := h.snapshot()
	subset := store.FilterRange(state.Calendar, start, end)
	view := export.PrintView(subset)

	c.JSON(http.StatusOK, gin.H{
		"start": start,
		"end":   end,
		"days":  view,
	})
}
