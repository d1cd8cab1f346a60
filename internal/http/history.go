package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/id01t/bookforge/internal/history"
)

// HistoryController exposes recorded generations.
type HistoryController struct {
	reader HistoryReader
}

func NewHistoryController(reader HistoryReader) *HistoryController {
	return &HistoryController{reader: reader}
}

const defaultHistoryLimit = 50

// List handles GET /api/history
func (hc *HistoryController) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultHistoryLimit)))
	if err != nil || limit < 0 {
		respondBadRequest(c, "invalid limit")
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		respondBadRequest(c, "invalid offset")
		return
	}

	summaries, total, err := hc.reader.List(limit, offset)
	if err != nil {
		respondInternalError(c, err, "list history")
		return
	}

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:    summaries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(summaries)) < total,
	})
}

// Get handles GET /api/history/:id
func (hc *HistoryController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid history ID")
		return
	}

	entry, err := hc.reader.Get(uint(id))
	if errors.Is(err, history.ErrNotFound) {
		respondNotFound(c, "history entry")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get history entry")
		return
	}

	c.JSON(http.StatusOK, entry)
}
