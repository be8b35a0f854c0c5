package requestboard

import (
	"net/http"
	"strconv"

	"go-leave/internal/leave"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Lister is satisfied by *Board.
type Lister interface {
	List() []leave.Record
}

type Handler struct {
	board Lister
}

func NewHandler(board Lister) *Handler {
	return &Handler{board: board}
}

func (h *Handler) List(c *gin.Context) {
	records := h.board.List()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	total := int64(len(records))
	// bandingkan jumlah halaman dulu supaya (page-1)*pageSize tidak overflow
	start := len(records)
	if page-1 < len(records)/pageSize+1 {
		start = min((page-1)*pageSize, len(records))
	}
	end := min(start+pageSize, len(records))

	resp := make([]RequestResponse, 0, end-start)
	for _, r := range records[start:end] {
		resp = append(resp, mapToResponse(r))
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}
