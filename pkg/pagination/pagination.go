package pagination

import (
	"strconv"

	"github.com/carxpresspanabo/carxpress-rental/pkg/common"
	"github.com/gin-gonic/gin"
)

const (
	// DefaultLimit is used when the client does not supply one
	DefaultLimit = 20
	// MaxLimit caps the page size
	MaxLimit = 100
	// DefaultOffset is the start of the list
	DefaultOffset = 0
)

// Params holds parsed pagination query parameters
type Params struct {
	Limit  int
	Offset int
}

// ParseParams extracts limit/offset from the request query, applying
// defaults and the max cap. Invalid values fall back to the defaults.
func ParseParams(c *gin.Context) Params {
	limit := DefaultLimit
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset := DefaultOffset
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		offset = v
	}

	return Params{Limit: limit, Offset: offset}
}

// BuildMeta builds the response meta block for a paginated list
func BuildMeta(limit, offset int, total int64) common.Meta {
	return common.Meta{Limit: limit, Offset: offset, Total: total}
}
