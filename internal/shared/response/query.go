package response

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Paginate slices an in-memory list using the page and page_size query
// values. page_size is capped at maxPageSize.
func Paginate[T any](c *gin.Context, items []T) ([]T, PaginationMeta) {
	page := queryInt(c, "page", 1)
	pageSize := min(queryInt(c, "page_size", defaultPageSize), maxPageSize)

	start := min((page-1)*pageSize, len(items))
	end := min(start+pageSize, len(items))

	return items[start:end], NewPaginationMeta(int64(len(items)), page, pageSize)
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return def
	}
	return v
}
