package web

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/store"
)

type ViewData map[string]any

func renderError(c *gin.Context, status int, msg string) {
	c.HTML(status, "error.tmpl", ViewData{"Status": status, "Message": msg})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// ListCatalog renders the public storefront.
func ListCatalog(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := st.List()
		if err != nil {
			log.Println("list products:", err)
			renderError(c, http.StatusInternalServerError, "Something went wrong")
			return
		}
		c.HTML(http.StatusOK, "list.tmpl", ViewData{"Products": items})
	}
}

// ShowProduct renders one product's detail page, or a 404 page when
// the id does not match anything.
func ShowProduct(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			renderError(c, http.StatusNotFound, "Product not found")
			return
		}
		item, err := st.Get(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				renderError(c, http.StatusNotFound, "Product not found")
				return
			}
			log.Println("get product:", err)
			renderError(c, http.StatusInternalServerError, "Something went wrong")
			return
		}
		c.HTML(http.StatusOK, "detail.tmpl", ViewData{"Product": item})
	}
}
