package web

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"storefront/internal/assets"
	"storefront/internal/store"
)

// Routes mounts the storefront and admin handlers on r.
func Routes(r *gin.Engine, st *store.Store, am *assets.Manager) {
	r.GET("/", ListCatalog(st))
	r.GET("/product/:id", ShowProduct(st))

	admin := r.Group("/admin")
	{
		admin.GET("/products", AdminList(st))
		admin.GET("/products/new", AdminNewForm())
		admin.POST("/products", AdminCreate(st, am))
		admin.GET("/products/:id/edit", AdminEditForm(st))
		admin.POST("/products/:id", AdminUpdate(st, am))
		admin.DELETE("/products/:id", AdminDelete(st, am))
	}
}

func setFlash(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg)
	_ = sess.Save()
}

func takeFlash(c *gin.Context) string {
	sess := sessions.Default(c)
	flashes := sess.Flashes()
	if len(flashes) == 0 {
		return ""
	}
	_ = sess.Save()
	msg, _ := flashes[0].(string)
	return msg
}
