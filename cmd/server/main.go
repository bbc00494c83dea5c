package main

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"storefront/internal/assets"
	mydb "storefront/internal/db"
	"storefront/internal/store"
	"storefront/internal/web"
)

func main() {
	// грузим .env из нескольких мест: текущая папка, родительская, корень репо
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	gdb := mydb.MustOpen()
	st, err := store.New(gdb)
	if err != nil {
		log.Fatal(err)
	}
	if err := st.SeedIfEmpty(store.DefaultCatalog); err != nil {
		log.Fatal("seed catalog: ", err)
	}

	sqlDB, _ := gdb.DB()
	defer sqlDB.Close()

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatal("create upload dir: ", err)
	}
	am := assets.NewManager(uploadDir)

	r := gin.Default()
	r.MaxMultipartMemory = 8 << 20

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// раздача статики
	r.Static("/uploads", uploadDir)
	r.Static("/static", "./static")

	// sessions (flash messages on the admin pages)
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "dev_fallback_secret"
	}
	sstore := cookie.NewStore([]byte(secret))
	sstore.Options(sessions.Options{HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("catalog_session", sstore))

	// templates
	r.SetFuncMap(template.FuncMap{
		"price": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	})
	r.LoadHTMLGlob("internal/views/**/*.tmpl")

	// health
	r.GET("/health", func(c *gin.Context) {
		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	web.Routes(r, st, am)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Println("Server listening on :" + port)
	log.Fatal(r.Run(":" + port))
}
