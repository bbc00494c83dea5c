package web

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/assets"
	"storefront/internal/store"
)

// productForm is the admin form state echoed back on validation errors.
type productForm struct {
	Name        string
	Category    string
	Price       string
	InStock     bool
	Description string
	ImageURL    string
}

func readForm(c *gin.Context) productForm {
	return productForm{
		Name:        strings.TrimSpace(c.PostForm("name")),
		Category:    strings.TrimSpace(c.PostForm("category")),
		Price:       strings.TrimSpace(c.PostForm("price")),
		InStock:     parseStock(c.PostForm("inStock")),
		Description: strings.TrimSpace(c.PostForm("description")),
		ImageURL:    c.PostForm("imageUrl"),
	}
}

// HTML checkboxes post "on"; the JSON-ish clients send "true" or "1".
func parseStock(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "on", "1":
		return true
	}
	return false
}

func (f productForm) validate() (store.Product, error) {
	if f.Name == "" || f.Category == "" {
		return store.Product{}, errors.New("name and category are required")
	}
	price, err := strconv.ParseFloat(strings.ReplaceAll(f.Price, ",", "."), 64)
	if err != nil {
		return store.Product{}, fmt.Errorf("invalid price %q", f.Price)
	}
	if price < 0 {
		return store.Product{}, errors.New("price cannot be negative")
	}
	return store.Product{
		Name:        f.Name,
		Category:    f.Category,
		Price:       price,
		InStock:     f.InStock,
		Description: f.Description,
	}, nil
}

func renderForm(c *gin.Context, status int, data ViewData) {
	c.HTML(status, "admin_form.tmpl", data)
}

// AdminList renders the management table.
func AdminList(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := st.List()
		if err != nil {
			log.Println("admin list products:", err)
			renderError(c, http.StatusInternalServerError, "Something went wrong")
			return
		}
		c.HTML(http.StatusOK, "admin_products.tmpl", ViewData{
			"Products": items,
			"Flash":    takeFlash(c),
		})
	}
}

// AdminNewForm renders an empty creation form.
func AdminNewForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		renderForm(c, http.StatusOK, ViewData{"Mode": "create"})
	}
}

// AdminCreate handles the creation form submit.
func AdminCreate(st *store.Store, am *assets.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		form := readForm(c)
		product, err := form.validate()
		if err != nil {
			renderForm(c, http.StatusBadRequest, ViewData{"Mode": "create", "Error": err.Error(), "Form": form})
			return
		}

		// файл не выбран — не ошибка
		file, _ := c.FormFile("productImage")
		img, err := am.ResolveCreate(file, form.ImageURL)
		if err != nil {
			status, msg := uploadFailure(err)
			renderForm(c, status, ViewData{"Mode": "create", "Error": msg, "Form": form})
			return
		}
		product.Image = img.String()

		if _, err := st.Create(product); err != nil {
			log.Println("create product:", err)
			renderForm(c, http.StatusInternalServerError, ViewData{"Mode": "create", "Error": "Could not save product", "Form": form})
			return
		}
		setFlash(c, "Product created")
		c.Redirect(http.StatusSeeOther, "/admin/products")
	}
}

// AdminEditForm renders the edit form for one product, or 404.
func AdminEditForm(st *store.Store) gin.HandlerFunc {
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
			log.Println("load product:", err)
			renderError(c, http.StatusInternalServerError, "Something went wrong")
			return
		}
		renderForm(c, http.StatusOK, ViewData{
			"Mode": "edit",
			"Item": item,
			"Form": productForm{
				Name:        item.Name,
				Category:    item.Category,
				Price:       fmt.Sprintf("%.2f", item.Price),
				InStock:     item.InStock,
				Description: item.Description,
			},
		})
	}
}

// AdminUpdate handles the edit form submit.
func AdminUpdate(st *store.Store, am *assets.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			renderError(c, http.StatusNotFound, "Product not found")
			return
		}
		current, err := st.Get(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				renderError(c, http.StatusNotFound, "Product not found")
				return
			}
			log.Println("load product:", err)
			renderError(c, http.StatusInternalServerError, "Something went wrong")
			return
		}

		form := readForm(c)
		product, err := form.validate()
		if err != nil {
			renderForm(c, http.StatusBadRequest, ViewData{"Mode": "edit", "Item": current, "Error": err.Error(), "Form": form})
			return
		}

		file, _ := c.FormFile("productImage")
		img, err := am.ResolveUpdate(assets.ParseImage(current.Image), file, form.ImageURL)
		if err != nil {
			status, msg := uploadFailure(err)
			renderForm(c, status, ViewData{"Mode": "edit", "Item": current, "Error": msg, "Form": form})
			return
		}
		product.Image = img.String()

		changed, err := st.Update(id, product)
		if err != nil {
			log.Println("update product:", err)
			renderForm(c, http.StatusInternalServerError, ViewData{"Mode": "edit", "Item": current, "Error": "Could not save product", "Form": form})
			return
		}
		if !changed {
			renderError(c, http.StatusNotFound, "Product not found")
			return
		}
		setFlash(c, "Product updated")
		c.Redirect(http.StatusSeeOther, "/admin/products")
	}
}

// AdminDelete removes a product and its uploaded image, answering in
// JSON because the admin page calls it from script.
func AdminDelete(st *store.Store, am *assets.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		deleted, err := st.Delete(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			log.Println("delete product:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete product"})
			return
		}
		// the row is gone; only now is the file fair game
		am.Cleanup(assets.ParseImage(deleted.Image))
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func uploadFailure(err error) (int, string) {
	if errors.Is(err, assets.ErrNotAnImage) || errors.Is(err, assets.ErrFileTooLarge) {
		return http.StatusBadRequest, err.Error()
	}
	log.Println("store upload:", err)
	return http.StatusInternalServerError, "Could not store the uploaded image"
}
