package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"catalog-admin/internal/catalog"
	"catalog-admin/internal/console"
	"catalog-admin/internal/middleware"
)

// ProductsPage validates the session, fetches the requested page and renders
// the table, pagination and modal. A failed validation falls back to the login
// view without clearing the cookie; a failed fetch keeps whatever page was
// already loaded.
func ProductsPage(client *catalog.Client, store *console.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := middleware.Token(c)

		if err := client.Check(c.Request.Context(), token); err != nil {
			zap.S().Warnf("session validation failed: %v", err)
			store.SetNotice("session expired, sign in again")
			c.Redirect(http.StatusFound, "/login")
			return
		}

		page := parsePageParam(c.Query("page"))
		list, err := client.ListProducts(c.Request.Context(), token, page)
		if err != nil {
			zap.S().Errorf("product fetch failed for page %d: %v", page, err)
			store.SetNotice("could not load products, showing the last known list")
		} else {
			store.ReplaceList(list)
		}

		view := store.Snapshot()
		c.HTML(http.StatusOK, "products.html", gin.H{
			"View":     view,
			"Pages":    pageNumbers(view.Pagination),
			"PrevPage": view.Pagination.CurrentPage - 1,
			"NextPage": view.Pagination.CurrentPage + 1,
		})
	}
}

// OpenModal starts a modal session in the requested mode. Edit and delete look
// the product up in the currently loaded page; the draft is replaced wholesale
// either way.
func OpenModal(store *console.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		mode := console.Mode(c.PostForm("mode"))

		var err error
		switch mode {
		case console.ModeCreate:
			err = store.Open(mode, nil)
		case console.ModeEdit, console.ModeDelete:
			id := c.PostForm("id")
			product, found := store.FindProduct(id)
			if !found {
				store.SetNotice("product not found, the list may have changed")
				redirectToList(c, store)
				return
			}
			err = store.Open(mode, &product)
		default:
			err = fmt.Errorf("unknown modal mode %q", mode)
		}
		if err != nil {
			zap.S().Warnf("modal open rejected: %v", err)
			store.SetNotice("could not open the product form")
		}
		redirectToList(c, store)
	}
}

// CloseModal discards the draft, confirmed or not.
func CloseModal(store *console.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.Close()
		redirectToList(c, store)
	}
}

// AddImage appends one empty image slot, keeping the rest of the typed form.
func AddImage(store *console.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		foldDraftForm(c, store)
		store.AddImage()
		redirectToList(c, store)
	}
}

// RemoveImage drops the last image slot; on an empty list it does nothing.
func RemoveImage(store *console.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		foldDraftForm(c, store)
		store.RemoveImage()
		redirectToList(c, store)
	}
}

// ConfirmModal submits the modal's action: create or update in form modes,
// delete in delete mode. Success refetches the current page and closes the
// modal; any failure leaves the modal open with the draft untouched and shows
// a notice.
func ConfirmModal(client *catalog.Client, store *console.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := middleware.Token(c)
		mode := store.Mode()

		var err error
		switch mode {
		case console.ModeCreate, console.ModeEdit:
			foldDraftForm(c, store)
			payload, buildErr := store.BuildPayload()
			if buildErr != nil {
				store.SetNotice(buildErr.Error())
				redirectToList(c, store)
				return
			}
			if mode == console.ModeEdit {
				err = client.UpdateProduct(c.Request.Context(), token, store.Draft().ID, payload)
			} else {
				err = client.CreateProduct(c.Request.Context(), token, payload)
			}
		case console.ModeDelete:
			err = client.DeleteProduct(c.Request.Context(), token, store.Draft().ID)
		default:
			redirectToList(c, store)
			return
		}

		if err != nil {
			zap.S().Errorf("product %s failed: %v", mode, err)
			store.SetNotice(fmt.Sprintf("could not %s the product, try again or cancel", mode))
			redirectToList(c, store)
			return
		}

		store.Close()
		redirectToList(c, store)
	}
}

// foldDraftForm applies the posted form fields to the draft before the actual
// action runs, so typed input survives the round trip. Unchecked checkboxes
// are absent from the form and fold in as false.
func foldDraftForm(c *gin.Context, store *console.Store) {
	mode := store.Mode()
	if mode != console.ModeCreate && mode != console.ModeEdit {
		return
	}

	for _, name := range console.FieldNames() {
		value, present := c.GetPostForm(name)
		if !present {
			kind, _ := console.KindOf(name)
			if kind != console.FieldCheckbox {
				continue
			}
			value = "false"
		}
		if err := store.SetField(name, value); err != nil {
			zap.S().Warnf("draft field %s rejected: %v", name, err)
		}
	}

	for index, value := range c.PostFormArray("images") {
		if err := store.SetImage(index, value); err != nil {
			zap.S().Warnf("draft image %d rejected: %v", index, err)
		}
	}
}

// redirectToList bounces back to the product table on the page the store is
// currently showing.
func redirectToList(c *gin.Context, store *console.Store) {
	c.Redirect(http.StatusFound, fmt.Sprintf("/products?page=%d", store.CurrentPage()))
}
