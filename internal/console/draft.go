package console

import (
	"fmt"
	"strconv"

	"github.com/spf13/cast"

	"catalog-admin/internal/catalog"
)

// Draft is the in-progress editable copy of a product held while the modal is
// open, distinct from the server's copy. Prices stay text while editing and
// are only coerced when the payload is built.
type Draft struct {
	ID          string
	Title       string
	Category    string
	Unit        string
	Description string
	Content     string
	OriginPrice string
	Price       string
	IsEnabled   bool
	ImageURL    string
	ImagesURL   []string
}

// newDraft returns the template defaults: every field present, empty or false,
// with an empty (non-nil) image list.
func newDraft() Draft {
	return Draft{ImagesURL: []string{}}
}

// draftFromProduct is the template defaults merged with a full copy of p, so
// the draft is never a sparse record.
func draftFromProduct(p catalog.Product) Draft {
	d := newDraft()
	d.ID = p.ID
	d.Title = p.Title
	d.Category = p.Category
	d.Unit = p.Unit
	d.Description = p.Description
	d.Content = p.Content
	d.OriginPrice = formatPrice(p.OriginPrice)
	d.Price = formatPrice(p.Price)
	d.IsEnabled = bool(p.IsEnabled)
	d.ImageURL = p.ImageURL
	if len(p.ImagesURL) > 0 {
		d.ImagesURL = append([]string{}, p.ImagesURL...)
	}
	return d
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// setField updates exactly one draft field, consulting the schema for the
// field's kind. Unknown identifiers are rejected.
func (d *Draft) setField(name, raw string) error {
	kind, ok := productFieldSchema[name]
	if !ok {
		return fmt.Errorf("unknown product field %q", name)
	}
	if kind == FieldCheckbox {
		d.IsEnabled = cast.ToBool(raw)
		return nil
	}
	switch name {
	case "title":
		d.Title = raw
	case "category":
		d.Category = raw
	case "unit":
		d.Unit = raw
	case "description":
		d.Description = raw
	case "content":
		d.Content = raw
	case "imageUrl":
		d.ImageURL = raw
	case "origin_price":
		d.OriginPrice = raw
	case "price":
		d.Price = raw
	}
	return nil
}

func (d *Draft) setImage(index int, value string) error {
	if index < 0 || index >= len(d.ImagesURL) {
		return fmt.Errorf("image index %d out of range", index)
	}
	d.ImagesURL[index] = value
	return nil
}

func (d *Draft) addImage() {
	d.ImagesURL = append(d.ImagesURL, "")
}

// removeImage drops the last entry. Removing from an empty list is a no-op.
func (d *Draft) removeImage() {
	if len(d.ImagesURL) == 0 {
		return
	}
	d.ImagesURL = d.ImagesURL[:len(d.ImagesURL)-1]
}

func (d Draft) clone() Draft {
	c := d
	c.ImagesURL = append([]string{}, d.ImagesURL...)
	return c
}

// BuildPayload normalizes the draft for transmission: prices become numbers,
// the enabled flag becomes 1/0 on the wire, and empty image entries are
// stripped. Invalid price text fails the build instead of reaching the server.
func (d Draft) BuildPayload() (catalog.ProductPayload, error) {
	origin, err := parsePrice("origin_price", d.OriginPrice)
	if err != nil {
		return catalog.ProductPayload{}, err
	}
	price, err := parsePrice("price", d.Price)
	if err != nil {
		return catalog.ProductPayload{}, err
	}

	images := make([]string, 0, len(d.ImagesURL))
	for _, url := range d.ImagesURL {
		if url != "" {
			images = append(images, url)
		}
	}

	return catalog.ProductPayload{
		Title:       d.Title,
		Category:    d.Category,
		Unit:        d.Unit,
		Description: d.Description,
		Content:     d.Content,
		OriginPrice: origin,
		Price:       price,
		IsEnabled:   catalog.WireBool(d.IsEnabled),
		ImageURL:    d.ImageURL,
		ImagesURL:   images,
	}, nil
}
