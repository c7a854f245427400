package catalog

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WireBool marshals as 1/0 because the catalog API represents enabled flags
// numerically, while accepting true/false, 1/0 and "1"/"0" when decoding so
// older records keep loading.
type WireBool bool

func (b WireBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (b *WireBool) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "1", "true", `"1"`:
		*b = true
		return nil
	case "0", "false", "null", `"0"`:
		*b = false
		return nil
	}
	// Some tenants return floats here.
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*b = n != 0
		return nil
	}
	return fmt.Errorf("cannot decode %s into WireBool", string(data))
}

// Product is a catalog item as the remote API returns it.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Unit        string   `json:"unit"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	OriginPrice float64  `json:"origin_price"`
	Price       float64  `json:"price"`
	IsEnabled   WireBool `json:"is_enabled"`
	ImageURL    string   `json:"imageUrl"`
	ImagesURL   []string `json:"imagesUrl"`
}

// ProductPayload is the normalized submission body for create and update.
// It mirrors Product but is built from the console draft, so empty image
// entries are already stripped and prices already validated.
type ProductPayload struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Unit        string   `json:"unit"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	OriginPrice float64  `json:"origin_price"`
	Price       float64  `json:"price"`
	IsEnabled   WireBool `json:"is_enabled"`
	ImageURL    string   `json:"imageUrl"`
	ImagesURL   []string `json:"imagesUrl"`
}

// PaginationMeta is server-computed paging state. The console renders it as-is
// and never recomputes page counts locally.
type PaginationMeta struct {
	TotalPages  int    `json:"total_pages"`
	CurrentPage int    `json:"current_page"`
	HasPre      bool   `json:"has_pre"`
	HasNext     bool   `json:"has_next"`
	Category    string `json:"category"`
}

// ProductList is the listing endpoint response.
type ProductList struct {
	Products   []Product      `json:"products"`
	Pagination PaginationMeta `json:"pagination"`
}

// SignInResult carries the bearer token and its absolute expiry.
type SignInResult struct {
	Token   string `json:"token"`
	Expired string `json:"expired"`
}
