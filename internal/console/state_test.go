package console

import (
	"testing"

	"catalog-admin/internal/catalog"
)

func sampleProduct() catalog.Product {
	return catalog.Product{
		ID:        "42",
		Title:     "Widget",
		Category:  "tools",
		Price:     99,
		IsEnabled: true,
		ImagesURL: []string{"https://example.com/a.png"},
	}
}

func TestOpenEditThenCreateYieldsTemplateDefaults(t *testing.T) {
	s := NewStore()
	p := sampleProduct()

	if err := s.Open(ModeEdit, &p); err != nil {
		t.Fatalf("open edit: %v", err)
	}
	if s.Draft().Title != "Widget" {
		t.Fatal("edit draft should carry the product's fields")
	}

	if err := s.Open(ModeCreate, nil); err != nil {
		t.Fatalf("open create: %v", err)
	}
	d := s.Draft()
	if d.ID != "" || d.Title != "" || d.Category != "" || d.IsEnabled || len(d.ImagesURL) != 0 {
		t.Fatalf("create draft must be the template defaults, got %+v", d)
	}
}

func TestRemoveImageOnEmptyListIsNoop(t *testing.T) {
	s := NewStore()
	if err := s.Open(ModeCreate, nil); err != nil {
		t.Fatalf("open create: %v", err)
	}

	s.RemoveImage()
	if got := len(s.Draft().ImagesURL); got != 0 {
		t.Fatalf("expected empty image list, got %d entries", got)
	}
}

func TestAddThenRemoveImageIsIdentity(t *testing.T) {
	s := NewStore()
	p := sampleProduct()
	if err := s.Open(ModeEdit, &p); err != nil {
		t.Fatalf("open edit: %v", err)
	}
	before := s.Draft().ImagesURL

	s.AddImage()
	s.RemoveImage()

	after := s.Draft().ImagesURL
	if len(after) != len(before) {
		t.Fatalf("expected %d images, got %d", len(before), len(after))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Fatalf("image %d changed: %q -> %q", i, before[i], after[i])
		}
	}
}

func TestSetImageOutOfRangeIsRejected(t *testing.T) {
	s := NewStore()
	if err := s.Open(ModeCreate, nil); err != nil {
		t.Fatalf("open create: %v", err)
	}

	if err := s.SetImage(0, "https://example.com/x.png"); err == nil {
		t.Fatal("expected out-of-range error on empty list")
	}

	s.AddImage()
	if err := s.SetImage(0, "https://example.com/x.png"); err != nil {
		t.Fatalf("in-bounds SetImage failed: %v", err)
	}
	if s.Draft().ImagesURL[0] != "https://example.com/x.png" {
		t.Fatal("image not replaced")
	}
}

func TestOpenModeArgumentRules(t *testing.T) {
	s := NewStore()
	p := sampleProduct()

	if err := s.Open(ModeCreate, &p); err == nil {
		t.Fatal("create must not accept a product")
	}
	if err := s.Open(ModeEdit, nil); err == nil {
		t.Fatal("edit requires a product")
	}
	if err := s.Open(ModeDelete, nil); err == nil {
		t.Fatal("delete requires a product")
	}
	if err := s.Open(ModeClosed, nil); err == nil {
		t.Fatal("closed is not an openable mode")
	}
	if s.Mode() != ModeClosed {
		t.Fatalf("rejected opens must not change the mode, got %s", s.Mode())
	}
}

func TestCloseDiscardsDraft(t *testing.T) {
	s := NewStore()
	p := sampleProduct()
	if err := s.Open(ModeDelete, &p); err != nil {
		t.Fatalf("open delete: %v", err)
	}

	s.Close()
	if s.Mode() != ModeClosed {
		t.Fatalf("expected closed, got %s", s.Mode())
	}
	if d := s.Draft(); d.ID != "" || d.Title != "" {
		t.Fatalf("draft must be discarded on close, got %+v", d)
	}
}

func TestReplaceListSwapsWholesale(t *testing.T) {
	s := NewStore()
	s.ReplaceList(catalog.ProductList{
		Products:   []catalog.Product{sampleProduct()},
		Pagination: catalog.PaginationMeta{TotalPages: 3, CurrentPage: 2, HasPre: true, HasNext: true},
	})

	if _, found := s.FindProduct("42"); !found {
		t.Fatal("product 42 should be on the loaded page")
	}
	if s.CurrentPage() != 2 {
		t.Fatalf("expected current page 2, got %d", s.CurrentPage())
	}

	s.ReplaceList(catalog.ProductList{Products: nil, Pagination: catalog.PaginationMeta{CurrentPage: 1, TotalPages: 1}})
	if _, found := s.FindProduct("42"); found {
		t.Fatal("old page must not survive a replace")
	}
}

func TestSnapshotConsumesNotice(t *testing.T) {
	s := NewStore()
	s.SetNotice("something went wrong")

	if got := s.Snapshot().Notice; got != "something went wrong" {
		t.Fatalf("expected notice on first snapshot, got %q", got)
	}
	if got := s.Snapshot().Notice; got != "" {
		t.Fatalf("notice must be shown exactly once, got %q", got)
	}
}

func TestSnapshotIsIsolatedCopy(t *testing.T) {
	s := NewStore()
	p := sampleProduct()
	if err := s.Open(ModeEdit, &p); err != nil {
		t.Fatalf("open edit: %v", err)
	}

	view := s.Snapshot()
	view.Draft.ImagesURL[0] = "mutated"
	if s.Draft().ImagesURL[0] != "https://example.com/a.png" {
		t.Fatal("snapshot shares the draft's image slice")
	}
}
