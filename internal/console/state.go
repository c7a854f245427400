package console

import (
	"fmt"
	"sync"

	"catalog-admin/internal/catalog"
)

// Mode is the modal's state. The presentation layer derives show/hide from
// this field alone; nothing here reaches into a UI toolkit.
type Mode string

const (
	ModeClosed Mode = "closed"
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
	ModeDelete Mode = "delete"
)

// Store owns all mutable console state: the current product page, its
// pagination metadata, the modal mode, the draft under edit, and the pending
// user notice. Every transition of the modal state machine is exactly one
// method here.
//
// Handlers run concurrently under the HTTP server, so the store serializes
// each event with a mutex.
type Store struct {
	mu         sync.Mutex
	products   []catalog.Product
	pagination catalog.PaginationMeta
	mode       Mode
	draft      Draft
	notice     string
}

func NewStore() *Store {
	return &Store{
		mode:  ModeClosed,
		draft: newDraft(),
	}
}

// View is an isolated copy of the store for rendering.
type View struct {
	Products   []catalog.Product
	Pagination catalog.PaginationMeta
	Mode       Mode
	Draft      Draft
	Notice     string
}

// Snapshot copies the current state and consumes the pending notice, so a
// notice is shown on exactly one page render.
func (s *Store) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := View{
		Products:   append([]catalog.Product{}, s.products...),
		Pagination: s.pagination,
		Mode:       s.mode,
		Draft:      s.draft.clone(),
		Notice:     s.notice,
	}
	s.notice = ""
	return view
}

// ReplaceList swaps in a freshly fetched page wholesale. There is no
// incremental merge; the previous page simply stops existing.
func (s *Store) ReplaceList(list catalog.ProductList) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = list.Products
	s.pagination = list.Pagination
}

// FindProduct looks a product up in the currently loaded page.
func (s *Store) FindProduct(id string) (catalog.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}

// CurrentPage is the page to refetch after a mutation, defaulting to 1 before
// any list has loaded.
func (s *Store) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pagination.CurrentPage < 1 {
		return 1
	}
	return s.pagination.CurrentPage
}

// Open starts a modal session. The draft is replaced wholesale on every open:
// create gets the template defaults, edit and delete get the defaults merged
// with a full copy of the product. Whatever draft existed before is gone.
func (s *Store) Open(mode Mode, product *catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch mode {
	case ModeCreate:
		if product != nil {
			return fmt.Errorf("create mode takes no product")
		}
		s.draft = newDraft()
	case ModeEdit, ModeDelete:
		if product == nil {
			return fmt.Errorf("%s mode requires a product", mode)
		}
		s.draft = draftFromProduct(*product)
	default:
		return fmt.Errorf("cannot open modal in mode %q", mode)
	}
	s.mode = mode
	return nil
}

// Close discards the draft and hides the modal, whether or not anything was
// confirmed.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = ModeClosed
	s.draft = newDraft()
}

func (s *Store) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Draft returns a copy of the current draft.
func (s *Store) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.clone()
}

// SetField updates one draft field through the schema.
func (s *Store) SetField(name, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.setField(name, raw)
}

// SetImage replaces the image URL at index; the index must be in bounds.
func (s *Store) SetImage(index int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.setImage(index, value)
}

func (s *Store) AddImage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.addImage()
}

func (s *Store) RemoveImage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.removeImage()
}

// BuildPayload builds the submission payload from the current draft.
func (s *Store) BuildPayload() (catalog.ProductPayload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.BuildPayload()
}

// SetNotice records a user-visible message for the next page render.
func (s *Store) SetNotice(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = message
}
