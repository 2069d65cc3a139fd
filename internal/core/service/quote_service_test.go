package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/amaris/catalog-api/internal/core/domain"
	"github.com/amaris/catalog-api/internal/core/ports"
)

type stubQuoteRepo struct {
	quotes  map[string]*domain.Quote
	creates int
}

func newStubQuoteRepo() *stubQuoteRepo {
	return &stubQuoteRepo{quotes: make(map[string]*domain.Quote)}
}

func (r *stubQuoteRepo) Create(_ context.Context, quote *domain.Quote) error {
	clone := *quote
	r.quotes[quote.ID] = &clone
	r.creates++
	return nil
}

func (r *stubQuoteRepo) FindByID(_ context.Context, id string) (*domain.Quote, error) {
	q, ok := r.quotes[id]
	if !ok {
		return nil, domain.ErrQuoteNotFound
	}
	clone := *q
	return &clone, nil
}

func (r *stubQuoteRepo) List(_ context.Context, status domain.QuoteStatus) ([]domain.Quote, error) {
	var out []domain.Quote
	for _, q := range r.quotes {
		if status == "" || q.Status == status {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (r *stubQuoteRepo) CountByStatus(_ context.Context) (map[domain.QuoteStatus]int64, error) {
	counts := make(map[domain.QuoteStatus]int64)
	for _, q := range r.quotes {
		counts[q.Status]++
	}
	return counts, nil
}

func (r *stubQuoteRepo) Update(_ context.Context, quote *domain.Quote) error {
	if _, ok := r.quotes[quote.ID]; !ok {
		return domain.ErrQuoteNotFound
	}
	clone := *quote
	r.quotes[quote.ID] = &clone
	return nil
}

func (r *stubQuoteRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.quotes[id]; !ok {
		return domain.ErrQuoteNotFound
	}
	delete(r.quotes, id)
	return nil
}

type stubProductRepo struct {
	products map[string]*domain.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, product *domain.Product) error {
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) FindBySlug(_ context.Context, slug string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) List(_ context.Context, categoryID string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if categoryID == "" || p.CategoryID == categoryID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Search(_ context.Context, _ string) ([]domain.Product, error) {
	return nil, nil
}

func (r *stubProductRepo) Update(_ context.Context, product *domain.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

type stubDeduper struct {
	seen map[string]string
}

func newStubDeduper() *stubDeduper {
	return &stubDeduper{seen: make(map[string]string)}
}

func (d *stubDeduper) Seen(_ context.Context, fingerprint string) (string, error) {
	return d.seen[fingerprint], nil
}

func (d *stubDeduper) Mark(_ context.Context, fingerprint, quoteID string) error {
	d.seen[fingerprint] = quoteID
	return nil
}

type stubDispatcher struct {
	enqueued []ports.QuoteNotificationInput
}

func (d *stubDispatcher) Enqueue(input ports.QuoteNotificationInput) {
	d.enqueued = append(d.enqueued, input)
}

type quoteFixture struct {
	svc        *QuoteService
	quotes     *stubQuoteRepo
	products   *stubProductRepo
	users      *stubUserRepo
	dedup      *stubDeduper
	dispatcher *stubDispatcher
}

func newQuoteFixture() *quoteFixture {
	f := &quoteFixture{
		quotes:     newStubQuoteRepo(),
		products:   newStubProductRepo(),
		users:      newStubUserRepo(),
		dedup:      newStubDeduper(),
		dispatcher: &stubDispatcher{},
	}
	f.svc = NewQuoteService(f.quotes, f.products, f.users, f.dedup, f.dispatcher, zerolog.Nop())
	return f
}

func submitInput() ports.SubmitQuoteInput {
	return ports.SubmitQuoteInput{
		CustomerName:  "Bob Builder",
		CustomerEmail: "bob@example.com",
		CustomerPhone: "555-0101",
		CompanyName:   "Builder Co",
		ProductID:     "prod-1",
		Message:       "Need pricing for two units.",
	}
}

func TestQuoteService_Submit(t *testing.T) {
	f := newQuoteFixture()
	f.products.products["prod-1"] = &domain.Product{ID: "prod-1", Name: "Excavator X200"}

	result, err := f.svc.Submit(context.Background(), submitInput())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if result.AlreadyExisted {
		t.Fatalf("fresh submission must not report a replay")
	}

	quote := result.Quote
	if quote.ID == "" {
		t.Fatalf("expected quote id to be assigned")
	}
	if quote.Status != domain.QuoteStatusNew {
		t.Errorf("expected status new, got %s", quote.Status)
	}
	if quote.ProductName != "Excavator X200" {
		t.Errorf("expected product name to be resolved, got %q", quote.ProductName)
	}

	if f.quotes.creates != 1 {
		t.Errorf("expected 1 insert, got %d", f.quotes.creates)
	}
	if len(f.dispatcher.enqueued) != 1 {
		t.Fatalf("expected 1 fan-out job, got %d", len(f.dispatcher.enqueued))
	}
	if f.dispatcher.enqueued[0].QuoteID != quote.ID {
		t.Errorf("fan-out job references wrong quote: %s", f.dispatcher.enqueued[0].QuoteID)
	}
}

func TestQuoteService_Submit_UnknownProductStillAccepted(t *testing.T) {
	f := newQuoteFixture()

	result, err := f.svc.Submit(context.Background(), submitInput())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if result.Quote.ProductName != "" {
		t.Errorf("expected empty product name, got %q", result.Quote.ProductName)
	}
}

func TestQuoteService_Submit_DuplicateReplays(t *testing.T) {
	f := newQuoteFixture()

	first, err := f.svc.Submit(context.Background(), submitInput())
	if err != nil {
		t.Fatalf("first Submit returned error: %v", err)
	}

	second, err := f.svc.Submit(context.Background(), submitInput())
	if err != nil {
		t.Fatalf("second Submit returned error: %v", err)
	}
	if !second.AlreadyExisted {
		t.Fatalf("expected duplicate submission to be reported as a replay")
	}
	if second.Quote.ID != first.Quote.ID {
		t.Fatalf("replay returned a different quote: %s vs %s", second.Quote.ID, first.Quote.ID)
	}
	if f.quotes.creates != 1 {
		t.Errorf("duplicate must not insert again, got %d inserts", f.quotes.creates)
	}
	if len(f.dispatcher.enqueued) != 1 {
		t.Errorf("duplicate must not fan out again, got %d jobs", len(f.dispatcher.enqueued))
	}
}

func TestQuoteService_Submit_DifferentMessageIsNotADuplicate(t *testing.T) {
	f := newQuoteFixture()

	first, err := f.svc.Submit(context.Background(), submitInput())
	if err != nil {
		t.Fatalf("first Submit returned error: %v", err)
	}

	input := submitInput()
	input.Message = "Actually, make it three units."
	second, err := f.svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("second Submit returned error: %v", err)
	}
	if second.AlreadyExisted {
		t.Fatalf("changed message must create a new quote")
	}
	if second.Quote.ID == first.Quote.ID {
		t.Fatalf("expected distinct quote ids")
	}
}

func TestQuoteService_List_InvalidStatus(t *testing.T) {
	f := newQuoteFixture()
	if _, err := f.svc.List(context.Background(), "archived"); !errors.Is(err, domain.ErrInvalidQuoteStatus) {
		t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
	}
}

func TestQuoteService_Update_StatusAndAssignment(t *testing.T) {
	f := newQuoteFixture()
	f.users.users["staff-1"] = &domain.User{ID: "staff-1", FirstName: "Sam", LastName: "Seller", Role: domain.RoleSales}

	result, err := f.svc.Submit(context.Background(), submitInput())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	updated, err := f.svc.Update(context.Background(), result.Quote.ID, ports.UpdateQuoteInput{
		Status:     domain.QuoteStatusContacted,
		AssignedTo: "staff-1",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Status != domain.QuoteStatusContacted {
		t.Errorf("expected status contacted, got %s", updated.Status)
	}
	if updated.AssignedToName != "Sam Seller" {
		t.Errorf("expected assignee name to be resolved, got %q", updated.AssignedToName)
	}
}

func TestQuoteService_Update_InvalidStatus(t *testing.T) {
	f := newQuoteFixture()

	result, err := f.svc.Submit(context.Background(), submitInput())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if _, err := f.svc.Update(context.Background(), result.Quote.ID, ports.UpdateQuoteInput{Status: "done"}); !errors.Is(err, domain.ErrInvalidQuoteStatus) {
		t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
	}
}

func TestQuoteService_Update_UnknownAssignee(t *testing.T) {
	f := newQuoteFixture()

	result, err := f.svc.Submit(context.Background(), submitInput())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if _, err := f.svc.Update(context.Background(), result.Quote.ID, ports.UpdateQuoteInput{AssignedTo: "ghost"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestQuoteService_Stats(t *testing.T) {
	f := newQuoteFixture()

	inputs := []ports.SubmitQuoteInput{submitInput(), submitInput(), submitInput()}
	inputs[1].Message = "Second request."
	inputs[2].Message = "Third request."

	ids := make([]string, 0, len(inputs))
	for _, input := range inputs {
		result, err := f.svc.Submit(context.Background(), input)
		if err != nil {
			t.Fatalf("Submit returned error: %v", err)
		}
		ids = append(ids, result.Quote.ID)
	}

	if _, err := f.svc.Update(context.Background(), ids[0], ports.UpdateQuoteInput{Status: domain.QuoteStatusContacted}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	stats, err := f.svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.Total != 3 {
		t.Errorf("expected total 3, got %d", stats.Total)
	}
	if stats.ByStatus[domain.QuoteStatusNew] != 2 {
		t.Errorf("expected 2 new, got %d", stats.ByStatus[domain.QuoteStatusNew])
	}
	if stats.ByStatus[domain.QuoteStatusContacted] != 1 {
		t.Errorf("expected 1 contacted, got %d", stats.ByStatus[domain.QuoteStatusContacted])
	}
	if count, ok := stats.ByStatus[domain.QuoteStatusClosed]; !ok || count != 0 {
		t.Errorf("expected closed to be reported as zero, got %d (present=%v)", count, ok)
	}
}

func TestQuoteService_Get_NotFound(t *testing.T) {
	f := newQuoteFixture()
	if _, err := f.svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
}
