package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/amaris/catalog-api/internal/core/domain"
	"github.com/amaris/catalog-api/internal/core/ports"
)

type stubQuoteService struct {
	result    *ports.SubmitQuoteResult
	submitErr error
	last      ports.SubmitQuoteInput
}

func (s *stubQuoteService) Submit(_ context.Context, input ports.SubmitQuoteInput) (*ports.SubmitQuoteResult, error) {
	s.last = input
	return s.result, s.submitErr
}

func (s *stubQuoteService) Get(_ context.Context, id string) (*domain.Quote, error) {
	return nil, domain.ErrQuoteNotFound
}

func (s *stubQuoteService) List(_ context.Context, _ domain.QuoteStatus) ([]domain.Quote, error) {
	return nil, nil
}

func (s *stubQuoteService) Stats(_ context.Context) (*ports.QuoteStats, error) {
	return &ports.QuoteStats{Total: 0, ByStatus: map[domain.QuoteStatus]int64{}}, nil
}

func (s *stubQuoteService) Update(_ context.Context, _ string, _ ports.UpdateQuoteInput) (*domain.Quote, error) {
	return nil, domain.ErrQuoteNotFound
}

func (s *stubQuoteService) Delete(_ context.Context, _ string) error {
	return domain.ErrQuoteNotFound
}

func newQuoteContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/v1/quotes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const validQuoteBody = `{"customer_name":"Bob Builder","customer_email":"bob@example.com","message":"Need pricing for two units."}`

func TestQuoteHandler_Submit_Created(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	svc := &stubQuoteService{result: &ports.SubmitQuoteResult{
		Quote: &domain.Quote{ID: "quote-1", Status: domain.QuoteStatusNew},
	}}
	h := NewQuoteHandler(svc)

	c, rec := newQuoteContext(e, validQuoteBody)
	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.last.CustomerEmail != "bob@example.com" {
		t.Errorf("unexpected input passed to service: %+v", svc.last)
	}
}

func TestQuoteHandler_Submit_ReplayReturnsOK(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewQuoteHandler(&stubQuoteService{result: &ports.SubmitQuoteResult{
		Quote:          &domain.Quote{ID: "quote-1", Status: domain.QuoteStatusNew},
		AlreadyExisted: true,
	}})

	c, rec := newQuoteContext(e, validQuoteBody)
	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for replayed submission, got %d", rec.Code)
	}
}

func TestQuoteHandler_Submit_ValidationFailures(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewQuoteHandler(&stubQuoteService{})

	bodies := []string{
		`{}`,
		`{"customer_name":"Bob Builder","message":"hi"}`,
		`{"customer_name":"Bob Builder","customer_email":"not-an-email","message":"hi"}`,
		`{"customer_email":"bob@example.com","message":"hi"}`,
	}
	for _, body := range bodies {
		c, rec := newQuoteContext(e, body)
		if err := h.Submit(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("body %s: expected 422, got %d", body, rec.Code)
		}
	}
}

func TestQuoteHandler_Submit_MalformedJSON(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewQuoteHandler(&stubQuoteService{})

	c, rec := newQuoteContext(e, `{not json`)
	if err := h.Submit(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
