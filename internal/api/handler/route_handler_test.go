package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/airlinehq/airline-api/internal/core/domain"
	"github.com/airlinehq/airline-api/internal/core/ports"
)

type stubRouteService struct {
	listFn   func(ctx context.Context, page, limit int64) ([]*domain.Route, int64, error)
	getFn    func(ctx context.Context, id int64) (*domain.Route, error)
	createFn func(ctx context.Context, input ports.CreateRouteInput) (*domain.Route, error)
	updateFn func(ctx context.Context, id int64, input ports.UpdateRouteInput) (*domain.Route, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubRouteService) List(ctx context.Context, page, limit int64) ([]*domain.Route, int64, error) {
	return s.listFn(ctx, page, limit)
}

func (s *stubRouteService) Get(ctx context.Context, id int64) (*domain.Route, error) {
	return s.getFn(ctx, id)
}

func (s *stubRouteService) Create(ctx context.Context, input ports.CreateRouteInput) (*domain.Route, error) {
	return s.createFn(ctx, input)
}

func (s *stubRouteService) Update(ctx context.Context, id int64, input ports.UpdateRouteInput) (*domain.Route, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubRouteService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func TestRouteHandler_Get_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubRouteService{
		getFn: func(ctx context.Context, id int64) (*domain.Route, error) {
			if id != 9 {
				t.Fatalf("unexpected id: %d", id)
			}
			return &domain.Route{RouteID: 9, Origin: "KBP", Destination: "LHR"}, nil
		},
	}
	handler := NewRouteHandler(stub)

	c, rec := idContext(e, http.MethodGet, "/api/routes/9", "9", "")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	route, ok := resp["data"].(map[string]any)
	if !ok || route["origin"] != "KBP" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestRouteHandler_Get_NotFoundPropagates(t *testing.T) {
	e := newTestEcho()
	stub := &stubRouteService{
		getFn: func(ctx context.Context, id int64) (*domain.Route, error) {
			return nil, domain.NewNotFoundError("route not found")
		},
	}
	handler := NewRouteHandler(stub)

	c, _ := idContext(e, http.MethodGet, "/api/routes/9", "9", "")

	if err := handler.Get(c); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestRouteHandler_Create_Validation(t *testing.T) {
	e := newTestEcho()
	handler := NewRouteHandler(&stubRouteService{})

	// Distance must be positive.
	c, _ := newJSONContext(e, http.MethodPost, "/api/routes",
		`{"origin":"KBP","destination":"LHR","distance":-10,"estimated_duration":"03:30"}`)

	if err := handler.Create(c); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRouteHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubRouteService{
		createFn: func(ctx context.Context, input ports.CreateRouteInput) (*domain.Route, error) {
			if input.Origin != "KBP" || input.Distance != 2400 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Route{RouteID: 1, Origin: input.Origin, Destination: input.Destination}, nil
		},
	}
	handler := NewRouteHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/api/routes",
		`{"origin":"KBP","destination":"LHR","distance":2400,"estimated_duration":"03:30"}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestRouteHandler_Update_PartialBody(t *testing.T) {
	e := newTestEcho()
	stub := &stubRouteService{
		updateFn: func(ctx context.Context, id int64, input ports.UpdateRouteInput) (*domain.Route, error) {
			if input.Destination == nil || *input.Destination != "CDG" {
				t.Fatalf("expected destination update, got %+v", input)
			}
			if input.Origin != nil || input.Distance != nil {
				t.Fatalf("absent fields must stay nil: %+v", input)
			}
			return &domain.Route{RouteID: id, Destination: "CDG"}, nil
		},
	}
	handler := NewRouteHandler(stub)

	c, rec := idContext(e, http.MethodPut, "/api/routes/4", "4", `{"destination":"CDG"}`)

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success envelope, got %+v", resp)
	}
}

func TestRouteHandler_Delete_ConflictPropagates(t *testing.T) {
	e := newTestEcho()
	stub := &stubRouteService{
		deleteFn: func(ctx context.Context, id int64) error {
			return domain.NewConflictError("cannot delete route with scheduled flights")
		},
	}
	handler := NewRouteHandler(stub)

	c, _ := idContext(e, http.MethodDelete, "/api/routes/4", "4", "")

	if err := handler.Delete(c); !domain.IsKind(err, domain.KindConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}
