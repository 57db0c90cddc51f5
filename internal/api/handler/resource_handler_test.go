package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

type stubResourceService struct {
	likes  map[int64]map[int64]bool
	listFn func(ctx context.Context, viewer domain.Actor, resourceType string) ([]ports.ResourceView, error)
}

func (s *stubResourceService) ListByType(ctx context.Context, viewer domain.Actor, resourceType string) ([]ports.ResourceView, error) {
	return s.listFn(ctx, viewer, resourceType)
}

func (s *stubResourceService) Create(_ context.Context, _ domain.Actor, in ports.ResourceInput) (*domain.FinancialResource, error) {
	return &domain.FinancialResource{ID: 1, Name: in.Name, Website: in.Website, ResourceType: domain.ResourceType(in.ResourceType)}, nil
}

func (s *stubResourceService) Update(context.Context, domain.Actor, int64, ports.ResourceInput) (*domain.FinancialResource, error) {
	return nil, domain.ErrResourceNotFound
}

func (s *stubResourceService) Delete(context.Context, domain.Actor, int64) error { return nil }

func (s *stubResourceService) Like(_ context.Context, actor domain.Actor, id int64) (int64, error) {
	if s.likes[id][actor.UserID] {
		return 0, domain.ErrAlreadyLiked
	}
	if s.likes[id] == nil {
		s.likes[id] = map[int64]bool{}
	}
	s.likes[id][actor.UserID] = true
	return int64(len(s.likes[id])), nil
}

func (s *stubResourceService) Unlike(_ context.Context, actor domain.Actor, id int64) (int64, error) {
	if !s.likes[id][actor.UserID] {
		return 0, domain.ErrNotLiked
	}
	delete(s.likes[id], actor.UserID)
	return int64(len(s.likes[id])), nil
}

func likeRequest(t *testing.T, h *ResourceHandler, method string) (int64, error) {
	t.Helper()
	rec := httptest.NewRecorder()
	c := newTestEcho().NewContext(httptest.NewRequest(method, "/financial-literacy/1/like", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	withActor(c, applicantUser)

	call := h.Like
	if method == http.MethodDelete {
		call = h.Unlike
	}
	if err := call(c); err != nil {
		return 0, err
	}
	var resp likeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp.Likes, nil
}

func TestResourceHandler_LikeLifecycle(t *testing.T) {
	h := NewResourceHandler(&stubResourceService{likes: map[int64]map[int64]bool{}})

	if likes, err := likeRequest(t, h, http.MethodPost); err != nil || likes != 1 {
		t.Fatalf("first like: likes=%d err=%v", likes, err)
	}
	if _, err := likeRequest(t, h, http.MethodPost); !errors.Is(err, domain.ErrAlreadyLiked) {
		t.Fatalf("expected ErrAlreadyLiked, got %v", err)
	}
	if likes, err := likeRequest(t, h, http.MethodDelete); err != nil || likes != 0 {
		t.Fatalf("unlike: likes=%d err=%v", likes, err)
	}
	if _, err := likeRequest(t, h, http.MethodDelete); !errors.Is(err, domain.ErrNotLiked) {
		t.Fatalf("expected ErrNotLiked, got %v", err)
	}
}

func TestResourceHandler_ListByType_PassesTypeAndViewer(t *testing.T) {
	e := newTestEcho()
	liked := true
	svc := &stubResourceService{
		listFn: func(ctx context.Context, viewer domain.Actor, resourceType string) ([]ports.ResourceView, error) {
			if resourceType != "credit" || viewer.UserID != applicantUser.ID {
				t.Fatalf("unexpected args: %q %+v", resourceType, viewer)
			}
			return []ports.ResourceView{{
				FinancialResource: domain.FinancialResource{ID: 1, Name: "Credit 101", ResourceType: domain.ResourceCredit, Likes: 3},
				LikedByMe:         &liked,
			}}, nil
		},
	}
	h := NewResourceHandler(svc)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/financial-literacy/credit", nil), rec)
	c.SetParamNames("type")
	c.SetParamValues("credit")
	withActor(c, applicantUser)

	if err := h.ListByType(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["resource_id"] != float64(1) || resp[0]["liked_by_me"] != true || resp[0]["likes"] != float64(3) {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestResourceHandler_Create_RequiresFields(t *testing.T) {
	e := newTestEcho()
	h := NewResourceHandler(&stubResourceService{})

	c := e.NewContext(jsonRequest(http.MethodPost, "/financial-literacy", `{"name":"x"}`), httptest.NewRecorder())
	withActor(c, &domain.User{ID: 1, Role: domain.RoleAdmin})
	expectHTTPError(t, h.Create(c), http.StatusUnprocessableEntity)

	rec := httptest.NewRecorder()
	c = e.NewContext(jsonRequest(http.MethodPost, "/financial-literacy",
		`{"name":"Budget","website":"https://b.example","resource_type":"budget"}`), rec)
	withActor(c, &domain.User{ID: 1, Role: domain.RoleAdmin})
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}
