package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	response "furniture_warehouse/internal/adapter/http/dto/response"
	"furniture_warehouse/internal/adapter/http/handlers/mocks"
	"furniture_warehouse/internal/domain/entities"
	"furniture_warehouse/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSupplierRouter(h *SupplierHandler) *gin.Engine {
	r := gin.New()
	r.GET("/suppliers", h.List)
	r.GET("/suppliers/:id", h.Get)
	r.POST("/suppliers", h.Create)
	r.PUT("/suppliers/:id", h.Update)
	r.DELETE("/suppliers/:id", h.Delete)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not json: %s", w.Body.String())
	}
	return body["error"]
}

func TestSupplierHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		r := newSupplierRouter(NewSupplierHandler(uc))

		w := doJSON(r, http.MethodPost, "/suppliers", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := errorBody(t, w); got != "invalid request body" {
			t.Fatalf("unexpected error %q", got)
		}
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		r := newSupplierRouter(NewSupplierHandler(uc))

		uc.EXPECT().Create(gomock.Any(), entities.Supplier{Name: " "}).Return(entities.Supplier{}, usecase.ErrSupplierNameRequired)

		w := doJSON(r, http.MethodPost, "/suppliers", `{"name":" "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := errorBody(t, w); got != "supplier name is required" {
			t.Fatalf("unexpected error %q", got)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		r := newSupplierRouter(NewSupplierHandler(uc))

		in := entities.Supplier{Name: "Oak Works", Contacts: "sales@oak.io", Address: "12 Mill Road"}
		out := in
		out.ID = 4
		out.CreatedAt = time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), in).Return(out, nil)

		w := doJSON(r, http.MethodPost, "/suppliers", `{"name":"Oak Works","contacts":"sales@oak.io","address":"12 Mill Road"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res response.SupplierResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if res.ID != 4 || res.Name != "Oak Works" {
			t.Fatalf("unexpected response %+v", res)
		}
	})
}

func TestSupplierHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		r := newSupplierRouter(NewSupplierHandler(uc))

		w := doJSON(r, http.MethodGet, "/suppliers/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		r := newSupplierRouter(NewSupplierHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), uint(9)).Return(entities.Supplier{}, usecase.ErrSupplierNotFound)

		w := doJSON(r, http.MethodGet, "/suppliers/9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if got := errorBody(t, w); got != "supplier not found" {
			t.Fatalf("unexpected error %q", got)
		}
	})

	t.Run("store failure is masked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		r := newSupplierRouter(NewSupplierHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), uint(1)).Return(entities.Supplier{}, errors.New("database is locked"))

		w := doJSON(r, http.MethodGet, "/suppliers/1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if got := errorBody(t, w); got != "internal server error" {
			t.Fatalf("cause leaked: %q", got)
		}
	})
}

func TestSupplierHandler_ListUpdateDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list returns bare array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		r := newSupplierRouter(NewSupplierHandler(uc))

		uc.EXPECT().List(gomock.Any()).Return([]entities.Supplier{}, nil)

		w := doJSON(r, http.MethodGet, "/suppliers", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("update not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		r := newSupplierRouter(NewSupplierHandler(uc))

		uc.EXPECT().Update(gomock.Any(), uint(3), entities.Supplier{Name: "New"}).Return(entities.Supplier{}, usecase.ErrSupplierNotFound)

		w := doJSON(r, http.MethodPut, "/suppliers/3", `{"name":"New"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISupplierUseCase(ctrl)
		r := newSupplierRouter(NewSupplierHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), uint(3)).Return(nil)

		w := doJSON(r, http.MethodDelete, "/suppliers/3", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
