package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"furniture_warehouse/internal/adapter/http/handlers/mocks"
	"furniture_warehouse/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_Stats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		r := gin.New()
		r.GET("/dashboard", NewDashboardHandler(uc).Stats)

		uc.EXPECT().Stats(gomock.Any()).Return(entities.DashboardStats{Suppliers: 2, InventoryValue: decimal.NewFromInt(405)}, nil)

		w := doJSON(r, http.MethodGet, "/dashboard", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		r := gin.New()
		r.GET("/dashboard", NewDashboardHandler(uc).Stats)

		uc.EXPECT().Stats(gomock.Any()).Return(entities.DashboardStats{}, errors.New("boom"))

		w := doJSON(r, http.MethodGet, "/dashboard", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestAuditHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name  string
		query string
		limit int
		code  int
	}{
		{name: "default", query: "", limit: 0, code: http.StatusOK},
		{name: "explicit", query: "?limit=20", limit: 20, code: http.StatusOK},
		{name: "not a number", query: "?limit=ten", limit: -1, code: http.StatusBadRequest},
		{name: "negative", query: "?limit=-3", limit: -1, code: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIAuditUseCase(ctrl)
			r := gin.New()
			r.GET("/audit", NewAuditHandler(uc).List)

			if tc.limit >= 0 {
				uc.EXPECT().ListRecent(gomock.Any(), tc.limit).Return([]entities.AuditEvent{
					{ID: "e1", Entity: "order", EntityID: 1, Action: entities.AuditActionCreate, Actor: "ana", CreatedAt: time.Now().UTC()},
				}, nil)
			}

			w := doJSON(r, http.MethodGet, "/audit"+tc.query, "")
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}
}
