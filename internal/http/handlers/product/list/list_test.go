package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/product-catalog/internal/models"
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, filter models.ProductFilter, page int) ([]*models.Product, models.Pagination, error) {
	args := m.Called(ctx, filter, page)
	if res := args.Get(0); res != nil {
		return res.([]*models.Product), args.Get(1).(models.Pagination), args.Error(2)
	}
	return nil, args.Get(1).(models.Pagination), args.Error(2)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешный список с пагинацией",
			url:  "/products?page=2",
			setupMock: func(m *MockService) {
				products := []*models.Product{
					{ID: 11, Name: "Chair", Price: 49.99, Status: models.StatusActive, Type: models.TypeItem},
				}
				pagination := models.NewPagination(2, 10, 25)
				m.On("List", mock.Anything, models.ProductFilter{}, 2).Return(products, pagination, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"page_count":3`,
		},
		{
			name: "фильтры по названию и владельцу",
			url:  "/products?name=chair&person=testuser",
			setupMock: func(m *MockService) {
				filter := models.ProductFilter{Name: "chair", Person: "testuser"}
				m.On("List", mock.Anything, filter, 1).
					Return([]*models.Product{{ID: 1, Name: "Chair"}}, models.NewPagination(1, 10, 1), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Chair"`,
		},
		{
			name: "некорректный номер страницы приводится к первой",
			url:  "/products?page=abc",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, models.ProductFilter{}, 1).
					Return([]*models.Product{}, models.NewPagination(1, 10, 0), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"success":true`,
		},
		{
			name: "ошибка сервиса выборки",
			url:  "/products",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, models.ProductFilter{}, 1).
					Return(nil, models.Pagination{}, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"could not list products"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
