package controller

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/project/bookshelf/internal/controller/mocks"

	"go.uber.org/mock/gomock"
)

var errInternal = errors.New("internal error")

func InitShelfTest(t *testing.T) (*mocks.MockShelfUseCase, *mocks.MockCatalogService, *implementation) {
	t.Helper()
	ctrl := gomock.NewController(t)
	shelfUseCase := mocks.NewMockShelfUseCase(ctrl)
	catalogService := mocks.NewMockCatalogService(ctrl)
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	service := New(logger, shelfUseCase, catalogService)
	return shelfUseCase, catalogService, service
}

// doRequest routes the request through the full chi router, url params are
// resolved exactly as in production.
func doRequest(t *testing.T, service *implementation, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	service.Routes().ServeHTTP(recorder, req)
	return recorder
}

func requireStatus(t *testing.T, recorder *httptest.ResponseRecorder, status int) {
	t.Helper()
	if recorder.Code != status {
		t.Fatalf("got status %d, want %d, body: %s", recorder.Code, status, recorder.Body.String())
	}
}
