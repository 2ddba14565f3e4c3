package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/internal/mock"
	"github.com/togglbot/togglbot/internal/service"
	"github.com/togglbot/togglbot/models"
	"go.uber.org/mock/gomock"
)

func TestGetAppVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	appInfo := mock.NewMockAppInfoService(ctrl)
	parser := mock.NewMockEventParser(ctrl)
	h := NewHandler(&service.Services{AppInfoService: appInfo}, parser, logger.NewLogger("test"))

	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	r := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	w := httptest.NewRecorder()

	h.Init().ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp models.VersionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1.2.3", resp.Version)
}

func TestTraceIDHeaderIsSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	appInfo := mock.NewMockAppInfoService(ctrl)
	parser := mock.NewMockEventParser(ctrl)
	h := NewHandler(&service.Services{AppInfoService: appInfo}, parser, logger.NewLogger("test"))

	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	r := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	w := httptest.NewRecorder()

	h.Init().ServeHTTP(w, r)

	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
}

func TestTraceIDHeaderIsPropagated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	appInfo := mock.NewMockAppInfoService(ctrl)
	parser := mock.NewMockEventParser(ctrl)
	h := NewHandler(&service.Services{AppInfoService: appInfo}, parser, logger.NewLogger("test"))

	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	r := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	r.Header.Set("X-Trace-ID", "trace-123")
	w := httptest.NewRecorder()

	h.Init().ServeHTTP(w, r)

	assert.Equal(t, "trace-123", w.Header().Get("X-Trace-ID"))
}
