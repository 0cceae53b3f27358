package status_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suggestbox/internal/status"
	"suggestbox/internal/status/mocks"
)

func newTestRouter(repo status.Repository) http.Handler {
	r := chi.NewRouter()
	status.NewHTTPHandler(repo).Register(r)
	return r
}

func TestCreateStatusCheck(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *mocks.MockRepository)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"client_name":"web-frontend"}`,
			setupMock: func(m *mocks.MockRepository) {
				m.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing client_name",
			body:           `{}`,
			setupMock:      func(m *mocks.MockRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown field rejected",
			body:           `{"client_name":"x","extra":1}`,
			setupMock:      func(m *mocks.MockRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockRepo := mocks.NewMockRepository(ctrl)
			tt.setupMock(mockRepo)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/status", strings.NewReader(tt.body))
			newTestRouter(mockRepo).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var check status.Check
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &check))
				assert.NotEmpty(t, check.ID)
				assert.Equal(t, "web-frontend", check.ClientName)
				assert.WithinDuration(t, time.Now().UTC(), check.Timestamp, 5*time.Second)
			}
		})
	}
}

func TestListStatusChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockRepository(ctrl)
	mockRepo.EXPECT().List(gomock.Any(), 1000).Return(nil, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/status", nil)
	newTestRouter(mockRepo).ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var checks []status.Check
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &checks))
	assert.Empty(t, checks)
}
