package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAgencyRepository struct {
	mock.Mock
}

func (m *MockAgencyRepository) GetByAPIKey(ctx context.Context, apiKey string) (*domain.Agency, error) {
	args := m.Called(ctx, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agency), args.Error(1)
}

func TestAgencyAuth_MissingKey(t *testing.T) {
	mockRepo := &MockAgencyRepository{}

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/bookings", nil)

	AgencyAuth(mockRepo)(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
	mockRepo.AssertNotCalled(t, "GetByAPIKey")
}

func TestAgencyAuth_InvalidKey(t *testing.T) {
	mockRepo := &MockAgencyRepository{}

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/bookings", nil)
	c.Request.Header.Set("X-API-Key", "bad-key")

	mockRepo.On("GetByAPIKey", c.Request.Context(), "bad-key").Return(nil, domain.ErrAgencyNotFound)

	AgencyAuth(mockRepo)(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, c.IsAborted())
}

func TestAgencyAuth_ValidKey(t *testing.T) {
	mockRepo := &MockAgencyRepository{}

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/bookings", nil)
	c.Request.Header.Set("X-API-Key", "good-key")

	agency := &domain.Agency{ID: "agency-1", Name: "SkyTravel", APIKey: "good-key", IsActive: true}
	mockRepo.On("GetByAPIKey", c.Request.Context(), "good-key").Return(agency, nil)

	AgencyAuth(mockRepo)(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, "agency-1", agencyID(c))
}
