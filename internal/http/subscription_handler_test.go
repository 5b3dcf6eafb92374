package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"libraryapi/internal/entitlement"
)

const (
	testSubProfileID = "5d4c3b2a-1f0e-4d9c-8b7a-6e5f4d3c2b05"
	testFreePlanID   = "8e7f6d5c-4b3a-4291-a0f1-2e3d4c5b6a06"
)

func TestSubscriptionHandler_ListPlans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockService := NewMockSubscriptionService(ctrl)
	handler := NewSubscriptionHandler(mockService)

	mockService.EXPECT().ListPlans(gomock.Any()).Return([]entitlement.Plan{
		{ID: testFreePlanID, Kind: entitlement.PlanFree, Name: "Free Starter", MaxConcurrent: 2},
	}, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/plans", nil)

	handler.ListPlans(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Free Starter")
}

func TestSubscriptionHandler_Subscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockService := NewMockSubscriptionService(ctrl)
	handler := NewSubscriptionHandler(mockService)

	body := `{"profile_id":"` + testSubProfileID + `","free_plan_id":"` + testFreePlanID + `"}`

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			Subscribe(gomock.Any(), testSubProfileID, testFreePlanID, "", time.Time{}, time.Time{}).
			Return(entitlement.Subscription{ID: "sub-1", Status: entitlement.SubscriptionActive}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/subscriptions", strings.NewReader(body))

		handler.Subscribe(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "sub-1")
	})

	t.Run("overlap maps to 409", func(t *testing.T) {
		mockService.EXPECT().
			Subscribe(gomock.Any(), testSubProfileID, testFreePlanID, "", time.Time{}, time.Time{}).
			Return(entitlement.Subscription{}, entitlement.ErrOverlap)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/subscriptions", strings.NewReader(body))

		handler.Subscribe(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("no plan selected maps to 400", func(t *testing.T) {
		mockService.EXPECT().
			Subscribe(gomock.Any(), testSubProfileID, "", "", time.Time{}, time.Time{}).
			Return(entitlement.Subscription{}, entitlement.ErrNoPlanSelected)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/subscriptions",
			strings.NewReader(`{"profile_id":"`+testSubProfileID+`"}`))

		handler.Subscribe(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing profile id fails validation", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/subscriptions", strings.NewReader(`{}`))

		handler.Subscribe(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "validation_failed")
	})
}

func TestSubscriptionHandler_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockService := NewMockSubscriptionService(ctrl)
	handler := NewSubscriptionHandler(mockService)

	mockService.EXPECT().Cancel(gomock.Any(), "sub-1").Return(nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/subscriptions/sub-1/cancel", nil)
	r.SetPathValue("id", "sub-1")

	handler.Cancel(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubscriptionHandler_ListSubscriptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockService := NewMockSubscriptionService(ctrl)
	handler := NewSubscriptionHandler(mockService)

	mockService.EXPECT().ListSubscriptions(gomock.Any(), testSubProfileID).
		Return([]entitlement.Subscription{{ID: "sub-1"}}, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/profiles/"+testSubProfileID+"/subscriptions", nil)
	r.SetPathValue("id", testSubProfileID)

	handler.ListSubscriptions(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}
