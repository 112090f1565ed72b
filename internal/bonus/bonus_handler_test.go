package bonus_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/bonus"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	createFn      func(ctx context.Context, req bonus.CreateBonusRequest) (bonus.BonusResponse, error)
	listByShiftFn func(ctx context.Context, shiftID string) ([]bonus.BonusResponse, error)
	listInRangeFn func(ctx context.Context, from, to string) ([]bonus.BonusResponse, error)
	deleteFn      func(ctx context.Context, id string) error
}

func (f *fakeService) Create(ctx context.Context, req bonus.CreateBonusRequest) (bonus.BonusResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeService) ListByShift(ctx context.Context, shiftID string) ([]bonus.BonusResponse, error) {
	return f.listByShiftFn(ctx, shiftID)
}
func (f *fakeService) ListInRange(ctx context.Context, from, to string) ([]bonus.BonusResponse, error) {
	return f.listInRangeFn(ctx, from, to)
}
func (f *fakeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestHandler_CreateAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	shiftID := uuid.New().String()

	svc := &fakeService{
		createFn: func(ctx context.Context, req bonus.CreateBonusRequest) (bonus.BonusResponse, error) {
			assert.Equal(t, shiftID, req.ShiftID)
			assert.Equal(t, bonus.TypeHookah, req.BonusType)
			return bonus.BonusResponse{ID: uuid.New().String(), ShiftID: req.ShiftID}, nil
		},
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}

	h := bonus.NewHandler(svc)

	body := `{"shift_id":"` + shiftID + `","bonus_type":"hookah","amount":"250"}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/bonuses", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), shiftID)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
	c2.Request = httptest.NewRequest(http.MethodDelete, "/bonuses/x", nil)
	h.Delete(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "\"deleted\":true")
}

func TestHandler_ListInRange_RequiresWindow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		listInRangeFn: func(ctx context.Context, from, to string) ([]bonus.BonusResponse, error) {
			t.Fatal("service should not be called without a window")
			return nil, nil
		},
	}
	h := bonus.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/bonuses?from=2025-04-01", nil)
	h.ListInRange(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}
