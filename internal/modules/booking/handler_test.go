package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// Registers the pure-Go "sqlite" driver named below.
	_ "modernc.org/sqlite"

	"taartu/internal/domain"
	"taartu/internal/modules/business"
	"taartu/internal/pricing"
	"taartu/internal/repository"
)

const testCustomerID int64 = 42

type routerFixture struct {
	router        *gin.Engine
	eligibleBizID int64
	subscriberID  int64
	serviceID     int64
}

func setupBookingRouter(t *testing.T) *routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:booking_handler_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := repository.Migrate(db); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	ctx := context.Background()
	businesses := repository.NewBusinessRepository(db)
	services := repository.NewServiceRepository(db)
	bookings := repository.NewBookingRepository(db)

	eligible := domain.Business{
		UserID:                   7,
		Name:                     "Glow Salon",
		Status:                   domain.BusinessActive,
		PlatformFeePercentage:    decimal.NewFromFloat(12.50),
		CommissionOnlyModel:      true,
		SubscriptionModelEnabled: false,
	}
	if err := businesses.Create(ctx, &eligible); err != nil {
		t.Fatalf("seed business: %v", err)
	}

	subscriber := domain.Business{
		UserID:                   8,
		Name:                     "Legacy Spa",
		Status:                   domain.BusinessActive,
		PlatformFeePercentage:    decimal.NewFromFloat(10.00),
		CommissionOnlyModel:      false,
		SubscriptionModelEnabled: true,
	}
	if err := businesses.Create(ctx, &subscriber); err != nil {
		t.Fatalf("seed subscriber business: %v", err)
	}

	svc := domain.Service{
		BusinessID:      eligible.ID,
		Name:            "Haircut",
		Price:           decimal.NewFromFloat(1000.00),
		DurationMinutes: 45,
	}
	if err := services.Create(ctx, &svc); err != nil {
		t.Fatalf("seed service: %v", err)
	}

	bookingSvc := NewService(
		bookings,
		services,
		businesses,
		business.NewService(businesses, nil),
		pricing.NoOffers{},
		pricing.ZeroTax{},
		nil,
	)
	bookingSvc.now = func() time.Time {
		return time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if raw := c.GetHeader("X-Test-User-ID"); raw != "" {
			id, _ := strconv.ParseInt(raw, 10, 64)
			c.Set("user_id", id)
		}
		c.Next()
	})

	v1 := r.Group("/api/v1")
	NewHandler(bookingSvc).RegisterRoutes(v1)

	return &routerFixture{
		router:        r,
		eligibleBizID: eligible.ID,
		subscriberID:  subscriber.ID,
		serviceID:     svc.ID,
	}
}

func doJSONRequest(r http.Handler, method, path string, body any, userID int64) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set("X-Test-User-ID", strconv.FormatInt(userID, 10))
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var env struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid response body: %v body=%s", err, rr.Body.String())
	}
	if !env.Success {
		t.Fatalf("expected success envelope, got body=%s", rr.Body.String())
	}
	return env.Data
}

func breakdownField(t *testing.T, data map[string]any) map[string]any {
	t.Helper()
	bd, ok := data["price_breakdown"].(map[string]any)
	if !ok {
		t.Fatalf("missing price_breakdown in %v", data)
	}
	return bd
}

func TestCalculatePriceEndpoint(t *testing.T) {
	f := setupBookingRouter(t)

	rr := doJSONRequest(f.router, http.MethodPost, "/api/v1/bookings/calculate-price", map[string]any{
		"service_id":  f.serviceID,
		"business_id": f.eligibleBizID,
	}, testCustomerID)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	data := decodeEnvelope(t, rr)
	bd := breakdownField(t, data)
	if bd["service_price"] != "1000.00" {
		t.Fatalf("expected service_price 1000.00, got %v", bd["service_price"])
	}
	if bd["taartu_commission"] != "125.00" {
		t.Fatalf("expected taartu_commission 125.00, got %v", bd["taartu_commission"])
	}
	if bd["grand_total"] != "1125.00" {
		t.Fatalf("expected grand_total 1125.00, got %v", bd["grand_total"])
	}
	if data["business_model"] != "commission_only" {
		t.Fatalf("expected commission_only, got %v", data["business_model"])
	}
	if data["commission_rate"] != "12.50" {
		t.Fatalf("expected commission_rate 12.50, got %v", data["commission_rate"])
	}
}

func TestCalculatePriceEndpoint_UnknownService(t *testing.T) {
	f := setupBookingRouter(t)

	rr := doJSONRequest(f.router, http.MethodPost, "/api/v1/bookings/calculate-price", map[string]any{
		"service_id":  int64(9999),
		"business_id": f.eligibleBizID,
	}, testCustomerID)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateBookingEndpoint_FullFlow(t *testing.T) {
	f := setupBookingRouter(t)

	rr := doJSONRequest(f.router, http.MethodPost, "/api/v1/bookings", map[string]any{
		"service_id":     f.serviceID,
		"business_id":    f.eligibleBizID,
		"scheduled_date": "2026-06-20",
		"scheduled_time": "14:30",
		"quantity":       2,
	}, testCustomerID)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	data := decodeEnvelope(t, rr)
	bd := breakdownField(t, data)
	if bd["service_price"] != "2000.00" {
		t.Fatalf("expected service_price 2000.00, got %v", bd["service_price"])
	}
	if bd["taartu_commission"] != "250.00" {
		t.Fatalf("expected taartu_commission 250.00, got %v", bd["taartu_commission"])
	}
	if bd["grand_total"] != "2250.00" {
		t.Fatalf("expected grand_total 2250.00, got %v", bd["grand_total"])
	}

	bookingID := int64(data["booking_id"].(float64))
	if bookingID == 0 {
		t.Fatal("expected a persisted booking id")
	}

	// Summary is visible to the booking's customer with the frozen breakdown.
	rr = doJSONRequest(f.router, http.MethodGet, fmt.Sprintf("/api/v1/bookings/%d/summary", bookingID), nil, testCustomerID)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for summary, got %d body=%s", rr.Code, rr.Body.String())
	}
	data = decodeEnvelope(t, rr)
	bd = breakdownField(t, data)
	if bd["grand_total"] != "2250.00" {
		t.Fatalf("summary breakdown changed: got %v", bd["grand_total"])
	}
	bk, ok := data["booking"].(map[string]any)
	if !ok {
		t.Fatalf("missing booking in %v", data)
	}
	if bk["status"] != "pending" || bk["payment_status"] != "pending" {
		t.Fatalf("expected pending/pending, got %v/%v", bk["status"], bk["payment_status"])
	}

	// Another customer gets not-found, never a breakdown.
	rr = doJSONRequest(f.router, http.MethodGet, fmt.Sprintf("/api/v1/bookings/%d/summary", bookingID), nil, 99)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for other customer, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateBookingEndpoint_SubscriptionBusinessRejected(t *testing.T) {
	f := setupBookingRouter(t)

	rr := doJSONRequest(f.router, http.MethodPost, "/api/v1/bookings", map[string]any{
		"service_id":     f.serviceID,
		"business_id":    f.subscriberID,
		"scheduled_date": "2026-06-20",
		"scheduled_time": "14:30",
	}, testCustomerID)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}

	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if env.Success {
		t.Fatal("expected failure envelope")
	}
	if env.Message != "Business must use commission-only model" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestCreateBookingEndpoint_PastSchedule(t *testing.T) {
	f := setupBookingRouter(t)

	rr := doJSONRequest(f.router, http.MethodPost, "/api/v1/bookings", map[string]any{
		"service_id":     f.serviceID,
		"business_id":    f.eligibleBizID,
		"scheduled_date": "2026-06-10",
		"scheduled_time": "09:00",
	}, testCustomerID)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for past schedule, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateBookingEndpoint_MissingFields(t *testing.T) {
	f := setupBookingRouter(t)

	rr := doJSONRequest(f.router, http.MethodPost, "/api/v1/bookings", map[string]any{
		"service_id": f.serviceID,
	}, testCustomerID)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for missing fields, got %d body=%s", rr.Code, rr.Body.String())
	}
}
