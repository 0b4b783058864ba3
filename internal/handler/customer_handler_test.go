package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daontrade/exportdesk/internal/entity"
	"github.com/daontrade/exportdesk/internal/repository"
	"github.com/daontrade/exportdesk/internal/service"
	"github.com/daontrade/exportdesk/internal/testutil"
)

func setupCustomerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	customerRepo := repository.NewCustomerRepository(db)
	exhibitionRepo := repository.NewExhibitionRepository(db)
	svc := service.NewCustomerService(customerRepo, exhibitionRepo)
	h := NewCustomerHandler(svc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	customers := api.Group("/customers")
	customers.GET("", h.List)
	customers.POST("", h.Create)
	customers.GET("/countries", h.Countries)
	customers.GET("/:id", h.Get)
	customers.PUT("/:id", h.Update)
	customers.DELETE("/:id", h.Delete)

	return router, db
}

func TestCustomerCreateAndGet(t *testing.T) {
	router, _ := setupCustomerTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/customers", map[string]interface{}{
		"name":           "Hanoi Beauty Co",
		"contact_person": "Linh Tran",
		"email":          "linh@hanoibeauty.vn",
		"country":        "Vietnam",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	id := data["id"].(string)
	if data["acquisition_source"] != "ADMIN_MANUAL_ENTRY" {
		t.Errorf("Expected manual entry source, got %v", data["acquisition_source"])
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/customers/"+id, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp = testutil.ParseResponse(w)
	got := resp["data"].(map[string]interface{})
	customer := got["customer"].(map[string]interface{})
	if customer["name"] != "Hanoi Beauty Co" {
		t.Errorf("Expected name to round trip, got %v", customer["name"])
	}
	if got["source_label"] != "Manual entry" {
		t.Errorf("Expected source label, got %v", got["source_label"])
	}
}

func TestCustomerDuplicateEmailConflict(t *testing.T) {
	router, _ := setupCustomerTest(t)
	token := testutil.DefaultTestToken()

	body := map[string]interface{}{
		"name":  "First Co",
		"email": "dup@example.com",
	}
	w := testutil.DoRequest(router, "POST", "/api/v1/customers", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	body["name"] = "Second Co"
	w = testutil.DoRequest(router, "POST", "/api/v1/customers", body, token)
	if w.Code != http.StatusConflict {
		t.Fatalf("Expected 409 for duplicate email, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 40900 {
		t.Errorf("Expected business code 40900, got %v", resp["code"])
	}
}

func TestCustomerListFilters(t *testing.T) {
	router, db := setupCustomerTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedCustomer(t, db, "11111111-1111-1111-1111-111111111111", "Saigon Trade", "saigon@example.com")
	testutil.SeedCustomer(t, db, "22222222-2222-2222-2222-222222222222", "Bangkok Retail", "bangkok@example.com")
	db.Table("customers").
		Where("id = ?", "22222222-2222-2222-2222-222222222222").
		Update("country", "Thailand")

	w := testutil.DoRequest(router, "GET", "/api/v1/customers?country=Thailand", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("Expected 1 Thai customer, got %d", len(items))
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/customers?keyword=saigon", nil, token)
	resp = testutil.ParseResponse(w)
	data = resp["data"].(map[string]interface{})
	items = data["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("Expected keyword match, got %d items", len(items))
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/customers/countries", nil, token)
	resp = testutil.ParseResponse(w)
	data = resp["data"].(map[string]interface{})
	inUse := data["in_use"].([]interface{})
	if len(inUse) != 2 {
		t.Errorf("Expected 2 in-use countries, got %v", inUse)
	}
	if len(data["countries"].([]interface{})) != len(entity.AllCountries) {
		t.Errorf("Expected static country list in metadata")
	}
	if data["cc_email"].(string) != entity.DepartmentEmailCC {
		t.Errorf("Expected department CC address, got %v", data["cc_email"])
	}
}

func TestCustomerEUFilter(t *testing.T) {
	router, db := setupCustomerTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedCustomer(t, db, "44444444-4444-4444-4444-444444444444", "Paris Beauty", "paris@example.com")
	testutil.SeedCustomer(t, db, "55555555-5555-5555-5555-555555555555", "Berlin Cosmetics", "berlin@example.com")
	testutil.SeedCustomer(t, db, "66666666-6666-6666-6666-666666666666", "Hanoi Beauty", "hanoi@example.com")
	db.Table("customers").Where("id = ?", "44444444-4444-4444-4444-444444444444").Update("country", "France")
	db.Table("customers").Where("id = ?", "55555555-5555-5555-5555-555555555555").Update("country", "Germany")

	w := testutil.DoRequest(router, "GET", "/api/v1/customers?country=eu", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 2 {
		t.Fatalf("Expected 2 EU customers, got %d", len(items))
	}
	for _, it := range items {
		country := it.(map[string]interface{})["country"].(string)
		if !entity.IsEUCountry(country) {
			t.Errorf("Non-EU customer in filtered list: %v", country)
		}
	}
}

func TestCustomerUpdateAndDelete(t *testing.T) {
	router, db := setupCustomerTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedCustomer(t, db, "33333333-3333-3333-3333-333333333333", "Old Name", "old@example.com")

	w := testutil.DoRequest(router, "PUT", "/api/v1/customers/33333333-3333-3333-3333-333333333333", map[string]interface{}{
		"name":              "New Name",
		"has_business_card": true,
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["name"] != "New Name" {
		t.Errorf("Expected updated name, got %v", data["name"])
	}
	if data["has_business_card"] != true {
		t.Errorf("Expected business card flag set")
	}

	w = testutil.DoRequest(router, "DELETE", "/api/v1/customers/33333333-3333-3333-3333-333333333333", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/customers/33333333-3333-3333-3333-333333333333", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 after delete, got %d", w.Code)
	}
}

func TestCustomerRequiresAuth(t *testing.T) {
	router, _ := setupCustomerTest(t)

	w := testutil.DoRequest(router, "GET", "/api/v1/customers", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 without token, got %d", w.Code)
	}
}
