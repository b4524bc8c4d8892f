package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/zahraaAed/Douluxme-Backend/auth"
	"github.com/zahraaAed/Douluxme-Backend/config"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Named shared-cache memory DB so every pooled connection sees the
	// same database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Nut{},
		&models.Chocolate{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.Order{},
		&models.OrderDetail{},
		&models.Feedback{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTestRouter(t *testing.T, legacyOwnerCheck bool) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.App = &config.Config{
		Port:                  "0",
		JWTSecret:             "test-secret",
		UploadDir:             t.TempDir(),
		LegacyOrderOwnerCheck: legacyOwnerCheck,
	}
	if err := auth.InitJWTSecret(config.App.JWTSecret); err != nil {
		t.Fatalf("init jwt secret: %v", err)
	}

	db := newTestDB(t)
	r := gin.New()
	SetupRoutes(r, db)
	return r, db
}

func createUser(t *testing.T, db *gorm.DB, email string, role models.Role) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Email: email, Password: string(hashed), Name: "Test User", Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return user, token
}

func seedProductRefs(t *testing.T, db *gorm.DB) (models.Nut, models.Chocolate, models.Category) {
	t.Helper()

	nut := models.Nut{Variety: "hazelnut", Price: 2}
	chocolate := models.Chocolate{Type: "dark", Price: 3}
	category := models.Category{Name: "boxes", Image: "boxes.png"}
	if err := db.Create(&nut).Error; err != nil {
		t.Fatalf("create nut: %v", err)
	}
	if err := db.Create(&chocolate).Error; err != nil {
		t.Fatalf("create chocolate: %v", err)
	}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return nut, chocolate, category
}

func seedProduct(t *testing.T, db *gorm.DB, owner models.User) models.Product {
	t.Helper()

	nut, chocolate, category := seedProductRefs(t, db)
	product := models.Product{
		Name:        "Hazelnut Dark",
		NutID:       nut.ID,
		ChocolateID: chocolate.ID,
		CategoryID:  category.ID,
		UserID:      owner.ID,
		Price:       decimal.NewFromInt(10),
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doForm(t *testing.T, r *gin.Engine, method, path, token string, fields map[string]string, fileField, fileName string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write form field %s: %v", k, err)
		}
	}
	if fileField != "" {
		part, err := mw.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte("fake image bytes")); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := newTestRouter(t, true)

	body := gin.H{"email": "jad@example.com", "password": "secret123", "name": "Jad"}
	if w := doJSON(t, r, http.MethodPost, "/api/users/register", "", body); w.Code != http.StatusCreated {
		t.Fatalf("first register = %d, body %s", w.Code, w.Body.String())
	}
	if w := doJSON(t, r, http.MethodPost, "/api/users/register", "", body); w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register = %d, want 400", w.Code)
	}
}

func TestLoginDoesNotLeakAccountExistence(t *testing.T) {
	r, db := newTestRouter(t, true)
	createUser(t, db, "lina@example.com", models.RoleCustomer)

	wrongPassword := doJSON(t, r, http.MethodPost, "/api/users/login", "",
		gin.H{"email": "lina@example.com", "password": "nope"})
	unknownEmail := doJSON(t, r, http.MethodPost, "/api/users/login", "",
		gin.H{"email": "ghost@example.com", "password": "nope"})

	if wrongPassword.Code != http.StatusUnauthorized || unknownEmail.Code != http.StatusUnauthorized {
		t.Fatalf("login codes = %d / %d, want 401 / 401", wrongPassword.Code, unknownEmail.Code)
	}
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Errorf("login failure bodies differ: %s vs %s", wrongPassword.Body.String(), unknownEmail.Body.String())
	}
}

func TestLoginSetsCookieAndReturnsToken(t *testing.T) {
	r, db := newTestRouter(t, true)
	createUser(t, db, "lina@example.com", models.RoleCustomer)

	w := doJSON(t, r, http.MethodPost, "/api/users/login", "",
		gin.H{"email": "lina@example.com", "password": "secret123"})
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d, body %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp["token"] == "" || resp["token"] == nil {
		t.Error("login response missing token")
	}

	cookieSet := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" && c.Value != "" && c.HttpOnly {
			cookieSet = true
		}
	}
	if !cookieSet {
		t.Error("login did not set an http-only token cookie")
	}
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	r, db := newTestRouter(t, true)
	_, customerToken := createUser(t, db, "lina@example.com", models.RoleCustomer)
	_, adminToken := createUser(t, db, "admin@example.com", models.RoleAdmin)

	if w := doJSON(t, r, http.MethodGet, "/api/users/get", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("no token = %d, want 401", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/users/get", customerToken, nil); w.Code != http.StatusForbidden {
		t.Errorf("customer token = %d, want 403", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/users/get", adminToken, nil); w.Code != http.StatusOK {
		t.Errorf("admin token = %d, want 200", w.Code)
	}
}

func TestUpdateUserDuplicateEmail(t *testing.T) {
	r, db := newTestRouter(t, true)
	createUser(t, db, "taken@example.com", models.RoleCustomer)
	target, _ := createUser(t, db, "lina@example.com", models.RoleCustomer)
	_, adminToken := createUser(t, db, "admin@example.com", models.RoleAdmin)

	path := fmt.Sprintf("/api/users/update/%d", target.ID)
	w := doJSON(t, r, http.MethodPatch, path, adminToken, gin.H{"email": "taken@example.com"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("update to taken email = %d, want 400", w.Code)
	}

	var kept models.User
	if err := db.First(&kept, target.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if kept.Email != "lina@example.com" {
		t.Errorf("email changed despite conflict: %s", kept.Email)
	}

	// A user may keep their own email through an update.
	if w := doJSON(t, r, http.MethodPatch, path, adminToken, gin.H{"email": "lina@example.com", "name": "Lina"}); w.Code != http.StatusOK {
		t.Errorf("update keeping own email = %d, want 200", w.Code)
	}
}

func TestProductCreatePricing(t *testing.T) {
	r, db := newTestRouter(t, true)
	_, adminToken := createUser(t, db, "admin@example.com", models.RoleAdmin)
	nut, chocolate, category := seedProductRefs(t, db)

	fields := map[string]string{
		"name":         "Hazelnut Dark Box",
		"price":        "10",
		"nut_id":       fmt.Sprint(nut.ID),
		"chocolate_id": fmt.Sprint(chocolate.ID),
		"category_id":  fmt.Sprint(category.ID),
		"box_size":     "12",
	}
	w := doForm(t, r, http.MethodPost, "/api/products/create", adminToken, fields, "", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("create product = %d, body %s", w.Code, w.Body.String())
	}

	var product models.Product
	if err := db.First(&product, "name = ?", "Hazelnut Dark Box").Error; err != nil {
		t.Fatalf("product not persisted: %v", err)
	}
	if !product.Price.Equal(decimal.NewFromInt(120)) {
		t.Errorf("stored price = %s, want 120", product.Price)
	}

	fields["name"] = "Bad Box"
	fields["box_size"] = "5"
	if w := doForm(t, r, http.MethodPost, "/api/products/create", adminToken, fields, "", ""); w.Code != http.StatusBadRequest {
		t.Errorf("box size 5 = %d, want 400", w.Code)
	}
}

func TestProductUpdateBoxSizeRequiresPrice(t *testing.T) {
	r, db := newTestRouter(t, true)
	admin, adminToken := createUser(t, db, "admin@example.com", models.RoleAdmin)
	nut, chocolate, category := seedProductRefs(t, db)

	six := 6
	product := models.Product{
		Name:        "Hazelnut Dark Box",
		NutID:       nut.ID,
		ChocolateID: chocolate.ID,
		CategoryID:  category.ID,
		UserID:      admin.ID,
		BoxSize:     &six,
		Price:       decimal.NewFromInt(60),
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}

	path := fmt.Sprintf("/api/products/update/%d", product.ID)

	// A box size change alone has no unit price to recompute from.
	w := doForm(t, r, http.MethodPut, path, adminToken, map[string]string{"box_size": "12"}, "", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("box_size-only update = %d, want 400", w.Code)
	}

	var kept models.Product
	if err := db.First(&kept, product.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if kept.BoxSize == nil || *kept.BoxSize != 6 || !kept.Price.Equal(decimal.NewFromInt(60)) {
		t.Errorf("rejected update mutated the row: boxSize=%v price=%s", kept.BoxSize, kept.Price)
	}

	// Supplying the unit price alongside the box size recomputes the total.
	w = doForm(t, r, http.MethodPut, path, adminToken, map[string]string{"price": "10", "box_size": "12"}, "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("price + box_size update = %d, body %s", w.Code, w.Body.String())
	}
	if err := db.First(&kept, product.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if kept.BoxSize == nil || *kept.BoxSize != 12 || !kept.Price.Equal(decimal.NewFromInt(120)) {
		t.Errorf("recompute wrong: boxSize=%v price=%s, want 12 / 120", kept.BoxSize, kept.Price)
	}
}

func TestProductCreateMissingReference(t *testing.T) {
	r, db := newTestRouter(t, true)
	_, adminToken := createUser(t, db, "admin@example.com", models.RoleAdmin)
	_, chocolate, category := seedProductRefs(t, db)

	fields := map[string]string{
		"name":         "Orphan",
		"price":        "10",
		"nut_id":       "999",
		"chocolate_id": fmt.Sprint(chocolate.ID),
		"category_id":  fmt.Sprint(category.ID),
	}
	if w := doForm(t, r, http.MethodPost, "/api/products/create", adminToken, fields, "", ""); w.Code != http.StatusNotFound {
		t.Fatalf("missing nut = %d, want 404", w.Code)
	}

	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count != 0 {
		t.Errorf("product row inserted despite missing reference, count = %d", count)
	}
}

func TestNutDeleteBlockedWhenReferenced(t *testing.T) {
	r, db := newTestRouter(t, true)
	admin, adminToken := createUser(t, db, "admin@example.com", models.RoleAdmin)
	product := seedProduct(t, db, admin)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/nuts/delete/%d", product.NutID), adminToken, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("delete referenced nut = %d, want 400", w.Code)
	}

	if err := db.First(&models.Nut{}, product.NutID).Error; err != nil {
		t.Errorf("nut removed despite being referenced: %v", err)
	}
	if err := db.First(&models.Product{}, product.ID).Error; err != nil {
		t.Errorf("product removed by blocked nut delete: %v", err)
	}
}

func TestChocolateDeleteCascadesProducts(t *testing.T) {
	r, db := newTestRouter(t, true)
	admin, adminToken := createUser(t, db, "admin@example.com", models.RoleAdmin)
	product := seedProduct(t, db, admin)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/chocolates/delete/%d", product.ChocolateID), adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete chocolate = %d, body %s", w.Code, w.Body.String())
	}

	if err := db.First(&models.Chocolate{}, product.ChocolateID).Error; err == nil {
		t.Error("chocolate still present after delete")
	}
	if err := db.First(&models.Product{}, product.ID).Error; err == nil {
		t.Error("product still present after chocolate cascade delete")
	}
}

func TestCategoryCreateRequiresImage(t *testing.T) {
	r, db := newTestRouter(t, true)
	_, adminToken := createUser(t, db, "admin@example.com", models.RoleAdmin)

	noImage := doForm(t, r, http.MethodPost, "/api/categories/create", adminToken,
		map[string]string{"name": "gifts"}, "", "")
	if noImage.Code != http.StatusBadRequest {
		t.Errorf("create without image = %d, want 400", noImage.Code)
	}

	withImage := doForm(t, r, http.MethodPost, "/api/categories/create", adminToken,
		map[string]string{"name": "gifts"}, "image", "gifts.png")
	if withImage.Code != http.StatusCreated {
		t.Errorf("create with image = %d, body %s", withImage.Code, withImage.Body.String())
	}
}

func TestCartScopedToCredential(t *testing.T) {
	r, db := newTestRouter(t, true)
	userA, tokenA := createUser(t, db, "a@example.com", models.RoleCustomer)
	userB, _ := createUser(t, db, "b@example.com", models.RoleCustomer)
	product := seedProduct(t, db, userA)

	for _, u := range []models.User{userA, userB} {
		cart := models.Cart{UserID: u.ID, ProductID: product.ID, Quantity: 1}
		if err := db.Create(&cart).Error; err != nil {
			t.Fatalf("seed cart: %v", err)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/carts/get", tokenA, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get carts = %d, body %s", w.Code, w.Body.String())
	}

	var carts []models.Cart
	if err := json.Unmarshal(w.Body.Bytes(), &carts); err != nil {
		t.Fatalf("decode carts: %v", err)
	}
	if len(carts) != 1 {
		t.Fatalf("got %d cart rows, want 1", len(carts))
	}
	if carts[0].UserID != userA.ID {
		t.Errorf("cart row belongs to user %d, want %d", carts[0].UserID, userA.ID)
	}
}

func TestOrderCreateCustomerOnly(t *testing.T) {
	r, db := newTestRouter(t, true)
	customer, customerToken := createUser(t, db, "lina@example.com", models.RoleCustomer)
	_, adminToken := createUser(t, db, "admin@example.com", models.RoleAdmin)

	body := gin.H{"subtotalPrice": 100.0, "price": 110.0, "status": "pending", "paymentMethod": "cash"}

	if w := doJSON(t, r, http.MethodPost, "/api/orders/create", adminToken, body); w.Code != http.StatusForbidden {
		t.Errorf("admin create order = %d, want 403", w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/api/orders/create", customerToken, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("customer create order = %d, body %s", w.Code, w.Body.String())
	}

	var order models.Order
	if err := db.First(&order).Error; err != nil {
		t.Fatalf("order not persisted: %v", err)
	}
	if order.UserID != customer.ID {
		t.Errorf("order user = %d, want the caller %d", order.UserID, customer.ID)
	}

	bad := gin.H{"subtotalPrice": 100.0, "price": 110.0, "status": "shipped", "paymentMethod": "cash"}
	if w := doJSON(t, r, http.MethodPost, "/api/orders/create", customerToken, bad); w.Code != http.StatusBadRequest {
		t.Errorf("invalid status = %d, want 400", w.Code)
	}
}

func TestOrdersByUserLegacyOwnerCheck(t *testing.T) {
	r, db := newTestRouter(t, true)
	userA, _ := createUser(t, db, "a@example.com", models.RoleCustomer)
	_, tokenB := createUser(t, db, "b@example.com", models.RoleCustomer)
	_, adminToken := createUser(t, db, "admin@example.com", models.RoleAdmin)

	order := models.Order{UserID: userA.ID, SubtotalPrice: 50, Price: 55,
		Status: models.OrderStatusPending, PaymentMethod: models.PaymentMethodCash}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	path := fmt.Sprintf("/api/orders/user/%d", userA.ID)
	if w := doJSON(t, r, http.MethodGet, path, tokenB, nil); w.Code != http.StatusOK {
		t.Errorf("legacy: other customer = %d, want 200", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, path, adminToken, nil); w.Code != http.StatusForbidden {
		t.Errorf("legacy: admin for other user = %d, want 403", w.Code)
	}
}

func TestOrdersByUserCorrectedOwnerCheck(t *testing.T) {
	r, db := newTestRouter(t, false)
	userA, tokenA := createUser(t, db, "a@example.com", models.RoleCustomer)
	_, tokenB := createUser(t, db, "b@example.com", models.RoleCustomer)
	_, adminToken := createUser(t, db, "admin@example.com", models.RoleAdmin)

	order := models.Order{UserID: userA.ID, SubtotalPrice: 50, Price: 55,
		Status: models.OrderStatusPending, PaymentMethod: models.PaymentMethodCash}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	path := fmt.Sprintf("/api/orders/user/%d", userA.ID)
	if w := doJSON(t, r, http.MethodGet, path, tokenA, nil); w.Code != http.StatusOK {
		t.Errorf("corrected: owner = %d, want 200", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, path, tokenB, nil); w.Code != http.StatusForbidden {
		t.Errorf("corrected: other customer = %d, want 403", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, path, adminToken, nil); w.Code != http.StatusOK {
		t.Errorf("corrected: admin = %d, want 200", w.Code)
	}
}

func TestOrderStatusFilterRejectsUnknownEnum(t *testing.T) {
	r, db := newTestRouter(t, true)
	_, adminToken := createUser(t, db, "admin@example.com", models.RoleAdmin)

	if w := doJSON(t, r, http.MethodGet, "/api/orders/status/shipped", adminToken, nil); w.Code != http.StatusBadRequest {
		t.Errorf("unknown status = %d, want 400", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/orders/paymentMethod/card", adminToken, nil); w.Code != http.StatusBadRequest {
		t.Errorf("unknown payment method = %d, want 400", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/orders/status/pending", adminToken, nil); w.Code != http.StatusOK {
		t.Errorf("valid status filter = %d, want 200", w.Code)
	}
}

func TestOrderDetailsByOrder(t *testing.T) {
	r, db := newTestRouter(t, true)
	customer, _ := createUser(t, db, "lina@example.com", models.RoleCustomer)
	_, adminToken := createUser(t, db, "admin@example.com", models.RoleAdmin)
	product := seedProduct(t, db, customer)

	order := models.Order{UserID: customer.ID, SubtotalPrice: 10, Price: 10,
		Status: models.OrderStatusPending, PaymentMethod: models.PaymentMethodCash}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	detail := models.OrderDetail{OrderID: order.ID, ProductID: product.ID, Quantity: 2, Price: 20}
	if err := db.Create(&detail).Error; err != nil {
		t.Fatalf("seed order detail: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/orderDetails/order/%d", order.ID), adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("details by order = %d, body %s", w.Code, w.Body.String())
	}
	var details []models.OrderDetail
	if err := json.Unmarshal(w.Body.Bytes(), &details); err != nil {
		t.Fatalf("decode details: %v", err)
	}
	if len(details) != 1 || details[0].ProductID != product.ID {
		t.Errorf("unexpected details payload: %s", w.Body.String())
	}

	if w := doJSON(t, r, http.MethodGet, "/api/orderDetails/order/999", adminToken, nil); w.Code != http.StatusNotFound {
		t.Errorf("details for empty order = %d, want 404", w.Code)
	}
}

func TestOrderDetailRoutesAdminOnly(t *testing.T) {
	r, db := newTestRouter(t, true)
	customer, customerToken := createUser(t, db, "lina@example.com", models.RoleCustomer)
	product := seedProduct(t, db, customer)

	order := models.Order{UserID: customer.ID, SubtotalPrice: 10, Price: 10,
		Status: models.OrderStatusPending, PaymentMethod: models.PaymentMethodCash}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	createBody := gin.H{"orderId": order.ID, "productId": product.ID, "quantity": 1, "price": 10.0}
	if w := doJSON(t, r, http.MethodPost, "/api/orderDetails/create", customerToken, createBody); w.Code != http.StatusForbidden {
		t.Errorf("customer create detail = %d, want 403", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/orderDetails/order/%d", order.ID), customerToken, nil); w.Code != http.StatusForbidden {
		t.Errorf("customer details by order = %d, want 403", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/orderDetails/get", customerToken, nil); w.Code != http.StatusForbidden {
		t.Errorf("customer list details = %d, want 403", w.Code)
	}

	var count int64
	db.Model(&models.OrderDetail{}).Count(&count)
	if count != 0 {
		t.Errorf("detail row inserted by forbidden request, count = %d", count)
	}
}

func TestFeedbackOncePerUserPerProduct(t *testing.T) {
	r, db := newTestRouter(t, true)
	customer, customerToken := createUser(t, db, "lina@example.com", models.RoleCustomer)
	product := seedProduct(t, db, customer)

	body := gin.H{"comment": "Melts perfectly", "ProductId": product.ID}
	first := doJSON(t, r, http.MethodPost, "/api/feedbacks/create", customerToken, body)
	if first.Code != http.StatusCreated {
		t.Fatalf("first feedback = %d, body %s", first.Code, first.Body.String())
	}

	body["comment"] = "Changed my mind"
	if w := doJSON(t, r, http.MethodPost, "/api/feedbacks/create", customerToken, body); w.Code != http.StatusBadRequest {
		t.Errorf("duplicate feedback = %d, want 400", w.Code)
	}

	// A different user may repeat the exact same comment text.
	_, tokenB := createUser(t, db, "b@example.com", models.RoleCustomer)
	if w := doJSON(t, r, http.MethodPost, "/api/feedbacks/create", tokenB,
		gin.H{"comment": "Melts perfectly", "ProductId": product.ID}); w.Code != http.StatusCreated {
		t.Errorf("same comment from another user = %d, want 201", w.Code)
	}

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/feedbacks/product/%d", product.ID), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("feedbacks by product = %d", w.Code)
	}
	var feedbacks []models.Feedback
	if err := json.Unmarshal(w.Body.Bytes(), &feedbacks); err != nil {
		t.Fatalf("decode feedbacks: %v", err)
	}
	if len(feedbacks) != 2 {
		t.Errorf("got %d feedbacks, want 2", len(feedbacks))
	}
}
