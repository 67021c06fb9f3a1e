package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"store_mgmt_v1_202510/internal/model"
	"store_mgmt_v1_202510/internal/repository"
	"store_mgmt_v1_202510/internal/service"
)

func setupAuthRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	ctrl := NewAuthController(service.NewAuthService(repository.NewUserRepository(db)))
	r.POST("/api/auth/login", ctrl.Login)
	return r
}

func performJSONRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mustCreateUser(t *testing.T, db *gorm.DB, username, password string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("生成密码散列失败: %v", err)
	}
	user := model.User{Username: username, Password: string(hashed), FullName: "Test User", CreatedAt: time.Now()}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("建用户失败: %v", err)
	}
}

func TestLogin(t *testing.T) {
	db := setupDebugTestDB(t)
	mustCreateUser(t, db, "admin", "123456")
	router := setupAuthRouter(db)

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
	}{
		{
			name:       "正确的账号密码",
			body:       map[string]string{"username": "admin", "password": "123456"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "密码错误",
			body:       map[string]string{"username": "admin", "password": "wrong"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "用户不存在",
			body:       map[string]string{"username": "nobody", "password": "123456"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "缺少密码",
			body:       map[string]string{"username": "admin"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSONRequest(router, "POST", "/api/auth/login", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestLogin_ReturnsToken(t *testing.T) {
	db := setupDebugTestDB(t)
	mustCreateUser(t, db, "cashier1", "123456")
	router := setupAuthRouter(db)

	w := performJSONRequest(router, "POST", "/api/auth/login",
		map[string]string{"username": "cashier1", "password": "123456"})
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("data 不是对象: %v", body["data"])
	}
	assert.NotEmpty(t, data["access_token"])

	user, ok := data["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("user 不是对象: %v", data["user"])
	}
	assert.Equal(t, "cashier1", user["username"])
	// 密码散列不允许出现在响应里
	_, leaked := user["password"]
	assert.False(t, leaked)
}
