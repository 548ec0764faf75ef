package handles_test

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"minicatalog/config"
	"minicatalog/models"
	"minicatalog/routes"
	"minicatalog/storage"
)

// setupServer 组装一个带真实目录存储和独立临时数据库的测试引擎
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()

	store, err := storage.NewDirStore(config.AppConfig.UploadPath)
	if err != nil {
		t.Fatalf("failed to create file store: %v", err)
	}
	return setupServerWithStore(t, store)
}

func setupServerWithStore(t *testing.T, store storage.FileStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if config.AppConfig == nil {
		t.Fatal("call setupConfig first")
	}

	r := gin.New()
	r.Use(sessions.Sessions("catalog_session", cookie.NewStore([]byte(config.AppConfig.SecretKey))))
	r.LoadHTMLGlob(filepath.Join("..", "templates", "*.html"))
	routes.SetupRoutes(r, store)
	return r
}

// setupConfig 写入测试配置并初始化独立的临时数据库
func setupConfig(t *testing.T) {
	t.Helper()

	config.AppConfig = &config.Config{
		UploadPath:    t.TempDir(),
		MaxUploadSize: 500 * 1024 * 1024,
		AdminUsername: "admin",
		AdminPassword: "s3cret",
		SecretKey:     "test-secret",
		WebAppURL:     "http://localhost:8080",
	}
	if err := config.InitDatabase(filepath.Join(t.TempDir(), "test.db")); err != nil {
		t.Fatalf("failed to init database: %v", err)
	}
}

func doRequest(r *gin.Engine, req *http.Request, cookies []string) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.Header.Add("Cookie", c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// login 用配置的管理员凭据登录，返回后续请求要携带的会话Cookie
func login(t *testing.T, r *gin.Engine) []string {
	t.Helper()

	form := url.Values{}
	form.Set("username", config.AppConfig.AdminUsername)
	form.Set("password", config.AppConfig.AdminPassword)

	req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := doRequest(r, req, nil)

	if w.Code != http.StatusFound {
		t.Fatalf("login should redirect, got %d", w.Code)
	}
	cookies := w.Header().Values("Set-Cookie")
	if len(cookies) == 0 {
		t.Fatal("login should set a session cookie")
	}
	return cookies
}

func postForm(r *gin.Engine, path string, form url.Values, cookies []string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return doRequest(r, req, cookies)
}

// postUpload 构造并发送 multipart 上传请求；fileName 为空时不带文件字段
func postUpload(r *gin.Engine, fields map[string]string, fileName, content string, cookies []string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		w.WriteField(key, value)
	}
	if fileName != "" {
		fw, _ := w.CreateFormFile("video_file", fileName)
		io.Copy(fw, strings.NewReader(content))
	}
	w.Close()

	req := httptest.NewRequest("POST", "/admin/add_video", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return doRequest(r, req, cookies)
}

func createCategory(t *testing.T, name string) models.Category {
	t.Helper()

	category := models.Category{Name: name}
	if err := config.GetDB().Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return category
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()

	var count int64
	if err := config.GetDB().Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}

// failStore 保存必定失败的文件存储，用于验证"文件写失败不得产生记录"
type failStore struct{}

func (failStore) Save(name string, r io.Reader) (string, error) {
	return "", errors.New("disk full")
}
func (failStore) Exists(name string) bool  { return false }
func (failStore) Remove(name string) error { return nil }
