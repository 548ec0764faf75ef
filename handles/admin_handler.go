package handles

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"minicatalog/config"
	"minicatalog/middleware"
	"minicatalog/models"
	"minicatalog/storage"
)

// AdminHandler 后台管理处理器
type AdminHandler struct {
	store storage.FileStore
}

// NewAdminHandler 创建后台管理处理器
func NewAdminHandler(store storage.FileStore) *AdminHandler {
	return &AdminHandler{store: store}
}

// ShowLogin 登录页
func (h *AdminHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login 登录：校验通过后在会话中写入登录标记
func (h *AdminHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if !checkAuth(username, password) {
		// 不区分用户名错还是密码错
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Error": "用户名或密码错误",
		})
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionKeyLoggedIn, true)
	if err := session.Save(); err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Error": "登录失败，请重试",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// Logout 退出登录
func (h *AdminHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(middleware.SessionKeyLoggedIn)
	session.Save()

	c.Redirect(http.StatusFound, "/admin/login")
}

// Dashboard 后台首页：分类按名称升序，视频按ID降序
func (h *AdminHandler) Dashboard(c *gin.Context) {
	db := config.GetDB()

	var categories []models.Category
	db.Order("name ASC").Find(&categories)

	var videos []models.VideoContent
	db.Preload("Category").Order("id DESC").Find(&videos)

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Categories": categories,
		"Videos":     videos,
	})
}

// AddCategory 创建分类
// 名称为空或已存在时静默返回后台首页，不报错也不产生重复记录
func (h *AdminHandler) AddCategory(c *gin.Context) {
	db := config.GetDB()

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	var existing models.Category
	err := db.Where("name = ?", name).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 并发下先查后插可能撞上唯一索引，撞上同样按"已存在"处理
		db.Create(&models.Category{Name: name})
	}

	c.Redirect(http.StatusFound, "/admin")
}

// AddVideo 上传视频
// 校验失败一律静默返回后台首页，保证状态不变；
// 文件写入成功但建记录失败时回删文件，避免孤儿
func (h *AdminHandler) AddVideo(c *gin.Context) {
	db := config.GetDB()

	title := strings.TrimSpace(c.PostForm("title"))
	analysis := strings.TrimSpace(c.PostForm("analysis"))

	categoryID, err := strconv.Atoi(c.PostForm("category_id"))
	if title == "" || err != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	var category models.Category
	if err := db.First(&category, categoryID).Error; err != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	fileHeader, err := c.FormFile("video_file")
	if err != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	defer src.Close()

	// 先写文件再写记录：文件失败时不得出现记录
	filename, err := h.store.Save(fileHeader.Filename, src)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	video := models.VideoContent{
		Title:         title,
		VideoFilename: filename,
		Analysis:      analysis,
		CategoryID:    category.ID,
	}
	if err := db.Create(&video).Error; err != nil {
		h.store.Remove(filename)
	}

	c.Redirect(http.StatusFound, "/admin")
}

// checkAuth 管理员凭据校验：与配置值做精确比较（常数时间）
func checkAuth(username, password string) bool {
	cfg := config.AppConfig
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.AdminUsername))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AdminPassword))
	return userOK&passOK == 1
}
