package service

import (
	"errors"
	"strings"

	"vznx/dao"
	"vznx/model"
	"vznx/response"
	"vznx/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterReq struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginReq struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Register handles POST /api/auth/register.
func Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		response.BadRequestError(c, "name must not be empty")
		return
	}

	var existing model.User
	err := dao.DB.WithContext(c).First(&existing, "name = ?", name).Error
	if err == nil {
		response.BadRequestError(c, "name already taken")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	hashed := string(hash)
	user := model.User{Name: name, Password: &hashed, Role: model.RoleUser}
	if err := dao.DB.WithContext(c).Create(&user).Error; err != nil {
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}
	response.Created(c, user)
}

// Login handles POST /api/auth/login and issues an access/refresh pair.
func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	var user model.User
	err := dao.DB.WithContext(c).First(&user, "name = ?", strings.TrimSpace(req.Name)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.UnauthorizedError(c, "invalid name or password", response.UserNotFound)
			return
		}
		response.Error(c, err.Error(), response.StoreFailure)
		return
	}
	if user.Password == nil ||
		bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(req.Password)) != nil {
		response.UnauthorizedError(c, "invalid name or password", response.UserNotFound)
		return
	}

	access, refresh, err := util.GetTokenMgr().CreateTokens(&util.JWTMessage{
		UserID:   user.ID,
		Username: user.Name,
		Role:     user.Role,
	})
	if err != nil {
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Success(c, TokenPair{AccessToken: access, RefreshToken: refresh})
}

// Refresh handles POST /api/auth/refresh: a valid refresh token buys a new
// pair.
func Refresh(c *gin.Context) {
	var req RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	msg, err := util.GetTokenMgr().CheckRefreshToken(req.RefreshToken)
	if err != nil {
		response.UnauthorizedError(c, "invalid or expired refresh token", response.TokenExpired)
		return
	}
	access, refresh, err := util.GetTokenMgr().CreateTokens(&msg)
	if err != nil {
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Success(c, TokenPair{AccessToken: access, RefreshToken: refresh})
}

// RegisterAuth wires the public auth routes.
func RegisterAuth(authGroup *gin.RouterGroup) {
	authGroup.POST("/register", Register)
	authGroup.POST("/login", Login)
	authGroup.POST("/refresh", Refresh)
}
