package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Used by swagger to generate documentation
type Response[T any] struct {
	Code ErrorCode `json:"code"`
	Data T         `json:"data"`
	Msg  string    `json:"msg"`
}

// wrapResponse wraps the response data and sends it back to the client.
// It takes in a Gin context, an HTTP status code, a message string, data any,
// and an ErrorCode, and serializes everything into the standard envelope.
func wrapResponse(c *gin.Context, httpCode int, msg string, data any, code ErrorCode) {
	c.JSON(httpCode, gin.H{
		"code": code,
		"data": data,
		"msg":  msg,
	})
}

// Success sends a successful response to the client with the provided data.
func Success(c *gin.Context, data any) {
	wrapResponse(c, http.StatusOK, "", data, OK)
}

// Created sends a 201 response after an entity has been persisted.
func Created(c *gin.Context, data any) {
	wrapResponse(c, http.StatusCreated, "", data, OK)
}

// Error sends an error response to the client with the specified message and error code.
// Used for unexpected persistence failures.
func Error(c *gin.Context, msg string, errorCode ErrorCode) {
	wrapResponse(c, http.StatusInternalServerError, msg, nil, errorCode)
}

// HTTPError sends an HTTP error response with the specified HTTP code, error message, and error code.
func HTTPError(c *gin.Context, httpCode int, msg string, errorCode ErrorCode) {
	wrapResponse(c, httpCode, msg, nil, errorCode)
}

// 用于 Gin ShouldBindJSON、ShouldBindUri 等绑定参数失败时返回错误
func BadRequestError(c *gin.Context, msg string) {
	HTTPError(c, http.StatusBadRequest, msg, InvalidRequest)
}

// NotFoundError reports a missing entity.
func NotFoundError(c *gin.Context, msg string) {
	HTTPError(c, http.StatusNotFound, msg, NotFound)
}

// UnauthorizedError reports a missing or invalid credential.
func UnauthorizedError(c *gin.Context, msg string, errorCode ErrorCode) {
	HTTPError(c, http.StatusUnauthorized, msg, errorCode)
}
