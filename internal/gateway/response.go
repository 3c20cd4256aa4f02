package gateway

import (
	"net/http"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ListResponse struct {
	Items      interface{} `json:"items"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// ErrorBody is the error payload: the error kind, a message and any material shortages.
type ErrorBody struct {
	Kind      string            `json:"kind"`
	Message   string            `json:"message"`
	Shortages []apperr.Shortage `json:"shortages,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Code: 0, Message: "success", Data: data})
}

func List(c *gin.Context, items interface{}, page, pageSize, total int) {
	p := &Pagination{Page: page, PageSize: pageSize, Total: total}
	if pageSize > 0 {
		p.TotalPages = (total + pageSize - 1) / pageSize
	}
	Success(c, ListResponse{Items: items, Pagination: p})
}

func HTTPStatus(k apperr.Kind) int {
	switch k {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindPreconditionFailed:
		return http.StatusConflict
	case apperr.KindInsufficientMaterials, apperr.KindInsufficientInventory:
		return http.StatusUnprocessableEntity
	case apperr.KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err with the status of its kind. Internal errors keep their cause out of the body.
func Error(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	code := HTTPStatus(kind)

	body := ErrorBody{Kind: kind.String(), Message: err.Error(), Shortages: apperr.ShortagesOf(err)}
	if code == http.StatusInternalServerError {
		_ = c.Error(err)
		body.Message = "internal error"
	}
	c.AbortWithStatusJSON(code, Response{Code: code * 100, Message: body.Message, Data: body})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, apperr.InvalidInput("%s", message))
}
