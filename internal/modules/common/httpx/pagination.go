package httpx

import (
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/1nFrastr/miao-bbq-app/internal/consts"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/service"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PageRequest 为归一化后的分页参数。
type PageRequest struct {
	Page     int
	PageSize int
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResponse 与小程序端约定的分页结构。
type PageResponse struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

// ParsePage 读取 page/page_size，默认值与上限来自运行时配置。
func ParsePage(c *gin.Context, appService *service.AppService) PageRequest {
	size := defaultPageSize
	limit := maxPageSize
	if appService != nil {
		if v := appService.GetInt(consts.ConfigFeedPageSize); v > 0 {
			size = v
		}
		if v := appService.GetInt(consts.ConfigFeedMaxPageSize); v > 0 {
			limit = v
		}
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	if raw := c.Query("page_size"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			size = v
		}
	}
	if size > limit {
		size = limit
	}
	// 页码上限保证 page*size 不溢出
	if maxPage := math.MaxInt32 / size; page > maxPage {
		page = maxPage
	}
	return PageRequest{Page: page, PageSize: size}
}

// WritePage 输出分页结果，next/previous 为带页码的完整请求地址。
func WritePage(c *gin.Context, req PageRequest, total int64, results any) {
	c.JSON(http.StatusOK, BuildPage(c.Request, req, total, results))
}

func BuildPage(r *http.Request, req PageRequest, total int64, results any) PageResponse {
	resp := PageResponse{Count: total, Results: results}
	if int64(req.Page*req.PageSize) < total {
		next := pageURL(r, req.Page+1)
		resp.Next = &next
	}
	if req.Page > 1 {
		prev := pageURL(r, req.Page-1)
		resp.Previous = &prev
	}
	return resp
}

func pageURL(r *http.Request, page int) string {
	u := url.URL{Path: r.URL.Path}
	if r.Host != "" {
		u.Host = r.Host
		u.Scheme = "http"
		if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
			u.Scheme = "https"
		}
	}
	q := r.URL.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	return u.String()
}
