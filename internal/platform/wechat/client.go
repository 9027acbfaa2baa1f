package wechat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/config"

	"github.com/tidwall/gjson"
)

// ErrNotConfigured 未配置 AppID/AppSecret 时无法使用 code 登录。
var ErrNotConfigured = errors.New("wechat: app_id 或 app_secret 未配置")

// Session 是 jscode2session 返回的登录会话。
type Session struct {
	OpenID     string
	UnionID    string
	SessionKey string
}

// Client 调用微信小程序登录凭证校验接口。
type Client struct {
	httpClient *http.Client
	endpoint   string
	appID      string
	appSecret  string
}

func NewClient(cfg config.WeChatConfig) *Client {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = "https://api.weixin.qq.com/sns/jscode2session"
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		appID:      cfg.AppID,
		appSecret:  cfg.AppSecret,
	}
}

// Code2Session 用 wx.login 得到的 code 换取 openid。
func (c *Client) Code2Session(ctx context.Context, code string) (*Session, error) {
	if c.appID == "" || c.appSecret == "" {
		return nil, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("appid", c.appID)
	q.Set("secret", c.appSecret)
	q.Set("js_code", code)
	q.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("wechat: build request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wechat: request jscode2session: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("wechat: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wechat: unexpected status %d", resp.StatusCode)
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.New("wechat: invalid json response")
	}

	result := gjson.ParseBytes(body)
	if errcode := result.Get("errcode").Int(); errcode != 0 {
		return nil, fmt.Errorf("wechat: errcode=%d errmsg=%s", errcode, result.Get("errmsg").String())
	}
	openid := result.Get("openid").String()
	if openid == "" {
		return nil, errors.New("wechat: empty openid")
	}
	return &Session{
		OpenID:     openid,
		UnionID:    result.Get("unionid").String(),
		SessionKey: result.Get("session_key").String(),
	}, nil
}
