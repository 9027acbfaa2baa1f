package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/config"
	"github.com/1nFrastr/miao-bbq-app/internal/consts"
	"github.com/1nFrastr/miao-bbq-app/internal/db"
	"github.com/1nFrastr/miao-bbq-app/internal/di"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportRoutes bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 HTTP 服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootstrap(); err != nil {
			return err
		}
		defer shutdown()
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.Get()

	if isLocalStorage(cfg.Storage.Driver) {
		if err := ensureUploadDir(cfg.Upload.Path); err != nil {
			return err
		}
	}

	app, err := di.InitializeApplication(ctx, db.DB, cfg)
	if err != nil {
		return fmt.Errorf("初始化应用失败: %w", err)
	}
	if err := app.Service.InitializeSettings(); err != nil {
		return err
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	app.Router.Init(r)

	// 导出模式：导出后直接退出，不启动 Web 服务
	if exportRoutes {
		return exportAPI(r)
	}

	printWelcomeMessage(cfg, app.Disk.Name())

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("🚀 服务启动成功", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("服务启动失败: %w", err)
	case <-quit:
	}
	logger.L().Info("🛑 正在关闭服务...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("服务强制关闭: %w", err)
	}
	logger.L().Info("✅ 服务已退出")
	return nil
}

func printWelcomeMessage(cfg config.Config, storageDriver string) {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🍢  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  后端版本 : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   🗄️   数据库   : %s\n", cfg.Database.Type)
	fmt.Printf(" │   🖼️   存储驱动 : %s\n", storageDriver)
	fmt.Printf(" │   🔥  服务端口 : %s\n", cfg.Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

func exportAPI(r *gin.Engine) error {
	type RouteInfo struct {
		Method  string `json:"method"`
		Path    string `json:"path"`
		Handler string `json:"handler"`
	}

	routes := r.Routes()
	exportList := make([]RouteInfo, 0, len(routes))
	for _, route := range routes {
		exportList = append(exportList, RouteInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	file, err := json.MarshalIndent(exportList, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile("routes.json", file, 0o644); err != nil {
		return fmt.Errorf("写入 routes.json 失败: %w", err)
	}
	fmt.Println("✅ 路由已成功导出到 routes.json")
	return nil
}

func isLocalStorage(driver string) bool {
	d := strings.ToLower(strings.TrimSpace(driver))
	return d == "" || d == "local"
}

func ensureUploadDir(uploadPath string) error {
	if err := checkSecurePath(uploadPath); err != nil {
		return err
	}
	if err := os.MkdirAll(uploadPath, 0o755); err != nil {
		return fmt.Errorf("无法创建上传目录: %w", err)
	}
	return nil
}

// checkSecurePath 要求项目目录内的静态资源目录位于白名单子目录下，避免暴露源码或配置。
func checkSecurePath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("路径解析失败: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("无法获取当前工作目录: %w", err)
	}

	if absPath == cwd {
		return fmt.Errorf("安全配置错误: 静态资源目录 '%s' 不能设置为项目根目录", path)
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil
	}

	allowedDirs := []string{"uploads", "public", "assets", "static", "tmp"}
	firstComponent := strings.Split(filepath.ToSlash(rel), "/")[0]
	for _, allowed := range allowedDirs {
		if strings.EqualFold(firstComponent, allowed) {
			return nil
		}
	}
	return fmt.Errorf("安全配置错误: 静态资源目录 '%s' 必须位于安全子目录中 (如 %v)", path, allowedDirs)
}
