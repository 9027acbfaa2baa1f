package main

import (
	"fmt"
	"os"

	"github.com/1nFrastr/miao-bbq-app/internal/config"
	"github.com/1nFrastr/miao-bbq-app/internal/consts"
	"github.com/1nFrastr/miao-bbq-app/internal/db"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/logger"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:           "miao-bbq",
	Short:         consts.ApplicationName,
	Version:       consts.ApplicationVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
	// 不带子命令时直接启动服务
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "config", "配置文件所在目录")
	serveCmd.Flags().BoolVar(&exportRoutes, "export", false, "导出路由到 routes.json 并退出")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(postsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

// bootstrap 加载配置、初始化日志并连接数据库，所有子命令共用。
func bootstrap() error {
	config.InitConfig(configDir)
	cfg := config.Get()

	if _, err := logger.Init(cfg.Server.Mode, cfg.Log.Level); err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}

	gdb, err := db.Open(cfg.Database)
	if err != nil {
		return err
	}
	if err := db.Migrate(gdb); err != nil {
		return err
	}
	db.DB = gdb
	logger.L().Info("✅ 数据库连接成功，表结构已同步", zap.String("type", cfg.Database.Type))
	return nil
}

func shutdown() {
	if err := service.CloseRedisClient(); err != nil {
		logger.L().Warn("关闭 Redis 连接失败", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		logger.L().Warn("关闭数据库连接失败", zap.Error(err))
	}
	logger.Sync()
}
