package main

import (
	"fmt"
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/db"
	"github.com/1nFrastr/miao-bbq-app/internal/seed"

	"github.com/spf13/cobra"
)

// migrate 只做表结构同步，bootstrap 已完成迁移。
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "同步数据库表结构",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootstrap(); err != nil {
			return err
		}
		defer shutdown()
		fmt.Fprintln(cmd.OutOrStdout(), "✅ 数据库迁移完成")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "写入联调用的演示数据",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootstrap(); err != nil {
			return err
		}
		defer shutdown()

		result, err := seed.Run(db.DB, time.Now())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "创建用户: %d 个\n", result.Users)
		if result.Admins > 0 {
			fmt.Fprintf(out, "创建管理员: %s，密码: %s\n", seed.DefaultAdminUsername, seed.DefaultAdminPassword)
		}
		fmt.Fprintf(out, "创建订单: %d 个\n", result.Orders)
		fmt.Fprintf(out, "创建分享: %d 条\n", result.Posts)
		fmt.Fprintln(out, "✅ 演示数据创建完成")
		return nil
	},
}
