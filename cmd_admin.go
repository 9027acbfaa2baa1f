package main

import (
	"context"
	"fmt"

	"github.com/1nFrastr/miao-bbq-app/internal/config"
	"github.com/1nFrastr/miao-bbq-app/internal/db"
	"github.com/1nFrastr/miao-bbq-app/internal/di"
	admindto "github.com/1nFrastr/miao-bbq-app/internal/modules/admin/dto"

	"github.com/spf13/cobra"
)

var adminCreateReq admindto.CreateAdminRequest

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "管理后台账号维护",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "创建管理员账号",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootstrap(); err != nil {
			return err
		}
		defer shutdown()

		app, err := buildApplication(cmd.Context())
		if err != nil {
			return err
		}
		admin, err := app.Modules.Admin.Service.CreateAdmin(adminCreateReq)
		if err != nil {
			return err
		}
		role := "管理员"
		if admin.IsSuperuser {
			role = "超级管理员"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ 已创建%s %s (id=%d)\n", role, admin.Username, admin.ID)
		return nil
	},
}

func init() {
	flags := adminCreateCmd.Flags()
	flags.StringVar(&adminCreateReq.Username, "username", "", "用户名")
	flags.StringVar(&adminCreateReq.Password, "password", "", "密码，至少 6 位")
	flags.StringVar(&adminCreateReq.Email, "email", "", "邮箱")
	flags.StringVar(&adminCreateReq.RealName, "real-name", "", "真实姓名")
	flags.BoolVar(&adminCreateReq.IsSuperuser, "superuser", false, "是否为超级管理员")
	_ = adminCreateCmd.MarkFlagRequired("username")
	_ = adminCreateCmd.MarkFlagRequired("password")

	adminCmd.AddCommand(adminCreateCmd)
}

func buildApplication(ctx context.Context) (*di.Application, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	app, err := di.InitializeApplication(ctx, db.DB, config.Get())
	if err != nil {
		return nil, fmt.Errorf("初始化应用失败: %w", err)
	}
	return app, nil
}
