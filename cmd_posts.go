package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/1nFrastr/miao-bbq-app/internal/model"
	communityservice "github.com/1nFrastr/miao-bbq-app/internal/modules/community/service"

	"github.com/spf13/cobra"
)

var (
	pruneDryRun bool
	pruneStatus string
	pruneYes    bool
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "社区分享维护",
}

var prunePostsCmd = &cobra.Command{
	Use:   "prune-unlocated",
	Short: "删除缺少完整经纬度的分享",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := normalizePruneStatus(pruneStatus)
		if err != nil {
			return err
		}
		if err := bootstrap(); err != nil {
			return err
		}
		defer shutdown()

		app, err := buildApplication(cmd.Context())
		if err != nil {
			return err
		}
		svc := app.Modules.Community.Service
		out := cmd.OutOrStdout()

		preview, err := svc.PruneUnlocated(status, true)
		if err != nil {
			return err
		}
		if len(preview.Matched) == 0 {
			fmt.Fprintln(out, "✅ 没有找到缺少经纬度信息的分享")
			return nil
		}
		printPruneCandidates(out, preview)

		if pruneDryRun {
			fmt.Fprintln(out, "ℹ️  演练模式，未删除任何分享")
			return nil
		}
		if !pruneYes && !confirm(cmd.InOrStdin(), out, fmt.Sprintf("确认删除以上 %d 条分享？(y/N): ", len(preview.Matched))) {
			fmt.Fprintln(out, "已取消")
			return nil
		}

		result, err := svc.PruneUnlocated(status, false)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "✅ 已删除 %d 条分享\n", result.Deleted)
		return nil
	},
}

func init() {
	flags := prunePostsCmd.Flags()
	flags.BoolVar(&pruneDryRun, "dry-run", false, "仅列出将被删除的分享")
	flags.StringVar(&pruneStatus, "status", "all", "按状态过滤：pending、approved、rejected 或 all")
	flags.BoolVarP(&pruneYes, "yes", "y", false, "跳过确认")

	postsCmd.AddCommand(prunePostsCmd)
}

// normalizePruneStatus 把 all 转换为空过滤条件。
func normalizePruneStatus(status string) (string, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	switch status {
	case "", "all":
		return "", nil
	case model.PostStatusPending, model.PostStatusApproved, model.PostStatusRejected:
		return status, nil
	default:
		return "", fmt.Errorf("无效的状态: %s", status)
	}
}

func printPruneCandidates(out io.Writer, result *communityservice.PruneResult) {
	fmt.Fprintf(out, "⚠️  找到 %d 条缺少经纬度信息的分享:\n", len(result.Matched))
	for _, p := range result.Matched {
		fmt.Fprintf(out, "  #%d %s [%s] 纬度=%s 经度=%s\n", p.ID, p.ShopName, p.Status, formatCoord(p.Latitude), formatCoord(p.Longitude))
	}
}

func formatCoord(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.6f", *v)
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
