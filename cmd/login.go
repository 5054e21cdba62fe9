package cmd

import (
	"social-upload/app/config"
	"social-upload/app/logger"
	"social-upload/app/platform"
	"social-upload/app/router"
	"social-upload/app/uploader"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <platform> <account>",
	Short: "登录平台账号并保存凭证",
	Long:  "拉起浏览器完成交互式登录（可能需要扫码），成功后凭证保存到 cookies 目录",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := platform.Parse(args[0])
		if err != nil {
			return err
		}

		cfg := config.Load()
		log := logger.New(cfg.Log)
		defer log.Sync()

		drv := uploader.NewDriver(cfg.Automation.Command, log)
		r := router.New(uploader.NewRegistry(drv), cfg.BaseDir, log, nil)

		return r.Run(cmd.Context(), router.Task{
			Platform: p,
			Account:  args[1],
			Action:   router.ActionLogin,
		})
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
