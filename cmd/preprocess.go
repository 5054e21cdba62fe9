package cmd

import (
	"social-upload/app/config"
	"social-upload/app/logger"
	"social-upload/app/preprocess"
	"social-upload/app/utils/openaihelper"

	"github.com/spf13/cobra"
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess",
	Short: "批量预处理视频元数据",
	Long:  "清理 video_directory 下 mp4 文件的文件名，按需翻译，并生成同名 txt 介绍文件",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log := logger.New(cfg.Log)
		defer log.Sync()

		client := openaihelper.New(cfg)
		defer client.Close()

		return preprocess.New(cfg, client, log).Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(preprocessCmd)
}
