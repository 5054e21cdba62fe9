package cmd

import (
	"social-upload/app/config"
	"social-upload/app/history"
	"social-upload/app/logger"
	"social-upload/app/platform"
	"social-upload/app/router"
	"social-upload/app/uploader"

	"github.com/spf13/cobra"
)

var (
	uploadFiles       []string
	uploadDirectory   string
	uploadPublishType int
	uploadSchedule    string
)

var uploadCmd = &cobra.Command{
	Use:   "upload <platform> <account>",
	Short: "发布一批本地视频",
	Long:  "按文件路径升序逐个发布视频，标题和话题取自同名 txt 描述文件",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := platform.Parse(args[0])
		if err != nil {
			return err
		}

		cfg := config.Load()
		log := logger.New(cfg.Log)
		defer log.Sync()

		var hist *history.Store
		if cfg.History.Enabled {
			hist, err = history.Open(cfg.History.Path)
			if err != nil {
				return err
			}
			defer hist.Close()
		}

		drv := uploader.NewDriver(cfg.Automation.Command, log)
		r := router.New(uploader.NewRegistry(drv), cfg.BaseDir, log, hist)

		return r.Run(cmd.Context(), router.Task{
			Platform:    p,
			Account:     args[1],
			Action:      router.ActionUpload,
			Files:       uploadFiles,
			Directory:   uploadDirectory,
			PublishType: uploadPublishType,
			Schedule:    uploadSchedule,
		})
	},
}

func init() {
	uploadCmd.Flags().StringSliceVarP(&uploadFiles, "files", "f", nil, "一个或多个视频文件路径，与 --directory 互斥")
	uploadCmd.Flags().StringVarP(&uploadDirectory, "directory", "d", "", "包含视频的目录，与 --files 互斥")
	uploadCmd.Flags().IntVarP(&uploadPublishType, "publish_type", "p", 0, "0 立即发布，1 定时发布")
	uploadCmd.Flags().StringVarP(&uploadSchedule, "schedule", "t", "", "定时发布时间，格式 \"YYYY-MM-DD HH:MM\"")

	rootCmd.AddCommand(uploadCmd)
}
