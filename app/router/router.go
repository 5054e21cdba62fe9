// Package router 负责任务校验与分发：login 建立平台会话，
// upload 顺序发布一批视频。
package router

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"social-upload/app/discover"
	"social-upload/app/history"
	"social-upload/app/logger"
	"social-upload/app/platform"
	"social-upload/app/schedule"
	"social-upload/app/session"
	"social-upload/app/sidecar"

	"github.com/google/uuid"
)

// Action 是任务类型
type Action string

const (
	ActionLogin  Action = "login"
	ActionUpload Action = "upload"
)

// ErrValidation 表示命令行参数组合不合法
var ErrValidation = errors.New("参数校验失败")

// Task 是一次命令行调用构造出的任务
type Task struct {
	Platform platform.Platform
	Account  string
	Action   Action

	// 以下仅 upload 使用
	Files       []string // 显式文件列表，与 Directory 互斥
	Directory   string
	PublishType int    // 0 立即发布，1 定时发布
	Schedule    string // PublishType=1 时必填，格式 YYYY-MM-DD HH:MM
}

// Router 组合发现、会话路径解析和平台适配器
type Router struct {
	registry *platform.Registry
	baseDir  string
	logger   *logger.Logger
	history  *history.Store // 可为 nil，表示不记录历史
}

func New(registry *platform.Registry, baseDir string, log *logger.Logger, hist *history.Store) *Router {
	return &Router{
		registry: registry,
		baseDir:  baseDir,
		logger:   log,
		history:  hist,
	}
}

// Run 校验并执行任务。校验失败不产生任何副作用。
func (r *Router) Run(ctx context.Context, task Task) error {
	if err := validate(task); err != nil {
		return err
	}

	up, ok := r.registry.Get(task.Platform)
	if !ok {
		return fmt.Errorf("平台未注册: %s", task.Platform)
	}

	switch task.Action {
	case ActionLogin:
		return r.runLogin(ctx, task, up)
	case ActionUpload:
		return r.runUpload(ctx, task, up)
	}
	// validate 已排除其他取值
	return nil
}

func validate(task Task) error {
	if task.Account == "" {
		return fmt.Errorf("%w: 账号名不能为空", ErrValidation)
	}
	if task.Action != ActionLogin && task.Action != ActionUpload {
		return fmt.Errorf("%w: 不支持的操作 %q，可选值: login upload", ErrValidation, task.Action)
	}
	if task.Action != ActionUpload {
		return nil
	}

	hasFiles := len(task.Files) > 0
	hasDir := task.Directory != ""
	if hasFiles && hasDir {
		return fmt.Errorf("%w: --files 与 --directory 互斥，只能指定一个", ErrValidation)
	}
	if !hasFiles && !hasDir {
		return fmt.Errorf("%w: 必须指定 --files 或 --directory", ErrValidation)
	}

	if task.PublishType != 0 && task.PublishType != 1 {
		return fmt.Errorf("%w: publish_type 只能为 0 或 1", ErrValidation)
	}
	if task.PublishType == 1 && task.Schedule == "" {
		return fmt.Errorf("%w: 定时发布必须指定 --schedule", ErrValidation)
	}
	return nil
}

func (r *Router) runLogin(ctx context.Context, task Task, up platform.Uploader) error {
	credPath, err := session.CredentialPath(r.baseDir, task.Platform, task.Account)
	if err != nil {
		return err
	}

	r.logger.Infof("登录平台 %s 账号 %s", task.Platform, task.Account)
	// 交互式登录可能无限期阻塞，等待用户扫码
	return up.EstablishSession(ctx, credPath, true)
}

func (r *Router) runUpload(ctx context.Context, task Task, up platform.Uploader) error {
	videos, err := r.resolveVideos(task)
	if err != nil {
		return err
	}

	// 任何一个文件缺失都在第一次上传前终止整批任务
	for _, video := range videos {
		if _, err := os.Stat(video); err != nil {
			return fmt.Errorf("%w: %s", discover.ErrNotFound, video)
		}
	}

	// 发布时间只解析一次，格式错误不会发生在部分文件已上传之后
	var raw string
	if task.PublishType == 1 {
		raw = task.Schedule
	}
	publishAt, err := schedule.Parse(raw)
	if err != nil {
		return err
	}

	credPath, err := session.CredentialPath(r.baseDir, task.Platform, task.Account)
	if err != nil {
		return err
	}

	// 抖音上传时静默复用会话，其余平台按惯例需要交互确认
	interactive := task.Platform != platform.Douyin

	for _, video := range videos {
		jobID := uuid.NewString()

		title, tags, err := sidecar.TitleAndTags(video)
		if err != nil {
			// 缺少描述文件时退化为以文件名作标题
			r.logger.Warnf("读取描述文件失败，使用文件名作为标题: %v", err)
			title, tags = sidecar.Stem(video), nil
		}

		if schedule.IsImmediate(publishAt) {
			r.logger.Infof("正在上传: %s [job=%s]", video, jobID)
		} else {
			r.logger.Infof("计划上传: %s 于 %s [job=%s]", video, publishAt.Format(schedule.Layout), jobID)
		}

		spec := platform.UploadSpec{
			Title:          title,
			FilePath:       video,
			Tags:           tags,
			PublishAt:      publishAt,
			CredentialPath: credPath,
		}
		if task.Platform == platform.Tencent {
			// 视频号需要分区标记原创，其他平台忽略该字段
			spec.Extra = platform.TencentZoneLifestyle
		}

		if err := up.EstablishSession(ctx, credPath, interactive); err != nil {
			r.record(jobID, task, spec, err)
			return err
		}

		// 一个文件的任务执行完才处理下一个；适配器失败不在此捕获，
		// 直接向上传播并终止剩余队列
		if err := up.BuildUploadJob(spec).Run(ctx); err != nil {
			r.record(jobID, task, spec, err)
			return err
		}

		r.record(jobID, task, spec, nil)
		r.logger.Infof("完成上传: %s [job=%s]", video, jobID)
	}
	return nil
}

func (r *Router) resolveVideos(task Task) ([]string, error) {
	if len(task.Files) > 0 {
		return task.Files, nil
	}

	videos, err := discover.FindVideos(task.Directory)
	if err != nil {
		return nil, err
	}
	r.logger.Infof("找到 %d 个视频文件:", len(videos))
	for _, video := range videos {
		r.logger.Infof("- %s", video)
	}
	return videos, nil
}

// record 写入一条上传历史，失败只记日志
func (r *Router) record(jobID string, task Task, spec platform.UploadSpec, runErr error) {
	if r.history == nil {
		return
	}

	rec := &history.Record{
		JobID:    jobID,
		Platform: string(task.Platform),
		Account:  task.Account,
		FilePath: spec.FilePath,
		Title:    spec.Title,
		Status:   "success",
	}
	if !schedule.IsImmediate(spec.PublishAt) {
		publishAt := spec.PublishAt
		rec.PublishAt = &publishAt
	}
	if runErr != nil {
		rec.Status = "failed"
		rec.Error = runErr.Error()
	}
	rec.CreatedAt = time.Now()

	if err := r.history.Append(rec); err != nil {
		r.logger.Warnf("写入上传历史失败: %v", err)
	}
}
