package uploader

import (
	"context"
	"fmt"
	"os"

	"social-upload/app/platform"
	"social-upload/app/schedule"
)

// Adapter 以统一方式实现 platform.Uploader，
// 平台差异全部交给自动化助手按第一个参数区分。
type Adapter struct {
	platform platform.Platform
	drv      *Driver
}

func New(p platform.Platform, drv *Driver) *Adapter {
	return &Adapter{platform: p, drv: drv}
}

func (a *Adapter) EstablishSession(ctx context.Context, credentialPath string, interactive bool) error {
	if !interactive {
		// 静默复用要求凭证文件已经存在，缺失时直接失败，不拉起浏览器
		if _, err := os.Stat(credentialPath); err != nil {
			return &platform.Error{
				Platform: a.platform,
				Op:       "session",
				Err:      fmt.Errorf("凭证文件不存在，请先执行 login: %w", err),
			}
		}
	}

	args := []string{string(a.platform), "session", "--cookie", credentialPath}
	if interactive {
		args = append(args, "--interactive")
	}
	if err := a.drv.Run(ctx, args...); err != nil {
		return &platform.Error{Platform: a.platform, Op: "session", Err: err}
	}
	return nil
}

func (a *Adapter) BuildUploadJob(spec platform.UploadSpec) platform.Job {
	return &execJob{platform: a.platform, drv: a.drv, spec: spec}
}

// execJob 是一次待执行的上传操作
type execJob struct {
	platform platform.Platform
	drv      *Driver
	spec     platform.UploadSpec
}

func (j *execJob) args() []string {
	args := []string{
		string(j.platform), "upload",
		"--cookie", j.spec.CredentialPath,
		"--file", j.spec.FilePath,
		"--title", j.spec.Title,
	}
	for _, tag := range j.spec.Tags {
		args = append(args, "--tag", tag)
	}
	if !schedule.IsImmediate(j.spec.PublishAt) {
		args = append(args, "--publish-at", j.spec.PublishAt.Format(schedule.Layout))
	}
	if j.spec.Extra != "" {
		args = append(args, "--extra", j.spec.Extra)
	}
	return args
}

func (j *execJob) Run(ctx context.Context) error {
	if err := j.drv.Run(ctx, j.args()...); err != nil {
		return &platform.Error{Platform: j.platform, Op: "upload", Err: err}
	}
	return nil
}

// NewRegistry 注册全部四个平台的适配器
func NewRegistry(drv *Driver) *platform.Registry {
	registry := platform.NewRegistry()
	for _, p := range []platform.Platform{platform.Douyin, platform.Tencent, platform.TikTok, platform.Kuaishou} {
		// 平台名来自固定列表，注册不会失败
		_ = registry.Register(p, New(p, drv))
	}
	return registry
}
