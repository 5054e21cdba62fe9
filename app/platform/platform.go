// Package platform 定义各社交平台适配器的统一能力契约。
package platform

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Platform 是受支持的社交平台标识
type Platform string

const (
	Douyin   Platform = "douyin"
	Tencent  Platform = "tencent"
	TikTok   Platform = "tiktok"
	Kuaishou Platform = "kuaishou"
)

// Supported 返回所有受支持的平台名称
func Supported() []string {
	return []string{string(Douyin), string(Tencent), string(TikTok), string(Kuaishou)}
}

// Parse 将命令行输入解析为平台标识
func Parse(s string) (Platform, error) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case Douyin:
		return Douyin, nil
	case Tencent:
		return Tencent, nil
	case TikTok:
		return TikTok, nil
	case Kuaishou:
		return Kuaishou, nil
	}
	return "", fmt.Errorf("不支持的平台: %q，可选值: %s", s, strings.Join(Supported(), " "))
}

// 视频号分区，作为 UploadSpec.Extra 传给 tencent 适配器，其他平台忽略
const TencentZoneLifestyle = "lifestyle"

// UploadSpec 描述一次视频发布任务的全部输入
type UploadSpec struct {
	Title          string
	FilePath       string
	Tags           []string
	PublishAt      time.Time // 零值表示立即发布
	CredentialPath string
	Extra          string // 平台特有字段，至多一个平台识别
}

// Job 是一次已构造好的发布操作
type Job interface {
	// Run 执行发布，副作用是视频在目标平台上线；失败返回 *Error。
	Run(ctx context.Context) error
}

// Uploader 是每个平台适配器实现的能力契约
type Uploader interface {
	// EstablishSession 建立平台会话。interactive 为真时可能无限期阻塞，
	// 等待用户在外部完成操作（如扫码），成功后持久化新的凭证数据；
	// 为假时静默复用已有凭证，凭证缺失或失效则失败。
	EstablishSession(ctx context.Context, credentialPath string, interactive bool) error
	// BuildUploadJob 从发布参数构造一次上传操作
	BuildUploadJob(spec UploadSpec) Job
}

// Error 表示适配器内部失败
type Error struct {
	Platform Platform
	Op       string // session 或 upload
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("平台 %s %s 失败: %v", e.Platform, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
