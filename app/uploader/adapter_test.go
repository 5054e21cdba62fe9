package uploader

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"social-upload/app/config"
	"social-upload/app/logger"
	"social-upload/app/platform"
)

func testDriver() *Driver {
	log := logger.New(config.LogConfig{Level: "error", Format: "text", Output: "stdout"})
	return NewDriver("no-such-automation-helper", log)
}

func TestEstablishSession_SilentMissingCredential(t *testing.T) {
	a := New(platform.Douyin, testDriver())

	err := a.EstablishSession(context.Background(), filepath.Join(t.TempDir(), "douyin_x.json"), false)
	if err == nil {
		t.Fatal("凭证缺失时静默会话应失败")
	}
	var perr *platform.Error
	if !errors.As(err, &perr) {
		t.Fatalf("期望 *platform.Error，实际=%T", err)
	}
	if perr.Op != "session" || perr.Platform != platform.Douyin {
		t.Fatalf("错误元数据不正确：%+v", perr)
	}
}

func TestExecJob_Args(t *testing.T) {
	publishAt := time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local)
	job := &execJob{
		platform: platform.Tencent,
		spec: platform.UploadSpec{
			Title:          "标题",
			FilePath:       "/videos/a.mp4",
			Tags:           []string{"tag1", "tag2"},
			PublishAt:      publishAt,
			CredentialPath: "/cookies/tencent_x.json",
			Extra:          platform.TencentZoneLifestyle,
		},
	}

	got := strings.Join(job.args(), " ")
	want := "tencent upload --cookie /cookies/tencent_x.json --file /videos/a.mp4 --title 标题 " +
		"--tag tag1 --tag tag2 --publish-at 2024-01-15 10:30 --extra lifestyle"
	if got != want {
		t.Fatalf("参数拼装错误：\n期望 %q\n实际 %q", want, got)
	}
}

func TestExecJob_ArgsImmediateNoExtra(t *testing.T) {
	job := &execJob{
		platform: platform.Douyin,
		spec: platform.UploadSpec{
			Title:          "t",
			FilePath:       "/v.mp4",
			CredentialPath: "/c.json",
		},
	}

	got := strings.Join(job.args(), " ")
	if strings.Contains(got, "--publish-at") {
		t.Fatalf("立即发布不应携带 --publish-at：%q", got)
	}
	if strings.Contains(got, "--extra") {
		t.Fatalf("无平台特有字段时不应携带 --extra：%q", got)
	}
}

func TestNewRegistry_AllPlatforms(t *testing.T) {
	registry := NewRegistry(testDriver())
	for _, name := range platform.Supported() {
		p, err := platform.Parse(name)
		if err != nil {
			t.Fatalf("不期望错误：%v", err)
		}
		if _, ok := registry.Get(p); !ok {
			t.Fatalf("平台 %s 未注册", p)
		}
	}
}
