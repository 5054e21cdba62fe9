package session

import (
	"os"
	"path/filepath"
	"testing"

	"social-upload/app/platform"
)

func TestCredentialPath(t *testing.T) {
	base := t.TempDir()

	got, err := CredentialPath(base, platform.Douyin, "xiaoA")
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	want := filepath.Join(base, "cookies", "douyin_xiaoA.json")
	if got != want {
		t.Fatalf("期望 %q，实际 %q", want, got)
	}

	info, err := os.Stat(filepath.Join(base, "cookies"))
	if err != nil || !info.IsDir() {
		t.Fatalf("cookies 目录应已创建：%v", err)
	}
}

func TestCredentialPath_Idempotent(t *testing.T) {
	base := t.TempDir()

	first, err := CredentialPath(base, platform.Tencent, "acc")
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	second, err := CredentialPath(base, platform.Tencent, "acc")
	if err != nil {
		t.Fatalf("重复调用不应出错：%v", err)
	}
	if first != second {
		t.Fatalf("映射应确定：%q != %q", first, second)
	}
}
