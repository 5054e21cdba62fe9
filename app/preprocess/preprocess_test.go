package preprocess

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"social-upload/app/config"
)

func writeVideo(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("video"), 0o644); err != nil {
		t.Fatalf("创建文件失败：%v", err)
	}
	return path
}

func TestProcessFile_RenameAndSidecar(t *testing.T) {
	dir := t.TempDir()
	writeVideo(t, dir, "Song [Copyright Free] Track.mp4")

	cfg := &config.Config{VideoDirectory: dir, RemovePatterns: []string{"[*]"}}
	p := newTestPreprocessor(cfg, fakeText{
		describe: func(name string) (string, error) {
			return name + "\n#话题一 #话题二", nil
		},
	})

	result, err := p.ProcessFile(context.Background(), filepath.Join(dir, "Song [Copyright Free] Track.mp4"))
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}

	if result.CleanedStem != "Song  Track" {
		t.Fatalf("清理结果错误：%q", result.CleanedStem)
	}
	if _, err := os.Stat(filepath.Join(dir, "Song  Track.mp4")); err != nil {
		t.Fatalf("视频应已重命名：%v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Song [Copyright Free] Track.mp4")); !os.IsNotExist(err) {
		t.Fatal("旧文件名不应再存在")
	}

	data, err := os.ReadFile(result.SidecarPath)
	if err != nil {
		t.Fatalf("描述文件应已写入：%v", err)
	}
	if !strings.Contains(string(data), "Song  Track") {
		t.Fatalf("描述内容错误：%q", string(data))
	}
	if len(result.Tags) != 2 || result.Tags[0] != "话题一" {
		t.Fatalf("标签提取错误：%v", result.Tags)
	}
}

func TestProcessFile_DescribeFailureFallback(t *testing.T) {
	dir := t.TempDir()
	writeVideo(t, dir, "demo.mp4")

	cfg := &config.Config{VideoDirectory: dir}
	p := newTestPreprocessor(cfg, fakeText{
		describe: func(string) (string, error) { return "", errors.New("服务不可用") },
	})

	result, err := p.ProcessFile(context.Background(), filepath.Join(dir, "demo.mp4"))
	if err != nil {
		t.Fatalf("文本服务失败不应使处理失败：%v", err)
	}

	data, err := os.ReadFile(result.SidecarPath)
	if err != nil {
		t.Fatalf("兜底描述文件应已写入：%v", err)
	}
	if !strings.Contains(string(data), "无法生成描述") || !strings.Contains(string(data), "demo") {
		t.Fatalf("兜底内容应包含清理后的文件名：%q", string(data))
	}
}

func TestProcessFile_NoRenameWhenClean(t *testing.T) {
	dir := t.TempDir()
	writeVideo(t, dir, "已清理的名字.mp4")

	cfg := &config.Config{VideoDirectory: dir, RemovePatterns: []string{"[*]"}}
	p := newTestPreprocessor(cfg, fakeText{})

	result, err := p.ProcessFile(context.Background(), filepath.Join(dir, "已清理的名字.mp4"))
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if result.CleanedStem != "已清理的名字" {
		t.Fatalf("无需清理时名字应不变：%q", result.CleanedStem)
	}
	if _, err := os.Stat(filepath.Join(dir, "已清理的名字.mp4")); err != nil {
		t.Fatalf("文件应保持原名：%v", err)
	}
}

func TestRun_ContinuesOnSingleFileFailure(t *testing.T) {
	dir := t.TempDir()
	writeVideo(t, dir, "a.mp4")
	writeVideo(t, dir, "b.mp4")
	writeVideo(t, dir, "skip.txt")

	var processed []string
	cfg := &config.Config{VideoDirectory: dir}
	p := newTestPreprocessor(cfg, fakeText{
		describe: func(name string) (string, error) {
			processed = append(processed, name)
			if name == "a" {
				return "", errors.New("服务不可用")
			}
			return "介绍", nil
		},
	})

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("批处理不应失败：%v", err)
	}
	if len(processed) != 2 {
		t.Fatalf("应处理全部 2 个视频，实际 %d：%v", len(processed), processed)
	}
	// 失败的文件也有兜底描述文件
	if _, err := os.Stat(filepath.Join(dir, "a.txt")); err != nil {
		t.Fatalf("失败文件的兜底描述应已写入：%v", err)
	}
}

func TestRun_MissingDirectory(t *testing.T) {
	cfg := &config.Config{VideoDirectory: filepath.Join(t.TempDir(), "missing")}
	p := newTestPreprocessor(cfg, fakeText{})

	if err := p.Run(context.Background()); err == nil {
		t.Fatal("目录不存在应返回错误")
	}
}
