package discover

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("创建目录失败：%v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("创建文件失败：%v", err)
	}
}

func TestFindVideos_RecursiveSorted(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b", "second.mov"))
	touch(t, filepath.Join(root, "a", "first.mp4"))
	touch(t, filepath.Join(root, "readme.txt"))

	got, err := FindVideos(root)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	want := []string{
		filepath.Join(root, "a", "first.mp4"),
		filepath.Join(root, "b", "second.mov"),
	}
	if len(got) != len(want) {
		t.Fatalf("期望 %d 个文件，实际 %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("位置 %d 期望 %q，实际 %q", i, want[i], got[i])
		}
	}
}

func TestFindVideos_ExtCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "X.MP4"))
	touch(t, filepath.Join(root, "Y.MkV"))

	got, err := FindVideos(root)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if len(got) != 2 {
		t.Fatalf("期望 2 个视频文件，实际 %d", len(got))
	}
}

func TestFindVideos_SingleFile(t *testing.T) {
	root := t.TempDir()
	video := filepath.Join(root, "a.mp4")
	other := filepath.Join(root, "a.txt")
	touch(t, video)
	touch(t, other)

	got, err := FindVideos(video)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if len(got) != 1 || got[0] != video {
		t.Fatalf("期望单元素列表 [%q]，实际 %v", video, got)
	}

	got, err = FindVideos(other)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if len(got) != 0 {
		t.Fatalf("非视频文件应返回空列表，实际 %v", got)
	}
}

func TestFindVideos_NotFound(t *testing.T) {
	if _, err := FindVideos(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("期望 ErrNotFound，实际=%v", err)
	}
}

func TestFindVideos_EmptyDir(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "note.txt"))
	if _, err := FindVideos(root); !errors.Is(err, ErrNoVideos) {
		t.Fatalf("期望 ErrNoVideos，实际=%v", err)
	}
}
