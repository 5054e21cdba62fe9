// Package discover 负责视频文件发现。
package discover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrNotFound 表示给定路径不存在
	ErrNotFound = errors.New("路径不存在")
	// ErrNoVideos 表示目录存在但没有匹配的视频文件
	ErrNoVideos = errors.New("未找到视频文件")
)

// 支持的视频扩展名（小写，带点）
var videoExtensions = map[string]bool{
	".mp4": true,
	".mov": true,
	".avi": true,
	".mkv": true,
	".wmv": true,
	".flv": true,
}

// IsVideo 判断路径的扩展名是否为受支持的视频格式（不区分大小写）
func IsVideo(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}

// FindVideos 解析 path 下的视频文件。
// path 为普通文件时：扩展名匹配则返回单元素列表，否则返回空列表。
// path 为目录时：递归收集所有匹配文件，按完整路径升序排序，
// 保证多次运行的处理顺序一致。
func FindVideos(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	if !info.IsDir() {
		if IsVideo(path) {
			return []string{path}, nil
		}
		return []string{}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsVideo(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("遍历目录失败: %w", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoVideos, path)
	}

	sort.Strings(files)
	return files, nil
}
