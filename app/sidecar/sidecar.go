// Package sidecar 读取视频的同名描述文件（<文件名>.txt），
// 提取发布用的标题与话题标签。
package sidecar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Path 返回视频对应的描述文件路径
func Path(videoPath string) string {
	ext := filepath.Ext(videoPath)
	return strings.TrimSuffix(videoPath, ext) + ".txt"
}

// TitleAndTags 从描述文件中提取标题和话题标签。
// 第一个非空行是标题，其余行中以 # 开头的空格分隔词是标签（去掉 #）。
func TitleAndTags(videoPath string) (string, []string, error) {
	data, err := os.ReadFile(Path(videoPath))
	if err != nil {
		return "", nil, fmt.Errorf("读取描述文件失败: %w", err)
	}

	var title string
	var tags []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if title == "" {
			title = line
			continue
		}
		for _, word := range strings.Fields(line) {
			if strings.HasPrefix(word, "#") && len(word) > 1 {
				tags = append(tags, strings.TrimPrefix(word, "#"))
			}
		}
	}

	if title == "" {
		return "", nil, fmt.Errorf("描述文件为空: %s", Path(videoPath))
	}
	return title, tags, nil
}

// Stem 返回视频文件名去掉扩展名后的部分，作为标题的兜底值
func Stem(videoPath string) string {
	base := filepath.Base(videoPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
