// Package session 负责 (平台, 账号) 到凭证文件路径的映射。
package session

import (
	"fmt"
	"os"
	"path/filepath"

	"social-upload/app/platform"
)

// CredentialPath 返回凭证文件的确定性路径：
// <base>/cookies/<platform>_<account>.json，并确保 cookies 目录存在。
// 不校验文件内容，文件由各平台适配器写入。
func CredentialPath(baseDir string, p platform.Platform, account string) (string, error) {
	dir := filepath.Join(baseDir, "cookies")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("创建 cookies 目录失败: %w", err)
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%s.json", p, account)), nil
}
