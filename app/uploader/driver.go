// Package uploader 提供基于外部浏览器自动化助手的平台适配器。
// 助手进程负责实际的登录与上传页面操作，本包只负责拼装调用。
package uploader

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"social-upload/app/logger"
)

// Driver 封装对自动化助手进程的调用
type Driver struct {
	command string
	logger  *logger.Logger
}

func NewDriver(command string, log *logger.Logger) *Driver {
	return &Driver{command: command, logger: log}
}

// Run 同步执行助手命令直至退出。标准输入输出直接接到当前终端，
// 交互式登录（扫码等）依赖这一点。
func (d *Driver) Run(ctx context.Context, args ...string) error {
	d.logger.Debugf("执行自动化助手: %s %v", d.command, args)

	cmd := exec.CommandContext(ctx, d.command, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("自动化助手执行失败: %w", err)
	}
	return nil
}
