// Package preprocess 实现视频元数据批处理：清理文件名、
// 生成介绍文本并落盘为同名描述文件。
package preprocess

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"social-upload/app/config"
	"social-upload/app/logger"
)

// TextService 是预处理依赖的文本生成能力
type TextService interface {
	Translate(ctx context.Context, text string) (string, error)
	Describe(ctx context.Context, videoName string) (string, error)
}

// Result 是单个文件的处理结果
type Result struct {
	OriginalStem string
	CleanedStem  string
	Description  string
	Tags         []string
	SidecarPath  string
}

// Preprocessor 逐个处理目标目录下的视频文件
type Preprocessor struct {
	cfg    *config.Config
	text   TextService
	logger *logger.Logger
	rules  []rule
}

func New(cfg *config.Config, text TextService, log *logger.Logger) *Preprocessor {
	return &Preprocessor{
		cfg:    cfg,
		text:   text,
		logger: log,
		rules:  compileRules(cfg.RemovePatterns),
	}
}

// Run 处理目录下所有 mp4 文件（不递归）。单个文件的失败只记录日志，
// 批次总是处理完所有文件。
func (p *Preprocessor) Run(ctx context.Context) error {
	entries, err := os.ReadDir(p.cfg.VideoDirectory)
	if err != nil {
		return fmt.Errorf("目录不存在: %s: %w", p.cfg.VideoDirectory, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".mp4") {
			continue
		}
		path := filepath.Join(p.cfg.VideoDirectory, entry.Name())
		if _, err := p.ProcessFile(ctx, path); err != nil {
			p.logger.Errorf("处理文件 %s 时出错: %v", path, err)
		}
	}
	return nil
}

// ProcessFile 处理单个视频文件：清理文件名、必要时重命名、
// 生成描述并写入同名 txt。文本服务失败降级为兜底内容，不算失败。
func (p *Preprocessor) ProcessFile(ctx context.Context, path string) (*Result, error) {
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	cleaned := p.cleanName(ctx, stem)
	if cleaned == "" {
		// 全部字符被清理掉时保留原名，避免产生空文件名
		cleaned = stem
	}

	newPath := filepath.Join(dir, cleaned+ext)
	if newPath != path {
		if err := os.Rename(path, newPath); err != nil {
			return nil, fmt.Errorf("重命名失败: %w", err)
		}
		p.logger.Infof("重命名文件: %s -> %s", path, newPath)
	}

	description, err := p.text.Describe(ctx, cleaned)
	if err != nil {
		p.logger.Errorf("生成描述出错: %v", err)
		description = fmt.Sprintf("无法生成描述: %s", cleaned)
	}

	sidecarPath := filepath.Join(dir, cleaned+".txt")
	if err := os.WriteFile(sidecarPath, []byte(description), 0o644); err != nil {
		return nil, fmt.Errorf("写入描述文件失败: %w", err)
	}
	p.logger.Infof("生成描述文件: %s", sidecarPath)

	return &Result{
		OriginalStem: stem,
		CleanedStem:  cleaned,
		Description:  description,
		Tags:         extractTags(description),
		SidecarPath:  sidecarPath,
	}, nil
}

// extractTags 从描述文本中提取 # 开头的话题标签（去掉 #）
func extractTags(description string) []string {
	var tags []string
	for _, word := range strings.Fields(description) {
		if strings.HasPrefix(word, "#") && len(word) > 1 {
			tags = append(tags, strings.TrimPrefix(word, "#"))
		}
	}
	return tags
}
