package preprocess

import (
	"context"
	"regexp"
	"strings"
)

// 清理阶段保留的字符：unicode 字母数字、下划线、空白、连字符和点
var invalidChars = regexp.MustCompile(`[^\p{L}\p{N}_\s\-.]`)

// rule 是一条编译好的移除规则
type rule struct {
	re      *regexp.Regexp // 含通配符的模式
	literal string         // 普通子串
}

func (r rule) apply(name string) string {
	if r.re != nil {
		return r.re.ReplaceAllString(name, "")
	}
	return strings.ReplaceAll(name, r.literal, "")
}

// compileRules 编译移除规则。含 * 的模式按通配符拆分，
// 逐段转义后用非贪婪的 .*? 连接，避免直接拼正则时的二次转义问题。
func compileRules(patterns []string) []rule {
	rules := make([]rule, 0, len(patterns))
	for _, pattern := range patterns {
		if !strings.Contains(pattern, "*") {
			rules = append(rules, rule{literal: pattern})
			continue
		}
		segments := strings.Split(pattern, "*")
		quoted := make([]string, len(segments))
		for i, seg := range segments {
			quoted[i] = regexp.QuoteMeta(seg)
		}
		rules = append(rules, rule{re: regexp.MustCompile("(?s)" + strings.Join(quoted, ".*?"))})
	}
	return rules
}

// cleanName 按固定顺序清理文件名主干：
// 移除规则 → 翻译（失败保留原文）→ 剔除特殊字符 → 截断 → 去首尾空白
func (p *Preprocessor) cleanName(ctx context.Context, stem string) string {
	name := stem

	for _, r := range p.rules {
		name = r.apply(name)
	}

	if p.cfg.TranslateToChinese {
		translated, err := p.text.Translate(ctx, name)
		if err != nil {
			p.logger.Errorf("翻译出错: %v", err)
		} else {
			name = translated
		}
	}

	name = invalidChars.ReplaceAllString(name, "")

	if runes := []rune(name); len(runes) > p.cfg.MaxFilenameLength {
		name = string(runes[:p.cfg.MaxFilenameLength])
	}

	return strings.TrimSpace(name)
}
