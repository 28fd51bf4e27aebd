/*
 * @Description: ID 与 Slug 生成服务
 * @Author: 安知鱼
 * @Date: 2025-09-02 10:21:08
 * @LastEditTime: 2025-09-02 11:40:19
 * @LastEditors: 安知鱼
 */
package idgen

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// NewID 生成集合内唯一的不透明 ID。
// 格式为 毫秒时间戳的36进制 + 随机数的36进制，时间戳前缀保证了
// 同一集合内的 ID 随时间单调且不会复用。
func NewID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)

	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand 在正常运行环境下不会失败，这里退回到纳秒时钟
		return ts + strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	suffix := strconv.FormatUint(binary.BigEndian.Uint64(buf[:]), 36)

	return ts + suffix
}

// Slugify 从标题派生 URL 安全的 slug。
// 规则：转小写、去首尾空白、丢弃 [a-z0-9 -] 以外的字符、
// 空白折叠为连字符、连续连字符合并为一个。
func Slugify(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	slug := strings.Join(strings.Fields(b.String()), "-")

	// 合并连续连字符，保证 slug 中不出现 "--"
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return slug
}
