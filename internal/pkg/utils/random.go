/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 11:05:12
 * @LastEditTime: 2025-09-06 18:22:41
 * @LastEditors: 安知鱼
 */
package utils

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// GenerateRandomString 生成指定长度的随机字符串。
// 使用 Base64 URL 编码，避免特殊字符问题。
func GenerateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(bytes)[:length], nil
}

// GenerateSigningKey 生成用于签名会话 Cookie 的随机密钥（十六进制）。
func GenerateSigningKey(byteLen int) (string, error) {
	bytes := make([]byte, byteLen)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("生成签名密钥失败: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
