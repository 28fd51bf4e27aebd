package model

// ColorPalette 是站点配色方案：颜色键名到 CSS 颜色值的平面映射。
// 整站只有一份，没有 ID，整体读整体写。
type ColorPalette map[string]string
