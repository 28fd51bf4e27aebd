/*
 * @Description: 集合键名定义
 * @Author: 安知鱼
 * @Date: 2025-09-02 10:15:31
 * @LastEditTime: 2025-09-02 10:15:37
 * @LastEditors: 安知鱼
 */
package constant

// 每个集合以一个完整的 JSON 文档形式存储在 KV 后端中。
// 键名沿用历史数据的文件名，保证已有数据可以直接迁移。
const (
	CollectionBlogs          = "blog.json"
	CollectionCategories     = "categories.json"
	CollectionLinks          = "links.json"
	CollectionLinkCategories = "link-categories.json"
	CollectionColorPalette   = "colorpalate.json"
)
