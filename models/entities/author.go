package entities

// Author 作者实体，启动时一次性生成，之后不会被删除。
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Bio  string `json:"bio"`
}
