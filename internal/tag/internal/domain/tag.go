package domain

type Tag struct {
	Id   int64
	Name string
}

// TagCount 热门标签统计用
type TagCount struct {
	Name string
	Cnt  int64
}
