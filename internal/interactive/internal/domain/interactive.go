package domain

const (
	TypeLike  = "like"
	TypeSave  = "save"
	TypeShare = "share"
)

// Counts 一个内容上各类互动的数量
type Counts struct {
	LikeCnt  int64
	SaveCnt  int64
	ShareCnt int64
}
