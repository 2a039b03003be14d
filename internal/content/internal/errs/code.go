package errs

var (
	SystemError     = ErrorCode{Code: 505001, Msg: "系统错误"}
	ContentNotFound = ErrorCode{Code: 505002, Msg: "内容不存在"}
	NotAuthor       = ErrorCode{Code: 505003, Msg: "只有作者本人可以修改"}
	InvalidOption   = ErrorCode{Code: 505004, Msg: "选项不存在"}
	UnknownType     = ErrorCode{Code: 505005, Msg: "未知的内容类型"}
	EmptyKeyword    = ErrorCode{Code: 505006, Msg: "搜索关键词不能为空"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
