package errs

var (
	SystemError     = ErrorCode{Code: 508001, Msg: "系统错误"}
	ContentNotFound = ErrorCode{Code: 508002, Msg: "内容不存在"}
	InvalidCategory = ErrorCode{Code: 508003, Msg: "举报类型不合法"}
	ReportNotFound  = ErrorCode{Code: 508004, Msg: "举报不存在"}
	NoPermission    = ErrorCode{Code: 508005, Msg: "没有权限"}
	AlreadyResolved = ErrorCode{Code: 508006, Msg: "举报已经处理过了"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
