package errs

var (
	SystemError     = ErrorCode{Code: 504001, Msg: "系统错误"}
	SettingNotFound = ErrorCode{Code: 504002, Msg: "学习计划不存在"}
	NoPermission    = ErrorCode{Code: 504003, Msg: "没有权限"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
