package errs

var (
	SystemError  = ErrorCode{Code: 509001, Msg: "系统错误"}
	NoPermission = ErrorCode{Code: 509002, Msg: "没有权限"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
