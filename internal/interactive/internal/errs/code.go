package errs

var (
	SystemError = ErrorCode{Code: 506001, Msg: "系统错误"}
	InvalidType = ErrorCode{Code: 506002, Msg: "不支持的互动类型"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
