package errs

var (
	SystemError   = ErrorCode{Code: 502001, Msg: "系统错误"}
	TeamNotFound  = ErrorCode{Code: 502002, Msg: "班级不存在或者参加码无效"}
	AlreadyInTeam = ErrorCode{Code: 502003, Msg: "已经加入了一个班级"}
	NoPermission  = ErrorCode{Code: 502004, Msg: "没有权限"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
