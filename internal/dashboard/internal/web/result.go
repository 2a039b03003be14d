package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/manabiya/manabiya/internal/dashboard/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	noPermissionResult = ginx.Result{
		Code: errs.NoPermission.Code,
		Msg:  errs.NoPermission.Msg,
	}
)
