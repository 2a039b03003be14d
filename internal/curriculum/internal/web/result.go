package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/manabiya/manabiya/internal/curriculum/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	settingNotFoundResult = ginx.Result{
		Code: errs.SettingNotFound.Code,
		Msg:  errs.SettingNotFound.Msg,
	}
	noPermissionResult = ginx.Result{
		Code: errs.NoPermission.Code,
		Msg:  errs.NoPermission.Msg,
	}
)
