package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/manabiya/manabiya/internal/team/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	teamNotFoundResult = ginx.Result{
		Code: errs.TeamNotFound.Code,
		Msg:  errs.TeamNotFound.Msg,
	}
	alreadyInTeamResult = ginx.Result{
		Code: errs.AlreadyInTeam.Code,
		Msg:  errs.AlreadyInTeam.Msg,
	}
	noPermissionResult = ginx.Result{
		Code: errs.NoPermission.Code,
		Msg:  errs.NoPermission.Msg,
	}
)
