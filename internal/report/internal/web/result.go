package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/manabiya/manabiya/internal/report/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	contentNotFoundResult = ginx.Result{
		Code: errs.ContentNotFound.Code,
		Msg:  errs.ContentNotFound.Msg,
	}
	invalidCategoryResult = ginx.Result{
		Code: errs.InvalidCategory.Code,
		Msg:  errs.InvalidCategory.Msg,
	}
	reportNotFoundResult = ginx.Result{
		Code: errs.ReportNotFound.Code,
		Msg:  errs.ReportNotFound.Msg,
	}
	noPermissionResult = ginx.Result{
		Code: errs.NoPermission.Code,
		Msg:  errs.NoPermission.Msg,
	}
	alreadyResolvedResult = ginx.Result{
		Code: errs.AlreadyResolved.Code,
		Msg:  errs.AlreadyResolved.Msg,
	}
)
