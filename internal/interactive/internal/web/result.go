package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/manabiya/manabiya/internal/interactive/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidTypeResult = ginx.Result{
		Code: errs.InvalidType.Code,
		Msg:  errs.InvalidType.Msg,
	}
)
