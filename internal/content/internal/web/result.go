package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/manabiya/manabiya/internal/content/internal/errs"
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
	notAuthorResult = ginx.Result{
		Code: errs.NotAuthor.Code,
		Msg:  errs.NotAuthor.Msg,
	}
	invalidOptionResult = ginx.Result{
		Code: errs.InvalidOption.Code,
		Msg:  errs.InvalidOption.Msg,
	}
	unknownTypeResult = ginx.Result{
		Code: errs.UnknownType.Code,
		Msg:  errs.UnknownType.Msg,
	}
	emptyKeywordResult = ginx.Result{
		Code: errs.EmptyKeyword.Code,
		Msg:  errs.EmptyKeyword.Msg,
	}
)
