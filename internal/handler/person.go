package handler

import (
	"context"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"

	"addressbook/internal/command"
	"addressbook/internal/model/dto"
	"addressbook/internal/service"
	"addressbook/pkg/errors"
	"addressbook/pkg/response"
)

type PersonHandler struct {
	svc *service.AddressBookService
}

func NewPersonHandler(svc *service.AddressBookService) *PersonHandler {
	return &PersonHandler{svc: svc}
}

// ListPersons 列出展示列表，keyword 按空格拆分为多个关键字
// GET /v1/persons?keyword=alice bob
func (h *PersonHandler) ListPersons(ctx context.Context, c *app.RequestContext) {
	keywords := strings.Fields(c.Query("keyword"))

	persons := h.svc.ListPersons(ctx, keywords)
	items := make([]dto.PersonItem, 0, len(persons))
	for i, p := range persons {
		items = append(items, dto.NewPersonItem(i+1, p))
	}

	response.SuccessWithMeta(ctx, c, items, map[string]interface{}{
		"total": len(items),
	})
}

// AddPerson 新增联系人
// POST /v1/persons
func (h *PersonHandler) AddPerson(ctx context.Context, c *app.RequestContext) {
	var req dto.AddPersonRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	person, err := h.svc.AddPerson(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Created(ctx, c, dto.NewPersonItem(0, person))
}

// TogglePrivacy 修改展示列表中某个联系人的字段隐私
// POST /v1/persons/:index/privacy
func (h *PersonHandler) TogglePrivacy(ctx context.Context, c *app.RequestContext) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(ctx, c, errors.InvalidPersonDisplayedIndex)
		return
	}

	var req dto.TogglePrivacyRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	executionID, result, err := h.svc.TogglePrivacy(ctx, index, privacyEditFromRequest(req))
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, dto.CommandResponse{
		ExecutionID: executionID,
		Feedback:    result.Feedback,
	})
}

func privacyEditFromRequest(req dto.TogglePrivacyRequest) command.PrivacyEdit {
	var edit command.PrivacyEdit
	if v, ok := command.OptionalFromPtr(req.Phone).Get(); ok {
		edit.SetPrivatePhone(v)
	}
	if v, ok := command.OptionalFromPtr(req.Email).Get(); ok {
		edit.SetPrivateEmail(v)
	}
	if v, ok := command.OptionalFromPtr(req.Address).Get(); ok {
		edit.SetPrivateAddress(v)
	}
	if v, ok := command.OptionalFromPtr(req.Remark).Get(); ok {
		edit.SetPrivateRemark(v)
	}
	return edit
}
