package command

import (
	"errors"
	"fmt"

	"addressbook/internal/model"
	"addressbook/internal/repository"
	pkgerrors "addressbook/pkg/errors"
)

const (
	CommandWord  = "toggleprivacy"
	CommandAlias = "tp"

	MessageUsage = CommandWord + ": Changes the field privacy of the person" +
		" identified by the index number used in the last person listing.\n" +
		"Parameters: INDEX (must be a positive integer) [p/] [e/] [a/] [r/]\n" +
		"Example: " + CommandWord + " 1 p/ e/ a/"

	MessageSuccess         = "Changed the Privacy of the Person: %s"
	MessageDuplicatePerson = "This person already exists in the address book."
)

// TogglePrivacyCommand 修改展示列表中第 index 个联系人的字段隐私
type TogglePrivacyCommand struct {
	index Index
	edit  PrivacyEdit
}

func NewTogglePrivacyCommand(index Index, edit PrivacyEdit) *TogglePrivacyCommand {
	return &TogglePrivacyCommand{
		index: index,
		edit:  edit.Copy(),
	}
}

func (c *TogglePrivacyCommand) Word() string { return CommandWord }

func (c *TogglePrivacyCommand) Index() Index { return c.index }

func (c *TogglePrivacyCommand) Edit() PrivacyEdit { return c.edit }

func (c *TogglePrivacyCommand) Execute(m Model) (Result, error) {
	lastShown := m.FilteredPersons()

	if c.index.ZeroBased() >= len(lastShown) {
		return Result{}, pkgerrors.InvalidPersonDisplayedIndex
	}

	target := lastShown[c.index.ZeroBased()]
	edited := ApplyPrivacy(target, c.edit)

	if err := m.UpdatePerson(target, edited); err != nil {
		switch {
		case errors.Is(err, pkgerrors.DuplicatePerson):
			return Result{}, pkgerrors.Definition{Code: pkgerrors.DuplicatePerson.Code, Message: MessageDuplicatePerson}
		case errors.Is(err, pkgerrors.PersonNotFound):
			// target 刚从展示列表中取出，不可能不存在
			panic("The target person cannot be missing")
		default:
			return Result{}, fmt.Errorf("failed to update person: %w", err)
		}
	}

	m.UpdateFilteredPersonList(repository.ShowAllPersons)

	return Result{Feedback: fmt.Sprintf(MessageSuccess, edited)}, nil
}

func (c *TogglePrivacyCommand) Equal(other *TogglePrivacyCommand) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.index == other.index && c.edit.Equal(other.edit)
}

// ApplyPrivacy 生成 target 的副本：四个隐私字段按 edit 设置隐私标记，其余内容不变。
// 字段会按原值重新校验，失败说明存储的记录已损坏，直接 panic。
func ApplyPrivacy(target model.Person, edit PrivacyEdit) model.Person {
	phone, err := model.NewPhone(target.Phone().Value())
	if err != nil {
		panic(fmt.Sprintf("Invalid Phone: %v", err))
	}
	email, err := model.NewEmail(target.Email().Value())
	if err != nil {
		panic(fmt.Sprintf("Invalid Email: %v", err))
	}
	address, err := model.NewAddress(target.Address().Value())
	if err != nil {
		panic(fmt.Sprintf("Invalid Address: %v", err))
	}
	remark := model.NewRemark(target.Remark().Value())

	return model.NewPerson(
		target.Name(),
		phone.WithPrivacy(edit.PrivatePhone().OrElse(target.Phone().IsPrivate())),
		email.WithPrivacy(edit.PrivateEmail().OrElse(target.Email().IsPrivate())),
		address.WithPrivacy(edit.PrivateAddress().OrElse(target.Address().IsPrivate())),
		remark.WithPrivacy(edit.PrivateRemark().OrElse(target.Remark().IsPrivate())),
		target.TeamName(),
		target.Tags(),
	)
}
