package command

import (
	"fmt"

	"addressbook/internal/model"
	"addressbook/internal/repository"
)

// Model 是命令执行时依赖的通讯录能力，由 repository.AddressBook 实现
type Model interface {
	FilteredPersons() []model.Person
	UpdatePerson(target, edited model.Person) error
	UpdateFilteredPersonList(predicate repository.Predicate)
}

// Result 命令执行成功后返回给调用方的反馈
type Result struct {
	Feedback string `json:"feedback"`
}

// Command 一次执行到底，失败时返回 pkg/errors 中的 Definition
type Command interface {
	Execute(m Model) (Result, error)
	Word() string
}

// Index 展示列表中的位置，对外 1 起始，内部 0 起始
type Index struct {
	zeroBased int
}

func NewIndexFromOneBased(oneBased int) (Index, error) {
	if oneBased < 1 {
		return Index{}, fmt.Errorf("index must be a positive integer, got %d", oneBased)
	}
	return Index{zeroBased: oneBased - 1}, nil
}

func (i Index) ZeroBased() int { return i.zeroBased }

func (i Index) OneBased() int { return i.zeroBased + 1 }
