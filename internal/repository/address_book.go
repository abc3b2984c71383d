package repository

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"addressbook/internal/model"
	"addressbook/pkg/logger"
)

// Predicate 决定一条记录是否出现在展示列表中
type Predicate func(model.Person) bool

// ShowAllPersons 展示全部记录
func ShowAllPersons(model.Person) bool { return true }

// NameContainsKeywords 姓名中任意一个单词与任意关键字相同（忽略大小写）即匹配
func NameContainsKeywords(keywords ...string) Predicate {
	return func(p model.Person) bool {
		words := strings.Fields(p.Name().String())
		for _, kw := range keywords {
			for _, w := range words {
				if strings.EqualFold(w, kw) {
					return true
				}
			}
		}
		return false
	}
}

func HasTag(tag string) Predicate {
	return func(p model.Person) bool {
		return p.HasTag(tag)
	}
}

// AddressBook 内存中的通讯录，同时维护当前的展示谓词。
// 展示列表每次按谓词从完整列表计算，不单独保存。
type AddressBook struct {
	mu        sync.RWMutex
	persons   *model.PersonList
	predicate Predicate
}

func NewAddressBook(persons ...model.Person) (*AddressBook, error) {
	list, err := model.NewPersonList(persons...)
	if err != nil {
		return nil, err
	}

	return &AddressBook{
		persons:   list,
		predicate: ShowAllPersons,
	}, nil
}

// FilteredPersons 返回当前展示列表的副本，下标 0 对应展示序号 1
func (b *AddressBook) FilteredPersons() []model.Person {
	b.mu.RLock()
	defer b.mu.RUnlock()

	all := b.persons.Slice()
	result := make([]model.Person, 0, len(all))
	for _, p := range all {
		if b.predicate(p) {
			result = append(result, p)
		}
	}
	return result
}

func (b *AddressBook) UpdateFilteredPersonList(predicate Predicate) {
	if predicate == nil {
		predicate = ShowAllPersons
	}

	b.mu.Lock()
	b.predicate = predicate
	b.mu.Unlock()
}

// UpdatePerson 用 edited 替换 target，失败时不做任何修改
func (b *AddressBook) UpdatePerson(target, edited model.Person) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.persons.SetPerson(target, edited); err != nil {
		logger.Logger.Debug("Update person rejected",
			zap.String("target", target.Name().String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (b *AddressBook) AddPerson(p model.Person) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.persons.Add(p)
}

func (b *AddressBook) DeletePerson(p model.Person) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.persons.Remove(p)
}

// Persons 返回完整列表（不受展示谓词影响）
func (b *AddressBook) Persons() []model.Person {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.persons.Slice()
}

func (b *AddressBook) Size() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.persons.Len()
}
