package model

import (
	pkgerrors "addressbook/pkg/errors"
)

// PersonList 保证列表中不存在两个相等的 Person，顺序即插入顺序
type PersonList struct {
	persons []Person
}

func NewPersonList(persons ...Person) (*PersonList, error) {
	list := &PersonList{}
	for _, p := range persons {
		if err := list.Add(p); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (l *PersonList) indexOf(p Person) int {
	for i, existing := range l.persons {
		if existing.Equal(p) {
			return i
		}
	}
	return -1
}

func (l *PersonList) Contains(p Person) bool {
	return l.indexOf(p) >= 0
}

func (l *PersonList) Add(p Person) error {
	if l.Contains(p) {
		return pkgerrors.DuplicatePerson
	}
	l.persons = append(l.persons, p)
	return nil
}

// SetPerson 用 edited 原位替换 target。
// target 不存在返回 PersonNotFound；edited 与另一条记录相等返回 DuplicatePerson。
// 出错时列表不变。
func (l *PersonList) SetPerson(target, edited Person) error {
	idx := l.indexOf(target)
	if idx < 0 {
		return pkgerrors.PersonNotFound
	}

	if !target.Equal(edited) && l.Contains(edited) {
		return pkgerrors.DuplicatePerson
	}

	l.persons[idx] = edited
	return nil
}

func (l *PersonList) Remove(p Person) error {
	idx := l.indexOf(p)
	if idx < 0 {
		return pkgerrors.PersonNotFound
	}
	l.persons = append(l.persons[:idx], l.persons[idx+1:]...)
	return nil
}

func (l *PersonList) Len() int {
	return len(l.persons)
}

// Slice 返回副本
func (l *PersonList) Slice() []Person {
	result := make([]Person, len(l.persons))
	copy(result, l.persons)
	return result
}
