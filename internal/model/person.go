package model

import (
	"sort"
	"strings"

	pkgerrors "addressbook/pkg/errors"
	"addressbook/utils"
)

type Name struct{ value string }

func NewName(value string) (Name, error) {
	if !utils.ValidateName(value) {
		return Name{}, pkgerrors.InvalidName
	}
	return Name{value: value}, nil
}

func (n Name) String() string { return n.value }

// TeamName 为空表示不属于任何队伍
type TeamName struct{ value string }

func NewTeamName(value string) (TeamName, error) {
	if !utils.ValidateTeamName(value) {
		return TeamName{}, pkgerrors.InvalidTeamName
	}
	return TeamName{value: value}, nil
}

func (t TeamName) String() string { return t.value }

func (t TeamName) IsEmpty() bool { return t.value == "" }

type Tag struct{ name string }

func NewTag(name string) (Tag, error) {
	if !utils.ValidateTag(name) {
		return Tag{}, pkgerrors.InvalidTag
	}
	return Tag{name: name}, nil
}

func (t Tag) Name() string { return t.name }

func (t Tag) String() string { return "[" + t.name + "]" }

// Person 联系人记录，构造后不可变。
// 相等性是结构化的，包含各字段的隐私标记和标签集合。
type Person struct {
	name     Name
	phone    Phone
	email    Email
	address  Address
	remark   Remark
	teamName TeamName
	tags     []Tag // 已去重并按名称排序
}

func NewPerson(name Name, phone Phone, email Email, address Address, remark Remark, teamName TeamName, tags []Tag) Person {
	return Person{
		name:     name,
		phone:    phone,
		email:    email,
		address:  address,
		remark:   remark,
		teamName: teamName,
		tags:     normalizeTags(tags),
	}
}

func normalizeTags(tags []Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tags))
	result := make([]Tag, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag.name]; ok {
			continue
		}
		seen[tag.name] = struct{}{}
		result = append(result, tag)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].name < result[j].name
	})
	return result
}

func (p Person) Name() Name         { return p.name }
func (p Person) Phone() Phone       { return p.phone }
func (p Person) Email() Email       { return p.email }
func (p Person) Address() Address   { return p.address }
func (p Person) Remark() Remark     { return p.remark }
func (p Person) TeamName() TeamName { return p.teamName }

// Tags 返回副本，调用方修改不会影响 Person
func (p Person) Tags() []Tag {
	if len(p.tags) == 0 {
		return nil
	}
	tags := make([]Tag, len(p.tags))
	copy(tags, p.tags)
	return tags
}

func (p Person) HasTag(name string) bool {
	for _, tag := range p.tags {
		if tag.name == name {
			return true
		}
	}
	return false
}

func (p Person) Equal(other Person) bool {
	if p.name != other.name ||
		!p.phone.Equal(other.phone) ||
		!p.email.Equal(other.email) ||
		!p.address.Equal(other.address) ||
		!p.remark.Equal(other.remark) ||
		p.teamName != other.teamName ||
		len(p.tags) != len(other.tags) {
		return false
	}

	// tags 已排序，可以逐个比较
	for i := range p.tags {
		if p.tags[i] != other.tags[i] {
			return false
		}
	}
	return true
}

// String 使用各字段的展示值，私密字段显示为占位符
func (p Person) String() string {
	var sb strings.Builder
	sb.WriteString(p.name.String())
	sb.WriteString(" Phone: ")
	sb.WriteString(p.phone.String())
	sb.WriteString(" Email: ")
	sb.WriteString(p.email.String())
	sb.WriteString(" Address: ")
	sb.WriteString(p.address.String())
	sb.WriteString(" Remark: ")
	sb.WriteString(p.remark.String())
	sb.WriteString(" Team: ")
	sb.WriteString(p.teamName.String())
	sb.WriteString(" Tags: ")
	for _, tag := range p.tags {
		sb.WriteString(tag.String())
	}
	return sb.String()
}
