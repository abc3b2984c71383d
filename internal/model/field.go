package model

import (
	pkgerrors "addressbook/pkg/errors"
	"addressbook/utils"
)

// privacyField 是 Phone/Email/Address/Remark 共用的值对象。
// 所有方法都是值接收者，修改隐私只会得到新副本。
type privacyField struct {
	value     string
	isPrivate bool
}

// Value 返回原始内容，与隐私标记无关
func (f privacyField) Value() string {
	return f.value
}

func (f privacyField) IsPrivate() bool {
	return f.isPrivate
}

func (f privacyField) display(placeholder string) string {
	if f.isPrivate {
		return placeholder
	}
	return f.value
}

// ========== Phone ==========

type Phone struct{ privacyField }

func NewPhone(value string) (Phone, error) {
	if !utils.ValidatePhone(value) {
		return Phone{}, pkgerrors.InvalidPhone
	}
	return Phone{privacyField{value: value}}, nil
}

func (p Phone) WithPrivacy(private bool) Phone {
	p.isPrivate = private
	return p
}

func (p Phone) String() string { return p.display("<Private Phone>") }

func (p Phone) Equal(other Phone) bool { return p.privacyField == other.privacyField }

// ========== Email ==========

type Email struct{ privacyField }

func NewEmail(value string) (Email, error) {
	if !utils.ValidateEmail(value) {
		return Email{}, pkgerrors.InvalidEmail
	}
	return Email{privacyField{value: value}}, nil
}

func (e Email) WithPrivacy(private bool) Email {
	e.isPrivate = private
	return e
}

func (e Email) String() string { return e.display("<Private Email>") }

func (e Email) Equal(other Email) bool { return e.privacyField == other.privacyField }

// ========== Address ==========

type Address struct{ privacyField }

func NewAddress(value string) (Address, error) {
	if !utils.ValidateAddress(value) {
		return Address{}, pkgerrors.InvalidAddress
	}
	return Address{privacyField{value: value}}, nil
}

func (a Address) WithPrivacy(private bool) Address {
	a.isPrivate = private
	return a
}

func (a Address) String() string { return a.display("<Private Address>") }

func (a Address) Equal(other Address) bool { return a.privacyField == other.privacyField }

// ========== Remark ==========

// Remark 可以为空，没有格式要求
type Remark struct{ privacyField }

func NewRemark(value string) Remark {
	return Remark{privacyField{value: value}}
}

func (r Remark) WithPrivacy(private bool) Remark {
	r.isPrivate = private
	return r
}

func (r Remark) String() string { return r.display("<Private Remark>") }

func (r Remark) Equal(other Remark) bool { return r.privacyField == other.privacyField }
