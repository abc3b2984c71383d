package command

import "fmt"

// PrivacyEdit 稀疏的隐私修改描述：每个字段未设置表示保持原样，
// 设置了则把对应字段的隐私标记改为该值。
type PrivacyEdit struct {
	phone   OptionalBool
	email   OptionalBool
	address OptionalBool
	remark  OptionalBool
}

// Copy 值拷贝即可，字段都是标量
func (e PrivacyEdit) Copy() PrivacyEdit { return e }

func (e *PrivacyEdit) SetPrivatePhone(private bool)   { e.phone = OptionalOf(private) }
func (e *PrivacyEdit) SetPrivateEmail(private bool)   { e.email = OptionalOf(private) }
func (e *PrivacyEdit) SetPrivateAddress(private bool) { e.address = OptionalOf(private) }
func (e *PrivacyEdit) SetPrivateRemark(private bool)  { e.remark = OptionalOf(private) }

func (e *PrivacyEdit) TogglePhone()   { e.phone = e.phone.Toggle() }
func (e *PrivacyEdit) ToggleEmail()   { e.email = e.email.Toggle() }
func (e *PrivacyEdit) ToggleAddress() { e.address = e.address.Toggle() }
func (e *PrivacyEdit) ToggleRemark()  { e.remark = e.remark.Toggle() }

func (e PrivacyEdit) PrivatePhone() OptionalBool   { return e.phone }
func (e PrivacyEdit) PrivateEmail() OptionalBool   { return e.email }
func (e PrivacyEdit) PrivateAddress() OptionalBool { return e.address }
func (e PrivacyEdit) PrivateRemark() OptionalBool  { return e.remark }

func (e PrivacyEdit) IsAnyFieldSet() bool {
	return e.phone.IsSet() || e.email.IsSet() || e.address.IsSet() || e.remark.IsSet()
}

// Inverse 每个已设置的字段取反，未设置的保持未设置
func (e PrivacyEdit) Inverse() PrivacyEdit {
	inv := PrivacyEdit{}
	if e.phone.IsSet() {
		inv.phone = e.phone.Toggle()
	}
	if e.email.IsSet() {
		inv.email = e.email.Toggle()
	}
	if e.address.IsSet() {
		inv.address = e.address.Toggle()
	}
	if e.remark.IsSet() {
		inv.remark = e.remark.Toggle()
	}
	return inv
}

// Equal 未设置与 false 是不同的值
func (e PrivacyEdit) Equal(other PrivacyEdit) bool {
	return e == other
}

func (e PrivacyEdit) String() string {
	return fmt.Sprintf("phone=%s email=%s address=%s remark=%s", e.phone, e.email, e.address, e.remark)
}
