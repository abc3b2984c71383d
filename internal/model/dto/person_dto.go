package dto

import "addressbook/internal/model"

// ========== Person 相关 DTO ==========

// PersonItem 展示列表中的一项，私密字段只返回占位符
type PersonItem struct {
	Index         int      `json:"index"` // 1 起始，toggle privacy 使用的序号
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Address       string   `json:"address"`
	Remark        string   `json:"remark"`
	TeamName      string   `json:"team_name,omitempty"`
	Tags          []string `json:"tags"`
	PrivateFields []string `json:"private_fields"`
}

func NewPersonItem(index int, p model.Person) PersonItem {
	tags := make([]string, 0, len(p.Tags()))
	for _, tag := range p.Tags() {
		tags = append(tags, tag.Name())
	}

	private := make([]string, 0, 4)
	if p.Phone().IsPrivate() {
		private = append(private, "phone")
	}
	if p.Email().IsPrivate() {
		private = append(private, "email")
	}
	if p.Address().IsPrivate() {
		private = append(private, "address")
	}
	if p.Remark().IsPrivate() {
		private = append(private, "remark")
	}

	return PersonItem{
		Index:         index,
		Name:          p.Name().String(),
		Phone:         p.Phone().String(),
		Email:         p.Email().String(),
		Address:       p.Address().String(),
		Remark:        p.Remark().String(),
		TeamName:      p.TeamName().String(),
		Tags:          tags,
		PrivateFields: private,
	}
}

// AddPersonRequest 新增联系人请求，新联系人所有字段默认公开
type AddPersonRequest struct {
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email"`
	Address  string   `json:"address"`
	Remark   string   `json:"remark,omitempty"`
	TeamName string   `json:"team_name,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// TogglePrivacyRequest 修改字段隐私请求，字段缺省或为 null 表示保持不变
type TogglePrivacyRequest struct {
	Phone   *bool `json:"phone"`
	Email   *bool `json:"email"`
	Address *bool `json:"address"`
	Remark  *bool `json:"remark"`
}

// CommandResponse 命令执行结果
type CommandResponse struct {
	ExecutionID string `json:"execution_id"`
	Feedback    string `json:"feedback"`
}
