package utils

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern    = regexp.MustCompile(`^\d{3,}$`)
	namePattern     = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	tagPattern      = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
	teamNamePattern = namePattern

	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// ValidatePhone 只允许数字，且至少 3 位
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

func ValidateEmail(email string) bool {
	return validatorInstance().Var(email, "required,email") == nil
}

func ValidateName(name string) bool {
	return namePattern.MatchString(name)
}

// ValidateAddress 地址可以是任意内容，但不能以空白开头
func ValidateAddress(address string) bool {
	return address != "" && strings.TrimLeft(address, " \t\r\n") == address
}

func ValidateTag(tag string) bool {
	return tagPattern.MatchString(tag)
}

// ValidateTeamName 空字符串表示没有队伍
func ValidateTeamName(team string) bool {
	return team == "" || teamNamePattern.MatchString(team)
}
