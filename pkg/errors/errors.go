package errors

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 通用错误。
var (
	InvalidRequest  = Definition{Code: "INVALID_REQUEST", Message: "Invalid request"}
	TooManyRequests = Definition{Code: "TOO_MANY_REQUESTS", Message: "Too many requests"}
)

// 联系人模块错误。
var (
	InvalidPersonDisplayedIndex = Definition{Code: "INVALID_PERSON_DISPLAYED_INDEX", Message: "The person index provided is invalid"}
	DuplicatePerson             = Definition{Code: "DUPLICATE_PERSON", Message: "This person already exists in the address book."}
	PersonNotFound              = Definition{Code: "PERSON_NOT_FOUND", Message: "The target person cannot be found"}
	PrivacyEditEmpty            = Definition{Code: "PRIVACY_EDIT_EMPTY", Message: "At least one field to change privacy must be provided."}
)

// 字段校验错误。
var (
	InvalidName     = Definition{Code: "INVALID_NAME", Message: "Person names should only contain alphanumeric characters and spaces, and it should not be blank"}
	InvalidPhone    = Definition{Code: "INVALID_PHONE", Message: "Phone numbers can only contain numbers, and should be at least 3 digits long"}
	InvalidEmail    = Definition{Code: "INVALID_EMAIL", Message: "Person emails should be of the format local-part@domain"}
	InvalidAddress  = Definition{Code: "INVALID_ADDRESS", Message: "Person addresses can take any values, and it should not be blank"}
	InvalidTag      = Definition{Code: "INVALID_TAG", Message: "Tags names should be alphanumeric"}
	InvalidTeamName = Definition{Code: "INVALID_TEAM_NAME", Message: "Team names should only contain alphanumeric characters and spaces"}
)

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	InvalidRequest.Code:              InvalidRequest,
	TooManyRequests.Code:             TooManyRequests,
	InvalidPersonDisplayedIndex.Code: InvalidPersonDisplayedIndex,
	DuplicatePerson.Code:             DuplicatePerson,
	PersonNotFound.Code:              PersonNotFound,
	PrivacyEditEmpty.Code:            PrivacyEditEmpty,
	InvalidName.Code:                 InvalidName,
	InvalidPhone.Code:                InvalidPhone,
	InvalidEmail.Code:                InvalidEmail,
	InvalidAddress.Code:              InvalidAddress,
	InvalidTag.Code:                  InvalidTag,
	InvalidTeamName.Code:             InvalidTeamName,
}

// Get 根据错误码返回 Definition，若不存在则返回空 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}
