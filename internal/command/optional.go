package command

import "encoding/json"

// OptionalBool 三态布尔：未设置 / true / false，零值为未设置
type OptionalBool uint8

const (
	Unset OptionalBool = iota
	True
	False
)

func OptionalOf(b bool) OptionalBool {
	if b {
		return True
	}
	return False
}

// OptionalFromPtr nil 视为未设置
func OptionalFromPtr(b *bool) OptionalBool {
	if b == nil {
		return Unset
	}
	return OptionalOf(*b)
}

func (o OptionalBool) IsSet() bool { return o != Unset }

func (o OptionalBool) Get() (value bool, ok bool) {
	return o == True, o.IsSet()
}

func (o OptionalBool) OrElse(fallback bool) bool {
	if !o.IsSet() {
		return fallback
	}
	return o == True
}

// Toggle 翻转已设置的值；未设置时变为 true
func (o OptionalBool) Toggle() OptionalBool {
	if o == True {
		return False
	}
	return True
}

func (o OptionalBool) String() string {
	switch o {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unset"
	}
}

// MarshalJSON 未设置编码为 null
func (o OptionalBool) MarshalJSON() ([]byte, error) {
	if !o.IsSet() {
		return []byte("null"), nil
	}
	return json.Marshal(o == True)
}

func (o *OptionalBool) UnmarshalJSON(data []byte) error {
	var b *bool
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	*o = OptionalFromPtr(b)
	return nil
}
