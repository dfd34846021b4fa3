package service

import "strings"

// IdentifierKind tells how a login identifier is looked up
type IdentifierKind int

const (
	IdentifierEmail IdentifierKind = iota + 1
	IdentifierNickname
)

// Identifier an email or a nickname, never both
type Identifier struct {
	Kind  IdentifierKind
	Value string
}

// ParseIdentifier classifies raw input. Anything containing "@" is an email.
func ParseIdentifier(raw string) Identifier {
	value := strings.TrimSpace(raw)
	if strings.Contains(value, "@") {
		return Identifier{Kind: IdentifierEmail, Value: value}
	}
	return Identifier{Kind: IdentifierNickname, Value: value}
}

func (i Identifier) String() string {
	switch i.Kind {
	case IdentifierEmail:
		return "email:" + i.Value
	case IdentifierNickname:
		return "nickname:" + i.Value
	default:
		return "unknown:" + i.Value
	}
}
