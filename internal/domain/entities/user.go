package entities

import "time"

// UserType is the visitor's stage of life, used to personalize content.
type UserType string

const (
	UserTypeNone         UserType = ""
	UserTypeStudent      UserType = "student"
	UserTypePostgraduate UserType = "postgraduate"
	UserTypeProfessional UserType = "professional"
)

// UserTypes lists selectable user types in display order.
var UserTypes = []UserType{UserTypeStudent, UserTypePostgraduate, UserTypeProfessional}

// ParseUserType returns the user type named s.
func ParseUserType(s string) (UserType, bool) {
	for _, t := range UserTypes {
		if string(t) == s {
			return t, true
		}
	}
	return UserTypeNone, false
}

// Label returns the human readable user type.
func (t UserType) Label() string {
	switch t {
	case UserTypeStudent:
		return "Học sinh (Lớp 8-12)"
	case UserTypePostgraduate:
		return "Sau đại học"
	case UserTypeProfessional:
		return "Chuyên gia đang làm việc"
	default:
		return ""
	}
}

// Greeting returns a greeting personalized for the user type.
func (t UserType) Greeting() string {
	switch t {
	case UserTypeStudent:
		return "Chào mừng, Học sinh tương lai!"
	case UserTypePostgraduate:
		return "Chào mừng, Chuyên gia tương lai!"
	case UserTypeProfessional:
		return "Chào mừng, Người thay đổi nghề nghiệp!"
	default:
		return "Chào mừng bạn đến với Cổng Hướng nghiệp!"
	}
}

// User represents bot user.
type User struct {
	ID          int64 // Telegram user ID
	ChatID      int64
	UserType    UserType
	DisplayName string
	IsActive    bool
	CreatedAt   time.Time
}

func NewUser(id, chatID int64) *User {
	return &User{
		ID:        id,
		ChatID:    chatID,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
}
