// File: internal/dtos/requests.go
package dtos

type SignupRequest struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	ProfilePic string `json:"profilePic"`
}

// SendMessageRequest carries the message body only. The sender is always
// the authenticated caller.
type SendMessageRequest struct {
	ReceiverID uint   `json:"receiverId"`
	Text       string `json:"text"`
	Image      string `json:"image"`
}

type CreateConversationRequest struct {
	TargetUserID uint `json:"targetUserId"`
}
