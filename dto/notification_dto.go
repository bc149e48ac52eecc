package dto

// UnreadCountResponse carries the unread notification count for a user
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// EmailMessage is a rendered outbound email
type EmailMessage struct {
	To      string
	Subject string
	Body    string
}
