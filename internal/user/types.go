package user

// MaxPushTokenLength is the width of users.push_token.
const MaxPushTokenLength = 255

type UpdatePushTokenInput struct {
	Token string
}
