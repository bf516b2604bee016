package model

type Recipient struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FCMToken string `json:"fcmToken" masq:"secret"`
}
