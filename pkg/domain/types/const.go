package types

// AppVersion is overwritten at build time with -ldflags.
var AppVersion = "dev"

const (
	// MessagingScope is the OAuth2 scope required by the FCM v1 send API.
	MessagingScope = "https://www.googleapis.com/auth/firebase.messaging"

	DefaultTokenEndpoint = "https://oauth2.googleapis.com/token"
	DefaultFCMEndpoint   = "https://fcm.googleapis.com/"

	DefaultAndroidClickAction = "FLUTTER_NOTIFICATION_CLICK"
	DefaultWebPushIcon        = "/icons/icon-192.png"

	// EventInsert is the only trigger type that dispatches notifications.
	EventInsert = "INSERT"
)
