package response

import "solar-dispatch/internal/pkg/notify"

// Notified is embedded in every response body so the client can show the
// toasts raised while handling the request.
type Notified struct {
	Notifications []notify.Message `json:"notifications"`
}

func (n *Notified) SetNotifications(msgs []notify.Message) {
	if msgs == nil {
		msgs = []notify.Message{}
	}
	n.Notifications = msgs
}
