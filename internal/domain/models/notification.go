// internal/domain/models/notification.go
package models

// NotificationType distinguishes toast styling and audio cues.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
)

// Notification is one transient toast. IDs are UnixMilli timestamps, bumped
// on collision so every live notification is uniquely addressable by its
// removal timer.
type Notification struct {
	ID      int64
	Message string
	Type    NotificationType

	// Cue marks that an audio cue accompanied this notification. Set only
	// in full notification mode, and never for error toasts raised on the
	// login or register views.
	Cue bool
}

// NotificationMode gates how notifications surface.
//
//	on    - toast plus audio cue
//	muted - toast only
//	off   - suppressed entirely
type NotificationMode string

const (
	NotificationsOn    NotificationMode = "on"
	NotificationsMuted NotificationMode = "muted"
	NotificationsOff   NotificationMode = "off"
)

// Valid reports whether m is a known mode.
func (m NotificationMode) Valid() bool {
	return m == NotificationsOn || m == NotificationsMuted || m == NotificationsOff
}
