// internal/app/state/notify.go
package state

import (
	"sync"
	"time"

	"github.com/pasarunsri/pasarhub/internal/domain/models"
)

// Toast and flash durations.
const (
	DefaultToastDuration = 3 * time.Second
	ErrorFlashDuration   = 2 * time.Second
)

// Notifier raises self-expiring toast notifications on a store. Each toast
// gets its own removal timer; overlapping toasts expire independently.
type Notifier struct {
	store *Store

	mu     sync.Mutex
	lastID int64

	// now is swappable for tests.
	now func() time.Time
}

// NewNotifier creates a notifier bound to store.
func NewNotifier(store *Store) *Notifier {
	return &Notifier{store: store, now: time.Now}
}

// Success raises a success toast with the default duration.
func (n *Notifier) Success(message string) {
	n.Notify(message, models.NotificationSuccess, DefaultToastDuration)
}

// Error raises an error toast with the default duration.
func (n *Notifier) Error(message string) {
	n.Notify(message, models.NotificationError, DefaultToastDuration)
}

// Notify enqueues a toast unless notifications are off. In full mode the
// toast carries an audio cue, except for error toasts raised while the
// login or register view is showing. After duration the toast removes
// itself by id; other live toasts are untouched.
func (n *Notifier) Notify(message string, typ models.NotificationType, duration time.Duration) {
	id := n.nextID()
	posted := false

	// Appended under the store lock: expiry timers run concurrently with
	// request handlers, so the queue must never be rebuilt from a stale
	// snapshot.
	n.store.Update(func(st models.AppState) Patch {
		if st.NotificationMode == models.NotificationsOff {
			return Patch{}
		}

		cue := false
		if st.NotificationMode == models.NotificationsOn {
			authError := typ == models.NotificationError &&
				(st.CurrentView == models.ViewLogin || st.CurrentView == models.ViewRegister)
			cue = !authError
		}

		toast := models.Notification{ID: id, Message: message, Type: typ, Cue: cue}
		notifications := append(append([]models.Notification(nil), st.Notifications...), toast)
		posted = true
		return Patch{Notifications: Set(notifications)}
	})

	if posted {
		time.AfterFunc(duration, func() { n.remove(id) })
	}
}

// nextID derives ids from the wall clock and bumps on collision so two
// toasts raised in the same millisecond stay distinct.
func (n *Notifier) nextID() int64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.now().UnixMilli()
	if id <= n.lastID {
		id = n.lastID + 1
	}
	n.lastID = id
	return id
}

func (n *Notifier) remove(id int64) {
	n.store.Update(func(st models.AppState) Patch {
		kept := make([]models.Notification, 0, len(st.Notifications))
		for _, t := range st.Notifications {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		return Patch{Notifications: Set(kept)}
	})
}

// TriggerErrorFlash raises the full-screen error flash overlay and clears
// it after ErrorFlashDuration.
func (n *Notifier) TriggerErrorFlash() {
	n.store.SetState(Patch{IsErrorFlashActive: Set(true)})
	time.AfterFunc(ErrorFlashDuration, func() {
		n.store.SetState(Patch{IsErrorFlashActive: Set(false)})
	})
}
