// Package notify defines the team announcement contract. The MQTT
// implementation lives in infra/notify.
package notify

import "time"

// Publisher delivers announcement payloads to a topic. Implementations own
// their connection lifecycle; Close releases it.
type Publisher interface {
	Publish(topic string, payload []byte) error
	Close()
}

// TeamAnnouncement is the JSON payload published after a successful,
// applied scheduling run.
type TeamAnnouncement struct {
	RunID        string    `json:"run_id"`
	Date         string    `json:"date"`
	LeaderName   string    `json:"leader_name"`
	MemberNames  []string  `json:"member_names"`
	VarsityCount int       `json:"varsity_count"`
	Strategy     string    `json:"strategy"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// NopPublisher discards announcements. It is the default when notification
// is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(string, []byte) error { return nil }
func (NopPublisher) Close()                       {}
