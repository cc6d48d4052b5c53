//go:build !no_containers

package test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/notify"
	infranotify "github.com/Jamesx86-64/gvsu-snow-removal-scheduler/infra/notify"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/test/util"
)

// TestAnnouncementOverMosquitto publishes a team announcement through a real
// broker and verifies a subscriber receives it intact.
func TestAnnouncementOverMosquitto(t *testing.T) {
	if testing.Short() {
		t.Skip("short mode: skipping container test")
	}
	ctx := context.Background()
	broker, cleanup, err := util.StartMosquitto(ctx)
	if err != nil {
		t.Skipf("mosquitto unavailable: %v", err)
	}
	defer cleanup()

	received := make(chan []byte, 1)
	opts := paho.NewClientOptions().AddBroker(broker).SetClientID("sub")
	sub := paho.NewClient(opts)
	if token := sub.Connect(); token.Wait() && token.Error() != nil {
		t.Fatalf("subscriber connect: %v", token.Error())
	}
	defer sub.Disconnect(100)
	token := sub.Subscribe("snowcrew/team/#", 1, func(_ paho.Client, msg paho.Message) {
		select {
		case received <- msg.Payload():
		default:
		}
	})
	if token.Wait() && token.Error() != nil {
		t.Fatalf("subscribe: %v", token.Error())
	}

	cfg := infranotify.Config{
		Enabled:  true,
		Broker:   broker,
		ClientID: "snowsched-e2e",
		QoS:      1,
	}
	cfg.SetDefaults()
	pub, err := infranotify.NewPahoPublisher(cfg)
	if err != nil {
		t.Fatalf("publisher: %v", err)
	}
	defer pub.Close()

	ann := notify.TeamAnnouncement{
		RunID:       "run-e2e",
		Date:        "2026-01-05",
		LeaderName:  "Lena Ruiz",
		MemberNames: []string{"Ana Kim", "Brett Cole"},
		Strategy:    "greedy",
		GeneratedAt: time.Now(),
	}
	payload, err := json.Marshal(ann)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := pub.Publish("snowcrew/team/2026-01-05", payload); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case got := <-received:
		var decoded notify.TeamAnnouncement
		if err := json.Unmarshal(got, &decoded); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if decoded.RunID != ann.RunID || decoded.LeaderName != ann.LeaderName {
			t.Fatalf("announcement mismatch: %+v", decoded)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no announcement received")
	}
}
