package sim

import "testing"

func TestTopicDeliversInRegistrationOrder(t *testing.T) {
	var topic Topic[int]
	var got []string
	topic.Subscribe(func(v int) { got = append(got, "a") })
	topic.Subscribe(func(v int) { got = append(got, "b") })
	topic.Subscribe(func(v int) { got = append(got, "c") })
	topic.Publish(1)
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("order = %v", got)
	}
}

func TestTopicUnsubscribe(t *testing.T) {
	var topic Topic[string]
	calls := 0
	h := topic.Subscribe(func(string) { calls++ })
	topic.Subscribe(func(string) {})
	if !topic.Unsubscribe(h) {
		t.Fatalf("unsubscribe of a live handle failed")
	}
	if topic.Unsubscribe(h) {
		t.Fatalf("unsubscribe of a dead handle succeeded")
	}
	topic.Publish("x")
	if calls != 0 || topic.Len() != 1 {
		t.Fatalf("calls = %d len = %d", calls, topic.Len())
	}
}

func TestTopicSubscribeDuringPublish(t *testing.T) {
	var topic Topic[int]
	late := 0
	topic.Subscribe(func(int) {
		topic.Subscribe(func(int) { late++ })
	})
	topic.Publish(1)
	if late != 0 {
		t.Fatalf("handler added during publish ran in the same publish")
	}
	topic.Publish(2)
	if late != 1 {
		t.Fatalf("late handler ran %d times, want 1", late)
	}
}
