package systems

import (
	"github.com/automoto/travoltage/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// Model notifications are queued on the world and dispatched once per frame
// by ProcessEvents, after the simulation has ticked.
type CarrierAddedEvent struct {
	Carrier sim.Carrier
}

type CarrierRemovedEvent struct {
	Carrier sim.Carrier
}

type SparkEvent struct {
	Visible bool
}

type AngleChangedEvent struct {
	Kind  sim.AppendageKind
	Angle float64
}

type ResetEvent struct{}

var (
	CarrierAdded   = events.NewEventType[CarrierAddedEvent]()
	CarrierRemoved = events.NewEventType[CarrierRemovedEvent]()
	Spark          = events.NewEventType[SparkEvent]()
	AngleChanged   = events.NewEventType[AngleChangedEvent]()
	Reset          = events.NewEventType[ResetEvent]()
)

// BridgeModel forwards m's notifications into w's event queue. The returned
// funcs undo the subscriptions.
func BridgeModel(w donburi.World, m *sim.Model) []func() {
	added := m.Accumulator.Added.Subscribe(func(c sim.Carrier) {
		CarrierAdded.Publish(w, CarrierAddedEvent{Carrier: c})
	})
	removed := m.Accumulator.Removed.Subscribe(func(c sim.Carrier) {
		CarrierRemoved.Publish(w, CarrierRemovedEvent{Carrier: c})
	})
	spark := m.Decider.Spark.Subscribe(func(visible bool) {
		Spark.Publish(w, SparkEvent{Visible: visible})
	})
	forward := func(c sim.AngleChange) {
		AngleChanged.Publish(w, AngleChangedEvent{Kind: c.Kind, Angle: c.Angle})
	}
	arm := m.Arm.Changed.Subscribe(forward)
	leg := m.Leg.Changed.Subscribe(forward)
	reset := m.Resets.Subscribe(func(struct{}) {
		Reset.Publish(w, ResetEvent{})
	})

	return []func(){
		func() { m.Accumulator.Added.Unsubscribe(added) },
		func() { m.Accumulator.Removed.Unsubscribe(removed) },
		func() { m.Decider.Spark.Unsubscribe(spark) },
		func() { m.Arm.Changed.Unsubscribe(arm) },
		func() { m.Leg.Changed.Unsubscribe(leg) },
		func() { m.Resets.Unsubscribe(reset) },
	}
}

// SubscribeViews registers the view handlers for model events on e's world.
func SubscribeViews(e *ecs.ECS) {
	CarrierAdded.Subscribe(e.World, func(w donburi.World, ev CarrierAddedEvent) {
		onCarrierAdded(e, ev)
	})
	CarrierRemoved.Subscribe(e.World, func(w donburi.World, ev CarrierRemovedEvent) {
		onCarrierRemoved(e, ev)
		onHUDCarrierRemoved(e, ev)
	})
	Spark.Subscribe(e.World, func(w donburi.World, ev SparkEvent) {
		onSpark(e, ev)
		onHUDSpark(e, ev)
		onAudioSpark(e, ev)
	})
	AngleChanged.Subscribe(e.World, func(w donburi.World, ev AngleChangedEvent) {
		onHUDAngleChanged(e, ev)
	})
	Reset.Subscribe(e.World, func(w donburi.World, ev ResetEvent) {
		onCarriersReset(e)
		onAppendagesReset(e)
		onHUDReset(e)
	})
}

// ProcessEvents dispatches every queued model event.
func ProcessEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}

// UnbridgeModel drops the model subscriptions stored on the simulation entity.
func UnbridgeModel(e *ecs.ECS) {
	sd := GetSimulation(e)
	if sd == nil {
		return
	}
	for _, undo := range sd.Handles {
		undo()
	}
	sd.Handles = nil
}
