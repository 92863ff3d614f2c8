package entity

type EventKind uint8

const (
	EventOther EventKind = iota
	EventDirection
	EventConfirm
	EventQuit
)

// Event is a single key press already classified by the input source.
// Direction is only meaningful for EventDirection.
type Event struct {
	Kind      EventKind
	Direction Direction
}

func DirectionEvent(direction Direction) Event {
	return Event{Kind: EventDirection, Direction: direction}
}

func ConfirmEvent() Event {
	return Event{Kind: EventConfirm}
}

func OtherEvent() Event {
	return Event{Kind: EventOther}
}

func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

func (that EventKind) String() string {
	switch that {
	case EventDirection:
		return "direction"
	case EventConfirm:
		return "confirm"
	case EventQuit:
		return "quit"
	default:
		return "other"
	}
}
