package shared

type Slot string

const (
	SlotMainHand Slot = "main-hand"
	SlotBody     Slot = "body"
	SlotNone     Slot = "none"
)
