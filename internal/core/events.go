package core

// Event is a notable gameplay occurrence reported from a simulation tick.
// Games emit events; the platform decides how to present them.
type Event int

const (
	EventBounce   Event = iota // two bodies collided and reflected
	EventLaunch                // a projectile was fired
	EventBurst                 // a target was popped
	EventScore                 // the score changed
	EventLifeLost              // the player lost a life
	EventGameOver              // the game ended
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventBounce:
		return "Bounce"
	case EventLaunch:
		return "Launch"
	case EventBurst:
		return "Burst"
	case EventScore:
		return "Score"
	case EventLifeLost:
		return "LifeLost"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
