package domain

// LifecycleEvent is a workflow occurrence that may move an item between statuses.
type LifecycleEvent string

const (
	EventCreated    LifecycleEvent = "created"
	EventIdentified LifecycleEvent = "identified"
	EventListedLive LifecycleEvent = "listed_live"
	EventSold       LifecycleEvent = "sold"
)

func (e LifecycleEvent) String() string { return string(e) }

// Transition returns the item status that results from applying event to current.
//
// Identification only advances a new item. A live listing always yields listed,
// including for an item that was already sold (a re-list). A sale always yields sold.
// Unknown events leave the status unchanged.
func Transition(current ItemStatus, event LifecycleEvent) ItemStatus {
	switch event {
	case EventCreated:
		return ItemStatusNew
	case EventIdentified:
		if current == ItemStatusNew {
			return ItemStatusIdentified
		}
		return current
	case EventListedLive:
		return ItemStatusListed
	case EventSold:
		return ItemStatusSold
	}
	return current
}
