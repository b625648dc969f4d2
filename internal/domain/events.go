package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventIndexCommitted         EventType = "IndexCommitted"
	EventGestureCancelled       EventType = "GestureCancelled"
	EventImplementationSwitched EventType = "ImplementationSwitched"
	EventConfigLoaded           EventType = "ConfigLoaded"
	EventConfigSaved            EventType = "ConfigSaved"
	EventError                  EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// IndexCommittedEvent is emitted when a carousel commits a new current index
type IndexCommittedEvent struct {
	Implementation Implementation
	From           int
	To             int
	Cause          string // drag, slider, step or jump
}

func (e IndexCommittedEvent) Type() EventType { return EventIndexCommitted }

// GestureCancelledEvent is emitted when a drag ends without a commit
type GestureCancelledEvent struct {
	Implementation Implementation
	Index          int
}

func (e GestureCancelledEvent) Type() EventType { return EventGestureCancelled }

// ImplementationSwitchedEvent is emitted when the picker selects another carousel
type ImplementationSwitchedEvent struct {
	From Implementation
	To   Implementation
}

func (e ImplementationSwitchedEvent) Type() EventType { return EventImplementationSwitched }

// ConfigLoadedEvent is emitted after the configuration file was read
type ConfigLoadedEvent struct {
	Path string
	Bars int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after the configuration file was written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
