package audit

import "log"

const (
	ActionBookingCreated  = "booking_created"
	ActionBookingConflict = "booking_conflict"
	ActionStatusChanged   = "status_changed"
)

type Event struct {
	AppointmentID *uint
	ActorID       *uint
	Action        string
	OldStatus     string
	NewStatus     string
	Metadata      any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.AppointmentID,
			ev.ActorID,
			ev.Action,
			ev.OldStatus,
			ev.NewStatus,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// fila cheia: auditoria nunca derruba a API
		log.Println("audit queue full, dropping event")
	}
}
