package resume

import "hrservice/internal/domain"

const (
	EventCreate         domain.EventName = "resume.create"
	EventDelete         domain.EventName = "resume.delete"
	EventUpdate         domain.EventName = "resume.update"
	EventUpdateStatus   domain.EventName = "resume.update_status"
	EventAddComment     domain.EventName = "resume.add_comment"
	EventAddCallHistory domain.EventName = "resume.add_call_history"
	EventAddFile        domain.EventName = "resume.add_file"
)

// Events lists every event the resume domain publishes.
func Events() []domain.EventName {
	return []domain.EventName{
		EventCreate,
		EventDelete,
		EventUpdate,
		EventUpdateStatus,
		EventAddComment,
		EventAddCallHistory,
		EventAddFile,
	}
}
