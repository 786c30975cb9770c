package constant

const (
	TicketStatusOpen       = "OPEN"
	TicketStatusInProgress = "IN_PROGRESS"
	TicketStatusClosed     = "CLOSED"
)

const (
	TicketPriorityLow    = "LOW"
	TicketPriorityMedium = "MEDIUM"
	TicketPriorityHigh   = "HIGH"
	TicketPriorityUrgent = "URGENT"
)

const (
	UserRoleAdmin = "ADMIN"
	UserRoleUser  = "USER"
)
