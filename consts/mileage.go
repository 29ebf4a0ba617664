package consts

// mileage rewards credited when a request is completed
const (
	REQUESTER_COMPLETION_MILEAGE = 10
	HELPER_COMPLETION_MILEAGE    = 20
)

const (
	MILEAGE_REASON_REQUEST_COMPLETED  = "request_completed"
	MILEAGE_REASON_PROPOSAL_COMPLETED = "proposal_completed"
)
