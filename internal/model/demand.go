package model

type DemandStatus string

const (
	DemandStatusNew         DemandStatus = "NEW"
	DemandStatusUnderReview DemandStatus = "UNDER_REVIEW"
	DemandStatusApproved    DemandStatus = "APPROVED"
	DemandStatusRejected    DemandStatus = "REJECTED"
	DemandStatusCompleted   DemandStatus = "COMPLETED"
	DemandStatusCancelled   DemandStatus = "CANCELLED"
)

func (s DemandStatus) Valid() bool {
	switch s {
	case DemandStatusNew, DemandStatusUnderReview, DemandStatusApproved,
		DemandStatusRejected, DemandStatusCompleted, DemandStatusCancelled:
		return true
	}
	return false
}

type Demand struct {
	Code          int64
	EntryDate     string
	Requester     string
	ProtocolDate  string
	LetterRef     string
	ProcessNumber string
	Status        DemandStatus
}
