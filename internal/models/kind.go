package models

// Entity kinds, used for live-update topics and metric labels
const (
	KindUser           = "user"
	KindPhotographer   = "photographer"
	KindCategory       = "category"
	KindPhoto          = "photo"
	KindExhibition     = "exhibition"
	KindEvent          = "event"
	KindContactMessage = "contact_message"
)
