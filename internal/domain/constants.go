package domain

import "time"

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Wildcard значение поля/слота в блокировке, закрывающее все сахи или все часы
const Wildcard = "all"

// DefaultExpiryGrace время после окончания слота, по истечении которого
// pending-бронь отклоняется автоматически
const DefaultExpiryGrace = 24 * time.Hour

// DefaultSweepInterval интервал запуска expiry sweeper'а
const DefaultSweepInterval = 30 * time.Minute

// Fields закрытый набор бронируемых площадок
var Fields = []string{
	"saha-1",
	"saha-2",
	"saha-3",
}

// TimeSlots закрытый упорядоченный набор часовых слотов
var TimeSlots = []TimeSlot{
	"16-17",
	"17-18",
	"18-19",
	"19-20",
	"20-21",
	"21-22",
}

// Тексты системных заметок (adminNote), проставляемых при автоматических переходах
const (
	NoteSupersededByApproval = "superseded by an approved reservation for the same slot"
	NoteAutoRejectedExpired  = "automatically rejected: no action taken within 24 hours of slot time"
)
