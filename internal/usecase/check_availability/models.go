package check_availability

// Verdict вердикт доступности слота
type Verdict string

const (
	// VerdictBlocked слот закрыт блокировкой владельца; бронирование невозможно
	VerdictBlocked Verdict = "blocked"

	// VerdictOccupied слот занят одобренной бронью; бронирование невозможно
	VerdictOccupied Verdict = "occupied"

	// VerdictContested на слот уже есть pending-бронь; бронирование разрешено
	// с предупреждением - слот закрепляется только одобрением администратора
	VerdictContested Verdict = "contested"

	// VerdictFree слот свободен
	VerdictFree Verdict = "free"
)

// Request модель запроса проверки доступности
type Request struct {
	Date     string // YYYY-MM-DD
	Field    string
	TimeSlot string
}

// Response вердикт для кортежа (date, field, timeSlot)
// Вердикт не кешируется между запросами: одобрения могут гоняться
// с проверками, поэтому каждый запрос пересчитывается заново
type Response struct {
	Verdict    Verdict
	Selectable bool // можно ли выбрать слот (free и contested)

	// BlockReason причина блокировки (только для VerdictBlocked), показывается дословно
	BlockReason string

	// CustomerName имя клиента занявшей/претендующей брони
	// (для VerdictOccupied и VerdictContested)
	CustomerName string
}
