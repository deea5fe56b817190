package clocksync

// Outcome — итог попытки синхронизации с одним сервером.
type Outcome int

const (
	// NetworkFailure — пригодного ответа от сервера не получено
	NetworkFailure Outcome = iota
	// AdjustmentFailure — расхождение выше порога, но ОС отказала в записи часов
	AdjustmentFailure
	// Success — часы в пределах порога или успешно скорректированы
	Success
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case NetworkFailure:
		return "network failure"
	case AdjustmentFailure:
		return "adjustment failure"
	default:
		return "unknown"
	}
}

// OK возвращает true для Success
func (o Outcome) OK() bool {
	return o == Success
}
