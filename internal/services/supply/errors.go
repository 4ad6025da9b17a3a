package supply

// SupplyError is a custom error type for source pool errors
type SupplyError string

// Error implements the error interface
func (e SupplyError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoAnyUsedSources     SupplyError = "there are no sources to draw cards from"
	ErrGameIsStarted        SupplyError = "sources cannot be changed while a game is running"
	ErrRetryBudgetExhausted SupplyError = "gave up drawing a card after too many attempts"
	ErrSourceAlreadyAdded   SupplyError = "the source is already added"
	ErrSourceNotFound       SupplyError = "the source is not added"
	ErrInvalidCount         SupplyError = "card count cannot be negative"
	ErrNilConfig            SupplyError = "config cannot be nil"
	ErrNilFactory           SupplyError = "source factory cannot be nil"
)
