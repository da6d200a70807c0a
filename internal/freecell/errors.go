package freecell

// Error codes carried by GameError
const (
	ErrCodeInvalidConfiguration = iota + 1
	ErrCodeInvalidIndex
	ErrCodeInvalidSource
	ErrCodeCorruptState
	ErrCodeIllegalMove
)

// GameError is returned for caller misuse of the engine. Call sites wrap the
// predefined values below, so compare with errors.Is.
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

var (
	ErrInvalidConfiguration = &GameError{Code: ErrCodeInvalidConfiguration, Message: "invalid game configuration"}
	ErrInvalidIndex         = &GameError{Code: ErrCodeInvalidIndex, Message: "invalid index"}
	ErrInvalidSource        = &GameError{Code: ErrCodeInvalidSource, Message: "invalid auto-move source"}
	ErrCorruptState         = &GameError{Code: ErrCodeCorruptState, Message: "corrupt game state"}
	ErrIllegalMove          = &GameError{Code: ErrCodeIllegalMove, Message: "illegal move"}
)
