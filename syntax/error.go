package syntax

// Parse error messages.
const (
	ErrUnknownSymbol      = "unknown symbol"
	ErrUnexpectedEnd      = "unexpected end of pattern"
	ErrMissingParen       = "missing closing )"
	ErrUnexpectedParen    = "unexpected )"
	ErrMissingAlternative = "missing alternative"
	ErrMissingRepeatArg   = "missing argument to repetition operator"
	ErrRepeatMaxZero      = "max must be greater than 0 in range"
	ErrRepeatMinAboveMax  = "min must be lower or equal to max in range"
	ErrRangeNotAlnum      = "the start and end of a range must be alphanumeric"
	ErrRangeStartAboveEnd = "the start of a range must not exceed its end"
)

// Error is the single parse error kind. It carries a message and the pattern
// it was raised for.
type Error struct {
	Msg  string
	Expr string
}

// Error formats the error the way regexp/syntax does.
func (e *Error) Error() string {
	return "error parsing regexp: " + e.Msg + ": `" + e.Expr + "`"
}
