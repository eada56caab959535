package models

// Verdict is the outcome of a bot-check verification.
type Verdict int

const (
	// VerdictFail means the verifier answered and rejected the token.
	VerdictFail Verdict = iota
	// VerdictPass means the verifier answered and accepted the token.
	VerdictPass
	// VerdictUnreachable means no usable answer was obtained.
	VerdictUnreachable
)

func (v Verdict) String() string {
	switch v {
	case VerdictPass:
		return "pass"
	case VerdictFail:
		return "fail"
	case VerdictUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}
