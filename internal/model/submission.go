package model

import "time"

// SubmissionStatus is the outcome of one probe.
type SubmissionStatus string

const (
	// SubmissionBuilt marks a mutated transaction that was not sent.
	SubmissionBuilt SubmissionStatus = "built"
	// SubmissionAccepted marks a transaction the daemon accepted.
	SubmissionAccepted SubmissionStatus = "accepted"
	// SubmissionRejected marks a transaction the daemon refused with a code.
	SubmissionRejected SubmissionStatus = "rejected"
	// SubmissionFailed marks a probe that never got an answer.
	SubmissionFailed SubmissionStatus = "failed"
)

// Submission records a mutated transaction and what the daemon made of it.
type Submission struct {
	Network Network
	// SourceTxHash is empty when the probe started from raw hex.
	SourceTxHash string
	TxHash       string
	RawTx        string
	Edits        []string
	Status       SubmissionStatus
	Code         int32
	Message      string
	CreatedAt    time.Time
}
